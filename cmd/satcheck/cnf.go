package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
	"github.com/CodeInCachemire/sat-solver-full-app/internal/cnfio"
	"github.com/CodeInCachemire/sat-solver-full-app/internal/diagnostics"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

func cnfCmd(noColor, showModel *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "cnf [file]",
		Short: "Read a direct CNF listing and solve it, with no Tseitin pass",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(cmd, func() (bool, map[string]bool, error) {
				return solveCNF(cmd, args)
			}, *noColor, *showModel)
		},
	}
}

func solveCNF(cmd *cobra.Command, args []string) (sat bool, model map[string]bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diagnostics.AsInvariant(r)
		}
	}()

	f, openErr := openInput(cmd, args)
	if openErr != nil {
		return false, nil, errors.Wrap(openErr, "satcheck cnf")
	}
	defer f.Close()

	vt := vartable.New()
	cnf, readErr := cnfio.Read(f, vt)
	if readErr != nil {
		return false, nil, errors.Wrap(readErr, "satcheck cnf: parse")
	}

	engine := dpll.New(vt, cnf)
	sat = engine.Solve()
	if sat {
		model = engine.Model()
	}
	return sat, model, nil
}
