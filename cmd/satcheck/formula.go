package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
	"github.com/CodeInCachemire/sat-solver-full-app/internal/diagnostics"
	"github.com/CodeInCachemire/sat-solver-full-app/propform"
	"github.com/CodeInCachemire/sat-solver-full-app/tseitin"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

func formulaCmd(noColor, showModel *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "formula [file]",
		Short: "Parse a postfix formula, Tseitin-encode it and solve",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(cmd, func() (bool, map[string]bool, error) {
				return solveFormula(cmd, args)
			}, *noColor, *showModel)
		},
	}
}

// solveFormula parses cmd's input as a postfix formula, Tseitin-encodes
// it and solves it.
func solveFormula(cmd *cobra.Command, args []string) (sat bool, model map[string]bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diagnostics.AsInvariant(r)
		}
	}()

	f, openErr := openInput(cmd, args)
	if openErr != nil {
		return false, nil, errors.Wrap(openErr, "satcheck formula")
	}
	defer f.Close()

	vt := vartable.New()
	root, parseErr := propform.Parse(propform.NewScanner(f), vt)
	if parseErr != nil {
		return false, nil, errors.Wrap(parseErr, "satcheck formula: parse")
	}

	cnf := tseitin.Encode(vt, root)
	engine := dpll.New(vt, cnf)
	sat = engine.Solve()
	if sat {
		model = engine.Model()
	}
	return sat, model, nil
}
