// Command satcheck checks satisfiability of either a postfix formula
// or a direct CNF listing, printing SAT or UNSAT and exiting 0 on
// success. Any parse or structural error aborts with a nonzero exit
// and a diagnostic on the error stream.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeInCachemire/sat-solver-full-app/internal/diagnostics"
	"github.com/CodeInCachemire/sat-solver-full-app/internal/render"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var noColor bool
	var showModel bool

	root := &cobra.Command{
		Use:           "satcheck",
		Short:         "Check satisfiability of a propositional formula or a CNF listing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized SAT/UNSAT output")
	root.PersistentFlags().BoolVar(&showModel, "model", false, "print a satisfying assignment when SAT")

	root.AddCommand(formulaCmd(&noColor, &showModel))
	root.AddCommand(cnfCmd(&noColor, &showModel))
	return root
}

// openInput opens args[0] as a file, or falls back to cmd's configured
// input stream (ordinarily os.Stdin, but overridable in tests) when no
// file argument was given or it is "-". The returned closer is a no-op
// for the fallback stream.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}

func runAndReport(cmd *cobra.Command, solve func() (sat bool, model map[string]bool, err error), noColor, showModel bool) error {
	log := diagnostics.Logger(cmd.ErrOrStderr())

	sat, model, err := solve()
	if err != nil {
		diagnostics.Abort(log, err)
		return err
	}
	if !showModel {
		model = nil
	}

	renderVerdict(cmd, sat, model, noColor)
	return nil
}

func renderVerdict(cmd *cobra.Command, sat bool, model map[string]bool, noColor bool) {
	render.Verdict(cmd.OutOrStdout(), sat, model, noColor)
}
