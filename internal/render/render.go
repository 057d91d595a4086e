// Package render prints the driver's SAT/UNSAT verdict and, on
// request, the satisfying model, colorized when writing to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Verdict prints SAT or UNSAT to w, green for SAT and red for UNSAT
// when w is a terminal and colorization was not disabled. When sat is
// true and model is non-nil, the bound source variables follow, sorted
// by name for reproducible output.
func Verdict(w io.Writer, sat bool, model map[string]bool, noColor bool) {
	sayer := color.New()
	if sat {
		sayer = color.New(color.FgGreen, color.Bold)
	} else {
		sayer = color.New(color.FgRed, color.Bold)
	}
	if noColor || !isTerminal(w) {
		sayer.DisableColor()
	}

	if sat {
		sayer.Fprintln(w, "SAT")
	} else {
		sayer.Fprintln(w, "UNSAT")
	}

	if !sat || model == nil {
		return
	}
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s = %t\n", name, model[name])
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
