// Package cnfio reads the direct-CNF input format: one clause per
// line, up to three whitespace-separated NAME/-NAME literals, fed
// straight to the DPLL engine with no Tseitin pass. It is deliberately
// not a DIMACS reader — there is no problem line and no trailing 0 — a
// home-grown format matched to this project's clause model.
package cnfio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/CodeInCachemire/sat-solver-full-app/cnfmodel"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

// Read parses a direct-CNF document from r into vt and a CNF. Blank
// lines are skipped rather than turned into an all-absent clause: a
// clause built from zero literals would violate the "no all-absent
// clause" invariant that NewClause already enforces everywhere else,
// and EvaluateClause would classify such a clause as FALSE, making any
// CNF that contains it unsatisfiable. Lines with more than three tokens are
// truncated to the first three, per the input format.
func Read(r io.Reader, vt *vartable.Table) (cnfmodel.CNF, error) {
	var cnf cnfmodel.CNF
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 3 {
			fields = fields[:3]
		}

		var lits [3]cnfmodel.Literal
		for i, tok := range fields {
			lit, err := parseLiteral(vt, tok)
			if err != nil {
				return cnfmodel.CNF{}, errors.Wrapf(err, "cnfio: line %d", lineNo)
			}
			lits[i] = lit
		}

		clause, err := cnfmodel.NewClause(lits[0], lits[1], lits[2])
		if err != nil {
			return cnfmodel.CNF{}, errors.Wrapf(err, "cnfio: line %d", lineNo)
		}
		cnf.Append(clause)
	}
	if err := sc.Err(); err != nil {
		return cnfmodel.CNF{}, errors.Wrap(err, "cnfio: reading input")
	}
	return cnf, nil
}

// parseLiteral turns a token of the form NAME or -NAME into a literal,
// interning NAME along the way. The alphanumeric check on NAME itself
// happens inside Table.Intern, not here.
func parseLiteral(vt *vartable.Table, tok string) (cnfmodel.Literal, error) {
	positive := true
	name := tok
	if strings.HasPrefix(tok, "-") {
		positive = false
		name = tok[1:]
	}
	id, err := vt.Intern(name)
	if err != nil {
		return 0, fmt.Errorf("invalid literal %q: %w", tok, err)
	}
	return cnfmodel.Of(id, positive), nil
}
