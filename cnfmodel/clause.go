// Package cnfmodel is the CNF data model: literals, clauses of up to
// three literals, the ordered conjunction of clauses, and the
// evaluator that classifies a clause or a CNF under a partial
// assignment held in a vartable.Table.
package cnfmodel

import (
	"errors"
	"fmt"

	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

// Literal is a signed reference to a variable: positive asserts the
// variable true, negative asserts it false. Zero means "no literal".
type Literal int

// Of builds the literal for id under the given polarity.
func Of(id vartable.ID, positive bool) Literal {
	if positive {
		return Literal(id)
	}
	return Literal(-id)
}

// Var returns the variable this literal refers to.
func (l Literal) Var() vartable.ID {
	if l < 0 {
		return vartable.ID(-l)
	}
	return vartable.ID(l)
}

// Positive reports whether l asserts its variable true.
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the literal with the opposite polarity over the same
// variable.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	if l < 0 {
		return fmt.Sprintf("-%d", -int(l))
	}
	return fmt.Sprintf("%d", int(l))
}

// errAllAbsent is returned by NewClause when all three slots are zero;
// the empty clause may only be discovered by evaluation, never
// constructed directly.
var errAllAbsent = errors.New("cnfmodel: a clause cannot be constructed with all literals absent")

// Clause is a disjunction of up to three literals. Unused slots are
// Literal(0); slot order is preserved but not semantically meaningful.
type Clause struct {
	lits [3]Literal
}

// NewClause builds a clause from up to three literals; pass Literal(0)
// for unused trailing slots. At least one literal must be non-zero.
func NewClause(a, b, c Literal) (Clause, error) {
	if a == 0 && b == 0 && c == 0 {
		return Clause{}, errAllAbsent
	}
	return Clause{lits: [3]Literal{a, b, c}}, nil
}

// Literals returns the clause's non-zero literals, in slot order.
func (c Clause) Literals() []Literal {
	lits := make([]Literal, 0, 3)
	for _, l := range c.lits {
		if l != 0 {
			lits = append(lits, l)
		}
	}
	return lits
}

func (c Clause) String() string {
	lits := c.Literals()
	if len(lits) == 0 {
		return "()"
	}
	s := "("
	for i, l := range lits {
		if i > 0 {
			s += " ∨ "
		}
		s += l.String()
	}
	return s + ")"
}

// CNF is an ordered conjunction of clauses. The zero value is the empty
// CNF (vacuously TRUE); it grows only by Append.
type CNF struct {
	clauses []Clause
}

// Append adds c as the CNF's next conjunct.
func (f *CNF) Append(c Clause) {
	f.clauses = append(f.clauses, c)
}

// Clauses returns the CNF's clauses in conjunction order.
func (f CNF) Clauses() []Clause {
	return f.clauses
}

// Len returns the number of clauses in the CNF.
func (f CNF) Len() int {
	return len(f.clauses)
}
