// Package tseitin rewrites an arbitrary propositional formula tree
// into an equisatisfiable 3-CNF by introducing one fresh variable per
// subformula, following Tseitin's transformation.
package tseitin

import (
	"fmt"

	"github.com/CodeInCachemire/sat-solver-full-app/cnfmodel"
	"github.com/CodeInCachemire/sat-solver-full-app/propform"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

// Encode returns a CNF such that x <=> root is encoded, where x is a
// fresh variable standing for root's truth value, followed by a unit
// clause asserting x — so the result is satisfiable exactly when root
// is. Recursion happens before emission, so every subformula's clauses
// precede its parent's in the returned CNF, and the asserting unit
// clause is always last.
func Encode(vt *vartable.Table, root *propform.Node) cnfmodel.CNF {
	var cnf cnfmodel.CNF
	x := addClauses(vt, &cnf, root)
	unary(&cnf, cnfmodel.Of(x, true))
	return cnf
}

// addClauses is the recursive step: for a subformula pf it emits the
// clauses equivalent to "x <=> pf" (no clauses at all for a bare
// variable) and returns x.
func addClauses(vt *vartable.Table, cnf *cnfmodel.CNF, pf *propform.Node) vartable.ID {
	switch pf.Kind {
	case propform.KindVar:
		return pf.Var

	case propform.KindAnd:
		c := addClauses(vt, cnf, pf.Left)
		d := addClauses(vt, cnf, pf.Right)
		x := vt.Fresh()
		binary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(c, true))
		binary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(d, true))
		ternary(cnf, cnfmodel.Of(c, false), cnfmodel.Of(d, false), cnfmodel.Of(x, true))
		return x

	case propform.KindOr:
		c := addClauses(vt, cnf, pf.Left)
		d := addClauses(vt, cnf, pf.Right)
		x := vt.Fresh()
		ternary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(c, true), cnfmodel.Of(d, true))
		binary(cnf, cnfmodel.Of(c, false), cnfmodel.Of(x, true))
		binary(cnf, cnfmodel.Of(d, false), cnfmodel.Of(x, true))
		return x

	case propform.KindImplies:
		c := addClauses(vt, cnf, pf.Left)
		d := addClauses(vt, cnf, pf.Right)
		x := vt.Fresh()
		ternary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(c, false), cnfmodel.Of(d, true))
		binary(cnf, cnfmodel.Of(c, true), cnfmodel.Of(x, true))
		binary(cnf, cnfmodel.Of(d, false), cnfmodel.Of(x, true))
		return x

	case propform.KindEquiv:
		a := addClauses(vt, cnf, pf.Left)
		b := addClauses(vt, cnf, pf.Right)
		x := vt.Fresh()
		ternary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(a, false), cnfmodel.Of(b, true))
		ternary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(b, false), cnfmodel.Of(a, true))
		ternary(cnf, cnfmodel.Of(x, true), cnfmodel.Of(a, false), cnfmodel.Of(b, false))
		ternary(cnf, cnfmodel.Of(x, true), cnfmodel.Of(a, true), cnfmodel.Of(b, true))
		return x

	case propform.KindNot:
		a := addClauses(vt, cnf, pf.Left)
		x := vt.Fresh()
		binary(cnf, cnfmodel.Of(x, false), cnfmodel.Of(a, false))
		binary(cnf, cnfmodel.Of(a, true), cnfmodel.Of(x, true))
		return x

	default:
		// Unreachable: propform.Node's Kind is a closed enum produced
		// only by the six constructors in package propform.
		panic(fmt.Sprintf("tseitin: unrecognized formula kind %v", pf.Kind))
	}
}

func unary(cnf *cnfmodel.CNF, a cnfmodel.Literal) {
	c, err := cnfmodel.NewClause(a, 0, 0)
	if err != nil {
		panic(err) // a is the literal of an allocated variable, never zero
	}
	cnf.Append(c)
}

func binary(cnf *cnfmodel.CNF, a, b cnfmodel.Literal) {
	c, err := cnfmodel.NewClause(a, b, 0)
	if err != nil {
		panic(err)
	}
	cnf.Append(c)
}

func ternary(cnf *cnfmodel.CNF, a, b, c cnfmodel.Literal) {
	clause, err := cnfmodel.NewClause(a, b, c)
	if err != nil {
		panic(err)
	}
	cnf.Append(clause)
}
