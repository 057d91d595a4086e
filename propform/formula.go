// Package propform holds the formula tree and the postfix parser that
// builds it. It sits outside the solver's core (Tseitin encoder,
// evaluator, DPLL engine) and is implemented as a small stack machine.
package propform

import "github.com/CodeInCachemire/sat-solver-full-app/vartable"

// Kind distinguishes the six shapes a Node can take. It is a closed
// enum: the parser produces Nodes only through the constructors below,
// so a switch over Kind that handles all six never needs a reachable
// default for parsed formulas.
type Kind int

const (
	KindVar Kind = iota
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindEquiv
)

// Node is a propositional formula tree. Children are owned exclusively
// by their parent. Var is populated only for KindVar; Left is
// populated for KindNot (the negated subformula) and the four binary
// kinds; Right is populated only for the binary kinds.
type Node struct {
	Kind  Kind
	Var   vartable.ID
	Left  *Node
	Right *Node
}

// NewVar builds a VAR(id) leaf.
func NewVar(id vartable.ID) *Node {
	return &Node{Kind: KindVar, Var: id}
}

// NewNot builds a NOT(child) node.
func NewNot(child *Node) *Node {
	return &Node{Kind: KindNot, Left: child}
}

// NewAnd builds an AND(left, right) node.
func NewAnd(left, right *Node) *Node {
	return &Node{Kind: KindAnd, Left: left, Right: right}
}

// NewOr builds an OR(left, right) node.
func NewOr(left, right *Node) *Node {
	return &Node{Kind: KindOr, Left: left, Right: right}
}

// NewImplies builds an IMPLIES(left, right) node.
func NewImplies(left, right *Node) *Node {
	return &Node{Kind: KindImplies, Left: left, Right: right}
}

// NewEquiv builds an EQUIV(left, right) node.
func NewEquiv(left, right *Node) *Node {
	return &Node{Kind: KindEquiv, Left: left, Right: right}
}
