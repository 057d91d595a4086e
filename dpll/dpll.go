// Package dpll implements the Davis-Putnam-Logemann-Loveland search:
// an assignment stack, a single iterate step that dispatches between
// unit propagation, decision and backtracking, and chronological
// backtracking with a fixed TRUE-first decision polarity. It has no
// clause learning, watched literals, VSIDS or restarts — those are
// explicitly out of scope.
package dpll

import (
	"fmt"

	"github.com/CodeInCachemire/sat-solver-full-app/cnfmodel"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

// Reason distinguishes a free choice from a forced propagation on the
// assignment stack.
type Reason int

const (
	Chosen Reason = iota
	Implied
)

func (r Reason) String() string {
	if r == Chosen {
		return "chosen"
	}
	return "implied"
}

// StackEntry is one binding on the assignment stack, in the
// chronological order it was made.
type StackEntry struct {
	Var    vartable.ID
	Reason Reason
}

// Stats are counters about the run, reported for diagnostic purposes
// only; unlike a CDCL solver's stats these track no restarts, no
// learned or deleted clauses, since DPLL as specified has none.
type Stats struct {
	Decisions    int
	Propagations int
	Backtracks   int
}

// status is the iterate step's internal state machine: Continue is
// the only non-terminal state.
type status int

const (
	statusContinue status = iota
	statusSat
	statusUnsat
)

// Engine runs the DPLL search over a fixed CNF and variable table.
// Engine, the CNF and the variable table are exclusively owned by one
// solve and are not safe for concurrent use.
type Engine struct {
	vt    *vartable.Table
	cnf   cnfmodel.CNF
	stack []StackEntry
	Stats Stats
}

// New builds an Engine ready to search cnf over vt. Any units already
// implied by the CNF (e.g. a Tseitin root assertion) are left for the
// first iterate step to discover, like everything else.
func New(vt *vartable.Table, cnf cnfmodel.CNF) *Engine {
	return &Engine{vt: vt, cnf: cnf}
}

// Solve runs iterate steps to completion and reports satisfiability.
// On return the assignment stack is fully drained, whether SAT or
// UNSAT.
func (e *Engine) Solve() bool {
	for {
		switch e.iterate() {
		case statusSat:
			e.drain()
			return true
		case statusUnsat:
			e.drain()
			return false
		}
	}
}

// Model returns the current bindings of every non-fresh (i.e. source)
// variable in vt, keyed by name. It is meaningful only to call after a
// true result from Solve.
func (e *Engine) Model() map[string]bool {
	m := make(map[string]bool)
	for id := vartable.ID(1); int(id) <= e.vt.Len(); id++ {
		if e.vt.IsFresh(id) {
			continue
		}
		m[e.vt.Name(id)] = e.vt.Value(id) == vartable.True
	}
	return m
}

// iterate performs one step of the state machine described in the
// specification: consult the evaluator, then either terminate,
// backtrack, propagate a unit literal, or make a TRUE-first decision.
// A CONTINUE step performs exactly one backtrack, one propagation or
// one decision.
func (e *Engine) iterate() status {
	switch cnfmodel.EvaluateCNF(e.vt, e.cnf) {
	case vartable.True:
		return statusSat

	case vartable.False:
		if e.hasChosen() {
			e.backtrack()
			return statusContinue
		}
		return statusUnsat

	default: // Undefined
		for _, c := range e.cnf.Clauses() {
			if lit := cnfmodel.UnitLiteral(e.vt, c); lit != 0 {
				e.propagate(lit)
				return statusContinue
			}
		}

		v := e.vt.NextUndefined()
		if v == 0 {
			// Defensive: the evaluator already reported Undefined, so
			// some variable must still be free. This cannot happen if
			// the evaluator and the variable table agree.
			return statusContinue
		}
		e.vt.SetValue(v, vartable.True)
		e.stack = append(e.stack, StackEntry{Var: v, Reason: Chosen})
		e.Stats.Decisions++
		return statusContinue
	}
}

// propagate binds the variable of lit to make lit TRUE and pushes an
// IMPLIED entry recording it.
func (e *Engine) propagate(lit cnfmodel.Literal) {
	v := lit.Var()
	if lit.Positive() {
		e.vt.SetValue(v, vartable.True)
	} else {
		e.vt.SetValue(v, vartable.False)
	}
	e.stack = append(e.stack, StackEntry{Var: v, Reason: Implied})
	e.Stats.Propagations++
}

func (e *Engine) hasChosen() bool {
	for _, entry := range e.stack {
		if entry.Reason == Chosen {
			return true
		}
	}
	return false
}

// backtrack pops IMPLIED entries (unbinding each as it goes) until the
// top of the stack is a CHOSEN entry, then flips that entry's variable
// from TRUE to FALSE and rewrites its reason to IMPLIED in place — it
// is not popped, since the FALSE branch is now a forced consequence of
// the search context rather than a free choice. Invoking this with no
// CHOSEN entry anywhere on the stack is an invariant violation the
// engine must never reach: iterate only calls backtrack after
// confirming hasChosen.
func (e *Engine) backtrack() {
	e.Stats.Backtracks++
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		switch top.Reason {
		case Chosen:
			e.vt.SetValue(top.Var, vartable.False)
			top.Reason = Implied
			return
		case Implied:
			e.vt.SetValue(top.Var, vartable.Undefined)
			e.stack = e.stack[:len(e.stack)-1]
		default:
			panic(InvariantViolation(fmt.Sprintf("backtrack: stack entry for var %d has unrecognized reason %v", top.Var, top.Reason)))
		}
	}
	panic(InvariantViolation("backtrack: called with no CHOSEN entry on the stack"))
}

// drain empties the assignment stack without touching variable values,
// per the resource model: the stack is drained on both SAT and UNSAT
// exits, but the final bindings (the model, or the last attempted
// assignment) are left untouched for the caller to inspect.
func (e *Engine) drain() {
	e.stack = e.stack[:0]
}

// InvariantViolation reports a DPLL engine state that the
// specification defines as unreachable given a correct evaluator and
// a correct caller (e.g. backtracking with no CHOSEN entry present).
// It is raised as a panic rather than returned as an error, since
// there is no way for a caller to meaningfully recover from it; the
// driver recovers it once at the top level.
type InvariantViolation string

func (e InvariantViolation) Error() string { return string(e) }
