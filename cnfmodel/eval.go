package cnfmodel

import "github.com/CodeInCachemire/sat-solver-full-app/vartable"

// EvaluateLiteral classifies l under vt's current assignment: TRUE if
// its variable is bound consistently with its sign, FALSE if bound
// the other way, Undefined if the variable is still unbound.
func EvaluateLiteral(vt *vartable.Table, l Literal) vartable.TruthValue {
	switch vt.Value(l.Var()) {
	case vartable.True:
		if l.Positive() {
			return vartable.True
		}
		return vartable.False
	case vartable.False:
		if l.Positive() {
			return vartable.False
		}
		return vartable.True
	default:
		return vartable.Undefined
	}
}

// EvaluateClause classifies c under vt's current assignment: TRUE if
// any present literal is TRUE, FALSE if every present literal is
// FALSE, Undefined otherwise. Absent slots are ignored.
func EvaluateClause(vt *vartable.Table, c Clause) vartable.TruthValue {
	sawUndefined := false
	for _, l := range c.Literals() {
		switch EvaluateLiteral(vt, l) {
		case vartable.True:
			return vartable.True
		case vartable.Undefined:
			sawUndefined = true
		}
	}
	if sawUndefined {
		return vartable.Undefined
	}
	return vartable.False
}

// EvaluateCNF classifies f under vt's current assignment: TRUE iff
// every clause is TRUE, FALSE if any clause is FALSE (this takes
// precedence over Undefined conjuncts), Undefined otherwise. An empty
// CNF is TRUE.
func EvaluateCNF(vt *vartable.Table, f CNF) vartable.TruthValue {
	sawUndefined := false
	for _, c := range f.Clauses() {
		switch EvaluateClause(vt, c) {
		case vartable.False:
			return vartable.False
		case vartable.Undefined:
			sawUndefined = true
		}
	}
	if sawUndefined {
		return vartable.Undefined
	}
	return vartable.True
}

// UnitLiteral returns the clause's unit literal — the sole literal
// whose variable is Undefined when every other present literal is
// FALSE — or 0 if c is not currently a unit clause.
func UnitLiteral(vt *vartable.Table, c Clause) Literal {
	var unit Literal
	for _, l := range c.Literals() {
		switch EvaluateLiteral(vt, l) {
		case vartable.True:
			return 0 // clause already satisfied, no propagation needed
		case vartable.Undefined:
			if unit != 0 {
				return 0 // more than one undetermined literal
			}
			unit = l
		}
		// FALSE literals are simply skipped
	}
	return unit
}
