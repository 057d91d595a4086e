package tseitin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeInCachemire/sat-solver-full-app/cnfmodel"
	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
	"github.com/CodeInCachemire/sat-solver-full-app/propform"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

func encodeFormula(t *testing.T, input string) (*vartable.Table, cnfmodel.CNF) {
	t.Helper()
	vt := vartable.New()
	root, err := propform.Parse(propform.NewScanner(strings.NewReader(input)), vt)
	require.NoError(t, err)
	return vt, Encode(vt, root)
}

func TestEncodeAppendsFinalUnitClauseLast(t *testing.T) {
	vt, cnf := encodeFormula(t, "a b &&")
	clauses := cnf.Clauses()
	require.NotEmpty(t, clauses)
	last := clauses[len(clauses)-1]
	lits := last.Literals()
	require.Len(t, lits, 1)
	assert.True(t, lits[0].Positive())
	assert.True(t, vt.IsFresh(lits[0].Var()))
}

func TestEncodeVarEmitsNoClauses(t *testing.T) {
	// VAR is the only shape that emits no clauses of its own; a bare
	// variable formula should only carry the trailing unit clause.
	_, cnf := encodeFormula(t, "a")
	assert.Equal(t, 1, cnf.Len())
}

// The following scenarios mirror spec.md section 8's end-to-end cases,
// run end to end through the encoder and the DPLL engine.

func TestScenarioConjunctionOfSameVarIsSat(t *testing.T) {
	vt, cnf := encodeFormula(t, "a a &&")
	assert.True(t, dpll.New(vt, cnf).Solve())
}

func TestScenarioContradictionIsUnsat(t *testing.T) {
	vt, cnf := encodeFormula(t, "a ! a &&")
	assert.False(t, dpll.New(vt, cnf).Solve())
}

func TestScenarioImplicationIsSat(t *testing.T) {
	vt, cnf := encodeFormula(t, "a b =>")
	assert.True(t, dpll.New(vt, cnf).Solve())
}

func TestScenarioNestedEquivTautologyIsSat(t *testing.T) {
	vt, cnf := encodeFormula(t, "a b <=> a b <=> <=>")
	assert.True(t, dpll.New(vt, cnf).Solve())
}

// TestEncodeIsEquisatisfiable checks the Tseitin equisatisfiability law
// from a handful of small postfix formulas: Encode's CNF is satisfiable
// exactly when the formula itself is, judged by brute-forcing every
// assignment of its own variables rather than trusting the encoder.
func TestEncodeIsEquisatisfiable(t *testing.T) {
	cases := []string{
		"a",
		"a !",
		"a a &&",
		"a ! a &&",
		"a b ||",
		"a b =>",
		"a b <=>",
		"a b && c ||",
		"a b => c =>",
		"a b <=> c <=>",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			vt := vartable.New()
			root, err := propform.Parse(propform.NewScanner(strings.NewReader(input)), vt)
			require.NoError(t, err)

			want := bruteForceSat(root, distinctVars(root))

			vt2 := vartable.New()
			root2, err := propform.Parse(propform.NewScanner(strings.NewReader(input)), vt2)
			require.NoError(t, err)
			cnf := Encode(vt2, root2)

			got := dpll.New(vt2, cnf).Solve()
			assert.Equal(t, want, got, "formula %q", input)
		})
	}
}

func distinctVars(n *propform.Node) []vartable.ID {
	seen := make(map[vartable.ID]bool)
	var ids []vartable.ID
	var walk func(*propform.Node)
	walk = func(n *propform.Node) {
		if n == nil {
			return
		}
		if n.Kind == propform.KindVar {
			if !seen[n.Var] {
				seen[n.Var] = true
				ids = append(ids, n.Var)
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return ids
}

func bruteForceSat(n *propform.Node, vars []vartable.ID) bool {
	total := 1 << len(vars)
	for assignment := 0; assignment < total; assignment++ {
		values := make(map[vartable.ID]bool, len(vars))
		for i, v := range vars {
			values[v] = assignment&(1<<i) != 0
		}
		if evalNode(n, values) {
			return true
		}
	}
	return len(vars) == 0 && evalNode(n, nil)
}

func evalNode(n *propform.Node, values map[vartable.ID]bool) bool {
	switch n.Kind {
	case propform.KindVar:
		return values[n.Var]
	case propform.KindNot:
		return !evalNode(n.Left, values)
	case propform.KindAnd:
		return evalNode(n.Left, values) && evalNode(n.Right, values)
	case propform.KindOr:
		return evalNode(n.Left, values) || evalNode(n.Right, values)
	case propform.KindImplies:
		return !evalNode(n.Left, values) || evalNode(n.Right, values)
	case propform.KindEquiv:
		return evalNode(n.Left, values) == evalNode(n.Right, values)
	default:
		panic("tseitin_test: unrecognized formula kind")
	}
}
