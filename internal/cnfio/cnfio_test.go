package cnfio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

func TestReadSkipsBlankLines(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a\n\n-a b\n"), vt)
	require.NoError(t, err)
	assert.Equal(t, 2, cnf.Len())
}

func TestReadTruncatesLongLines(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a b c d\n"), vt)
	require.NoError(t, err)
	require.Equal(t, 1, cnf.Len())
	assert.Len(t, cnf.Clauses()[0].Literals(), 3)
}

func TestReadRejectsInvalidLiteralName(t *testing.T) {
	vt := vartable.New()
	_, err := Read(strings.NewReader("a-b\n"), vt)
	assert.Error(t, err)
}

func TestReadUnitClauseIsSat(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a\n-b\n"), vt)
	require.NoError(t, err)

	e := dpll.New(vt, cnf)
	require.True(t, e.Solve())
	m := e.Model()
	assert.True(t, m["a"])
	assert.False(t, m["b"])
}

func TestReadContradictionIsUnsat(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a\n-a\n"), vt)
	require.NoError(t, err)
	assert.False(t, dpll.New(vt, cnf).Solve())
}

func TestScenarioResolutionChainIsUnsat(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a b c\n-a b\n-b c\n-c\n"), vt)
	require.NoError(t, err)
	assert.False(t, dpll.New(vt, cnf).Solve())
}

func TestScenarioResolutionChainIsSat(t *testing.T) {
	vt := vartable.New()
	cnf, err := Read(strings.NewReader("a b\n-a c\n-b c\n"), vt)
	require.NoError(t, err)
	e := dpll.New(vt, cnf)
	require.True(t, e.Solve())
	assert.True(t, e.Model()["c"])
}
