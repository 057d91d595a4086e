package vartable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsStable(t *testing.T) {
	vt := New()
	a, err := vt.Intern("a")
	require.NoError(t, err)
	b, err := vt.Intern("b")
	require.NoError(t, err)
	again, err := vt.Intern("a")
	require.NoError(t, err)

	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
	assert.Equal(t, ID(1), a)
	assert.Equal(t, ID(2), b)
}

func TestInternRejectsBadNames(t *testing.T) {
	vt := New()
	_, err := vt.Intern("")
	assert.Error(t, err)

	_, err = vt.Intern("a-b")
	assert.Error(t, err)

	_, err = vt.Intern("a b")
	assert.Error(t, err)
}

func TestFreshNeverCollidesWithParseableNames(t *testing.T) {
	vt := New()
	a, err := vt.Intern("a")
	require.NoError(t, err)
	x := vt.Fresh()

	assert.NotEqual(t, a, x)
	// the fresh tag itself could never be produced by Intern, since it contains '.'
	_, err = vt.Intern(vt.Name(x))
	assert.Error(t, err)
}

func TestValuesDefaultUndefined(t *testing.T) {
	vt := New()
	a, err := vt.Intern("a")
	require.NoError(t, err)
	assert.Equal(t, Undefined, vt.Value(a))

	vt.SetValue(a, True)
	assert.Equal(t, True, vt.Value(a))
}

func TestNextUndefinedIsDeterministic(t *testing.T) {
	vt := New()
	a, _ := vt.Intern("a")
	b, _ := vt.Intern("b")
	c, _ := vt.Intern("c")

	assert.Equal(t, a, vt.NextUndefined())

	vt.SetValue(a, True)
	assert.Equal(t, b, vt.NextUndefined())

	vt.SetValue(b, False)
	assert.Equal(t, c, vt.NextUndefined())

	vt.SetValue(c, True)
	assert.Equal(t, ID(0), vt.NextUndefined())
}
