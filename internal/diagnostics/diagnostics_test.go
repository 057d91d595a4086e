package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
)

func TestAbortLogsAndReturnsNonzero(t *testing.T) {
	var buf bytes.Buffer
	code := Abort(Logger(&buf), errors.New("boom"))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}

func TestAsInvariantReturnsError(t *testing.T) {
	err := AsInvariant(dpll.InvariantViolation("bad state"))
	assert.EqualError(t, err, "bad state")
}

func TestAsInvariantRepanicsUnknownValue(t *testing.T) {
	assert.Panics(t, func() {
		AsInvariant("not an invariant violation")
	})
}
