package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictPrintsSat(t *testing.T) {
	var buf bytes.Buffer
	Verdict(&buf, true, map[string]bool{"b": false, "a": true}, true)
	assert.Equal(t, "SAT\na = true\nb = false\n", buf.String())
}

func TestVerdictPrintsUnsatWithNoModel(t *testing.T) {
	var buf bytes.Buffer
	Verdict(&buf, false, nil, true)
	assert.Equal(t, "UNSAT\n", buf.String())
}

func TestVerdictSatWithNilModelOmitsAssignment(t *testing.T) {
	var buf bytes.Buffer
	Verdict(&buf, true, nil, true)
	assert.Equal(t, "SAT\n", buf.String())
}
