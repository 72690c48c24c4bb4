package payoff_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/zerosum/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_ReadsWhitespaceRows covers leading/trailing whitespace and blank
// lines between rows.
func TestParse_ReadsWhitespaceRows(t *testing.T) {
	m, err := payoff.Parse(strings.NewReader("  1 2 \n\n3 4"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{1, 2}, m.Row(0))
	assert.Equal(t, []float64{3, 4}, m.Row(1))
}

// TestParse_UnparsableToken reports line and token context around ErrParse.
func TestParse_UnparsableToken(t *testing.T) {
	_, err := payoff.Parse(strings.NewReader("1 2\n3 oops"))
	require.ErrorIs(t, err, payoff.ErrParse)
	assert.Contains(t, err.Error(), `"oops"`)
	assert.Contains(t, err.Error(), "line 2")
}

// TestParse_DelegatesValidation: shape and finiteness errors come from New.
func TestParse_DelegatesValidation(t *testing.T) {
	_, err := payoff.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, payoff.ErrBadShape, "empty input")

	_, err = payoff.Parse(strings.NewReader("1 2\n3"))
	assert.ErrorIs(t, err, payoff.ErrBadShape, "ragged input")

	// strconv happily reads NaN/Inf tokens; the finite policy still rejects.
	_, err = payoff.Parse(strings.NewReader("1 NaN"))
	assert.ErrorIs(t, err, payoff.ErrNaNInf, "NaN token")

	_, err = payoff.Parse(strings.NewReader("1 +Inf"))
	assert.ErrorIs(t, err, payoff.ErrNaNInf, "Inf token")
}
