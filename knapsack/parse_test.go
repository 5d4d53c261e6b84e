package knapsack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/ksolve/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProblem_Valid(t *testing.T) {
	in := "3 50\n60 10\n100 20\n\n120 30\n"
	p, err := knapsack.ParseProblem(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, mkProblem(50, [2]int64{60, 10}, [2]int64{100, 20}, [2]int64{120, 30}), p)
}

func TestParseProblem_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty", "", "missing header"},
		{"zero count", "0 10\n", "item count must be positive"},
		{"short header", "3\n", "line 1"},
		{"non-numeric", "2 10\n5 x\n1 1\n", "line 2"},
		{"too few items", "3 10\n1 1\n2 2\n", "declares 3 items, found 2"},
		{"too many items", "1 10\n1 1\n2 2\n", "line 3"},
		{"three fields", "1 10\n1 1 1\n", "want 2 fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.ParseProblem(strings.NewReader(tc.in))
			require.ErrorIs(t, err, knapsack.ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseProblem_ValidatesValues(t *testing.T) {
	_, err := knapsack.ParseProblem(strings.NewReader("1 10\n5 -2\n"))
	assert.ErrorIs(t, err, knapsack.ErrNegativeWeight)

	_, err = knapsack.ParseProblem(strings.NewReader("1 -10\n5 2\n"))
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	err := knapsack.WriteResult(&buf, knapsack.Result{Value: 220, Taken: []int{0, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "220 0\n0 1 1\n", buf.String())
}
