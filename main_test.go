//go:build !lambda

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag state left by a previous Execute.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(solveCmd.Flags())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_Stocks(t *testing.T) {
	out, err := execute(t, "stocks")
	require.NoError(t, err)
	assert.Contains(t, out, "12.5%")
	assert.Contains(t, out, "Effective")
}

func TestCLI_Solve(t *testing.T) {
	out, err := execute(t, "solve", "-s", "6", "-s", "10", "-t", "8", "-v", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "6%: 5.00ml + 10%: 1.00ml")
	assert.Contains(t, out, "integer")
	assert.NotContains(t, out, "TOTAL")
}

func TestCLI_SolveJSON(t *testing.T) {
	out, err := execute(t, "solve", "--stock", "6,10", "--target", "8", "--volume", "10", "--json")
	require.NoError(t, err)

	var r Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []float64{6, 10}, r.Stocks)
	require.NotEmpty(t, r.Solutions)
	assert.Equal(t, 1320, r.Solutions[0].Score)
	assert.True(t, r.Solutions[0].Integer)
	assert.InDelta(t, 40.0, r.Solutions[0].DiluentPercent, 1e-9)
	assert.Contains(t, out, `"integer": true`)
	assert.Contains(t, out, `"diluentPercent": 40`)
}

func TestCLI_SolveInvalid(t *testing.T) {
	_, err := execute(t, "solve", "-s", "6", "-t", "0", "-v", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrInvalidInput)

	_, err = execute(t, "solve", "-t", "8", "-v", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock")
}

func TestCLI_Batch(t *testing.T) {
	out, err := execute(t, "batch", "testdata/requests.json")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "no solution")
	assert.Contains(t, out, "quad-gradient")

	out, err = execute(t, "batch", "testdata/requests.json", "pair-6-10")
	require.NoError(t, err)
	assert.Contains(t, out, "pair-6-10")
	assert.NotContains(t, out, "TOTAL")

	_, err = execute(t, "batch", "testdata/requests.json", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
