package main

import (
	"bytes"
	"testing"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := LoadConfig("testdata/tuning.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.0005, cfg.Solver.Tolerance)
	assert.Equal(t, 1.0, cfg.Solver.CoarseStep)
	assert.Equal(t, 5, cfg.Solver.TopN)
	// untouched keys keep their defaults
	assert.Equal(t, solver.DefaultConfig().FineStep, cfg.Solver.FineStep)
	assert.Equal(t, solver.DefaultConfig().BalancedBonus, cfg.Solver.BalancedBonus)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("GELCALC_LOG_LEVEL", "warn")
	t.Setenv("GELCALC_LOG_PRETTY", "true")
	t.Setenv("GELCALC_TOP_N", "3")
	t.Setenv("GELCALC_FINE_STEP", "0.05")

	cfg, err := LoadConfig("testdata/tuning.yaml")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, 3, cfg.Solver.TopN)
	assert.Equal(t, 0.05, cfg.Solver.FineStep)
	assert.Equal(t, 0.0005, cfg.Solver.Tolerance)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		env    map[string]string
		errMsg string
	}{
		{name: "missing file", path: "testdata/nope.yaml", errMsg: "read testdata/nope.yaml"},
		{name: "bad float", env: map[string]string{"GELCALC_TOLERANCE": "abc"}, errMsg: "GELCALC_TOLERANCE"},
		{name: "negative int", env: map[string]string{"GELCALC_MAX_GRID": "-5"}, errMsg: "GELCALC_MAX_GRID"},
		{name: "bad bool", env: map[string]string{"GELCALC_LOG_PRETTY": "maybe"}, errMsg: "GELCALC_LOG_PRETTY"},
		{name: "zero tolerance in file", path: "testdata/zero_tolerance.yaml", errMsg: "tolerance: want a positive number"},
		{name: "negative bonus in file", path: "testdata/negative_bonus.yaml", errMsg: "balanced_bonus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogConfig{Level: "warn"}, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	assert.Equal(t, zerolog.InfoLevel, NewLogger(LogConfig{Level: "unknown"}, &buf).GetLevel())
}
