package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the calculator reads at startup.
type Config struct {
	Log    LogConfig     `yaml:"log"`
	Solver solver.Config `yaml:"solver"`
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Solver: solver.DefaultConfig(),
	}
}

// LoadConfig builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then a .env file and GELCALC_* environment
// variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Solver.Validate(); err != nil {
		return cfg, fmt.Errorf("solver config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("GELCALC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GELCALC_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GELCALC_LOG_PRETTY: %w", err)
		}
		cfg.Log.Pretty = b
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"GELCALC_TOLERANCE", &cfg.Solver.Tolerance},
		{"GELCALC_FINE_STEP", &cfg.Solver.FineStep},
		{"GELCALC_COARSE_STEP", &cfg.Solver.CoarseStep},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: want a positive number, got %q", f.key, v)
		}
		*f.dst = n
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"GELCALC_MAX_GRID", &cfg.Solver.MaxGridCombinations},
		{"GELCALC_TOP_N", &cfg.Solver.TopN},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: want a positive integer, got %q", i.key, v)
		}
		*i.dst = n
	}
	return nil
}
