package solver

import "fmt"

// Config holds search tuning parameters. Adjust these to trade speed for
// solution quality.
type Config struct {
	// Tolerance is the allowed absolute difference between achieved and
	// target concentration, in percent.
	Tolerance float64 `yaml:"tolerance"`
	// FineStep is the grid step (ml) of the two-stock scan.
	FineStep float64 `yaml:"fine_step"`
	// CoarseStep is the grid step (ml) of each axis in the multi-stock scan.
	CoarseStep float64 `yaml:"coarse_step"`
	// MaxGridCombinations caps the multi-stock scan. CoarseStep is doubled
	// until the grid fits.
	MaxGridCombinations int `yaml:"max_grid_combinations"`
	// FloorVolume is the starting volume of non-dominant stocks in the
	// max-usage heuristic.
	FloorVolume float64 `yaml:"floor_volume"`
	// DominantShare is the fraction of total volume given to the dominant stock.
	DominantShare float64 `yaml:"dominant_share"`
	// BalancedShare is the fraction of total volume split evenly across stocks
	// in the balanced heuristic.
	BalancedShare float64 `yaml:"balanced_share"`
	// DominantPenalty is subtracted per stock index from dominant mixes. It
	// and BalancedBonus must be positive to keep balanced ahead of dominant.
	DominantPenalty int `yaml:"dominant_penalty"`
	// BalancedBonus is added to the balanced mix.
	BalancedBonus int `yaml:"balanced_bonus"`
	// TopN is how many ranked mixes are returned.
	TopN int `yaml:"top_n"`
}

// DefaultConfig returns the tuning used by the calculator.
func DefaultConfig() Config {
	return Config{
		Tolerance:           0.001,
		FineStep:            0.1,
		CoarseStep:          0.5,
		MaxGridCombinations: 1_000_000,
		FloorVolume:         0.1,
		DominantShare:       0.6,
		BalancedShare:       0.8,
		DominantPenalty:     1,
		BalancedBonus:       10,
		TopN:                10,
	}
}

// withDefaults fills zero fields so a partially specified Config still works.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	if c.FineStep <= 0 {
		c.FineStep = d.FineStep
	}
	if c.CoarseStep <= 0 {
		c.CoarseStep = d.CoarseStep
	}
	if c.MaxGridCombinations <= 0 {
		c.MaxGridCombinations = d.MaxGridCombinations
	}
	if c.FloorVolume <= 0 {
		c.FloorVolume = d.FloorVolume
	}
	if c.DominantShare <= 0 || c.DominantShare > 1 {
		c.DominantShare = d.DominantShare
	}
	if c.BalancedShare <= 0 || c.BalancedShare > 1 {
		c.BalancedShare = d.BalancedShare
	}
	if c.DominantPenalty <= 0 {
		c.DominantPenalty = d.DominantPenalty
	}
	if c.BalancedBonus <= 0 {
		c.BalancedBonus = d.BalancedBonus
	}
	if c.TopN <= 0 {
		c.TopN = d.TopN
	}
	return c
}

// Validate rejects explicitly set values that withDefaults would otherwise
// replace silently. Config loaders call it after decoding.
func (c Config) Validate() error {
	positive := []struct {
		key string
		val float64
	}{
		{"tolerance", c.Tolerance},
		{"fine_step", c.FineStep},
		{"coarse_step", c.CoarseStep},
		{"max_grid_combinations", float64(c.MaxGridCombinations)},
		{"floor_volume", c.FloorVolume},
		{"dominant_penalty", float64(c.DominantPenalty)},
		{"balanced_bonus", float64(c.BalancedBonus)},
		{"top_n", float64(c.TopN)},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			return fmt.Errorf("%s: want a positive number, got %v", p.key, p.val)
		}
	}
	for _, p := range []struct {
		key string
		val float64
	}{
		{"dominant_share", c.DominantShare},
		{"balanced_share", c.BalancedShare},
	} {
		if !(p.val > 0 && p.val <= 1) {
			return fmt.Errorf("%s: want a fraction in (0, 1], got %v", p.key, p.val)
		}
	}
	return nil
}
