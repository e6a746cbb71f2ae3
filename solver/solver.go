// Package solver finds stock gel and diluent volumes that dilute premixed
// polyacrylamide stocks to a target concentration, and ranks the recipes by
// how easy they are to pipette.
package solver

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Solver runs calculations with a fixed configuration. It holds no
// per-calculation state and is safe for concurrent use.
type Solver struct {
	cfg Config
	log zerolog.Logger
}

// New creates a solver. Zero fields in cfg take their DefaultConfig values.
func New(cfg Config, log zerolog.Logger) *Solver {
	return &Solver{cfg: cfg.withDefaults(), log: log}
}

// WithLogger returns a copy of s that logs to log.
func (s *Solver) WithLogger(log zerolog.Logger) *Solver {
	return &Solver{cfg: s.cfg, log: log}
}

// Config returns the effective configuration.
func (s *Solver) Config() Config { return s.cfg }

// Solve validates req and returns up to TopN mixes, best first. An empty
// result means no feasible recipe was found and is not an error.
func (s *Solver) Solve(req Request) ([]Mix, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sr := newSearch(req, s.cfg, s.log)
	if !sr.finite() {
		return nil, fmt.Errorf("%w: non-finite concentration or volume", ErrComputation)
	}

	s.log.Debug().
		Floats64("stocks", req.Stocks).
		Float64("target", req.TargetConcentration).
		Float64("volume", req.TotalVolume).
		Msg("[init]")

	// Phase 1: exact or grid search
	sr.exactOrGrid()
	grid := len(sr.cands)
	s.log.Debug().Int("candidates", grid).Msg("[search]")

	// Phase 2: max-usage heuristics, appended after the grid so grid mixes win dedup
	sr.maxUsage()
	s.log.Debug().Int("candidates", len(sr.cands)-grid).Msg("[heuristic]")

	// Phase 3: dedup, sort, cut
	out := rank(sr.cands, s.cfg.TopN)
	if len(out) > 0 {
		s.log.Debug().Int("kept", len(out)).Int("best", out[0].Score).Msg("[rank]")
	} else {
		s.log.Debug().Msg("[rank] no solution")
	}
	return out, nil
}

// Solve runs one calculation with DefaultConfig and no logging.
func Solve(stocks []float64, target, volume float64) ([]Mix, error) {
	return New(DefaultConfig(), zerolog.Nop()).Solve(Request{
		Stocks:              stocks,
		TargetConcentration: target,
		TotalVolume:         volume,
	})
}
