package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Report holds the ranked mixes and timing for one calculation.
type Report struct {
	ID        string       `json:"id"`
	Name      string       `json:"name,omitempty"`
	Stocks    []float64    `json:"stocks"`
	Target    float64      `json:"target"`
	Volume    float64      `json:"volume"`
	Solutions []solver.Mix `json:"solutions"`
	TimeMs    int64        `json:"timeMs"`
}

// runRequest solves one request and wraps the result for output.
func runRequest(s *solver.Solver, log zerolog.Logger, name string, req solver.Request) (Report, error) {
	id := uuid.NewString()
	log = log.With().Str("calc", id).Logger()

	for _, c := range req.Stocks {
		if !solver.IsStandardStock(c) {
			log.Warn().Float64("stock", c).Msg("stock concentration not in standard catalogue")
		}
	}

	start := time.Now()
	mixes, err := s.WithLogger(log).Solve(req)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("calculation failed")
		return Report{}, err
	}
	if mixes == nil {
		mixes = []solver.Mix{}
	}

	log.Info().
		Str("name", name).
		Int("solutions", len(mixes)).
		Dur("elapsed", elapsed).
		Msg("calculation done")

	return Report{
		ID:        id,
		Name:      name,
		Stocks:    req.Stocks,
		Target:    req.TargetConcentration,
		Volume:    req.TotalVolume,
		Solutions: mixes,
		TimeMs:    elapsed.Milliseconds(),
	}, nil
}

// runAll solves every request in order. Invalid requests abort the batch.
func runAll(s *solver.Solver, log zerolog.Logger, reqs []NamedRequest) ([]Report, error) {
	reports := make([]Report, 0, len(reqs))
	for i, nr := range reqs {
		log.Debug().Msgf("[%d/%d] %s", i+1, len(reqs), nr.Name)
		r, err := runRequest(s, log, nr.Name, nr.Request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nr.Name, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// writeReports prints reports as tables, with a summary for batches, or as
// indented JSON.
func writeReports(w io.Writer, reports []Report, summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	var totalMs int64
	for _, r := range reports {
		fmt.Fprint(w, FormatResult(r))
		totalMs += r.TimeMs
	}
	if summary {
		fmt.Fprint(w, FormatSummary(reports, totalMs))
	}
	return nil
}
