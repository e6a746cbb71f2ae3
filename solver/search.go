package solver

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// ── Search state ────────────────────────────────────────────────────

// search carries one calculation. It is built per request and never shared.
type search struct {
	cfg Config
	log zerolog.Logger

	conc   []float64 // effective concentrations, parallel to the request
	target float64
	volume float64
	mass   float64 // target mass = target concentration × total volume

	cands []Mix
}

func newSearch(req Request, cfg Config, log zerolog.Logger) *search {
	return &search{
		cfg:    cfg,
		log:    log,
		conc:   effective(req.Stocks),
		target: req.TargetConcentration,
		volume: req.TotalVolume,
		mass:   req.TargetConcentration * req.TotalVolume,
	}
}

// finite reports whether every derived quantity is usable. Degenerate
// inputs show up here as NaN or Inf.
func (s *search) finite() bool {
	for _, c := range s.conc {
		if math.IsNaN(c) || math.IsInf(c, 0) || c == 0 {
			return false
		}
	}
	for _, v := range []float64{s.target, s.volume, s.mass} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ── Acceptance ──────────────────────────────────────────────────────

// accept records vols as a candidate when it satisfies the mixing
// constraints: every volume positive, total within the target volume and
// the achieved concentration within tolerance. vols is copied.
func (s *search) accept(vols []float64, src Source, adjust int) bool {
	for _, v := range vols {
		if !(v > 0) {
			return false
		}
	}
	used := floats.Sum(vols)
	if used > s.volume {
		return false
	}
	achieved := floats.Dot(s.conc, vols) / s.volume
	if math.Abs(achieved-s.target) >= s.cfg.Tolerance {
		return false
	}
	diluent := s.volume - used
	mix := Mix{
		Volumes:       append([]float64(nil), vols...),
		Diluent:       diluent,
		Concentration: achieved,
		Score:         Score(vols, diluent, s.volume) + adjust,
		Source:        src,
	}
	mix.Integer = mix.IsInteger()
	mix.DiluentPercent = 100 * mix.DiluentShare(s.volume)
	s.cands = append(s.cands, mix)
	return true
}

// ── Exact / grid search ─────────────────────────────────────────────

// exactOrGrid dispatches on the number of stocks: closed form for one, a
// fine linear scan for two, a coarse Cartesian scan for more.
func (s *search) exactOrGrid() {
	switch n := len(s.conc); {
	case n == 1:
		s.exact()
	case n == 2:
		s.scan(s.cfg.FineStep)
	default:
		s.scan(s.cfg.CoarseStep)
	}
}

func (s *search) exact() {
	v := s.mass / s.conc[0]
	if v > 0 && s.volume-v >= 0 {
		s.accept([]float64{v}, SourceExact, 0)
	}
}

// gridSize returns the step actually used for a scan over axes free axes,
// and the number of points per axis. The step is doubled until the points
// the scan actually visits fit in MaxGridCombinations.
func (s *search) gridSize(step float64, axes int) (float64, int) {
	points := func(st float64) float64 { return math.Floor(s.volume/st + 1e-9) }
	limit := float64(s.cfg.MaxGridCombinations)
	orig := step
	for gridPoints(s.volume, step, axes) > limit {
		step *= 2
	}
	if step != orig {
		s.log.Warn().
			Float64("step", orig).
			Float64("effective_step", step).
			Int("axes", axes).
			Int("max_combinations", s.cfg.MaxGridCombinations).
			Msg("grid too large, coarsened step")
	}
	return step, int(points(step))
}

// gridPoints counts the grid points scanAxis visits: tuples of axes
// positive multiples of step whose sum stays below volume. With m the
// largest such multiple sum that is C(m, axes).
func gridPoints(volume, step float64, axes int) float64 {
	m := math.Ceil(volume/step-1e-9) - 1
	if m < float64(axes) {
		return 0
	}
	c := 1.0
	for i := 0; i < axes; i++ {
		c = c * (m - float64(i)) / float64(i+1)
	}
	return c
}

// scan walks every stock but the last over a grid of the given step and
// derives the last volume by mass balance.
func (s *search) scan(step float64) {
	n := len(s.conc)
	step, count := s.gridSize(step, n-1)
	if count < 1 {
		return
	}
	vols := make([]float64, n)
	s.scanAxis(0, vols, 0, 0, step, count)
}

func (s *search) scanAxis(axis int, vols []float64, usedVol, usedMass, step float64, count int) {
	last := len(vols) - 1
	if axis == last {
		v := (s.mass - usedMass) / s.conc[last]
		if v <= 0 || usedVol+v > s.volume {
			return
		}
		vols[last] = v
		s.accept(vols, SourceGrid, 0)
		return
	}
	for k := 1; k <= count; k++ {
		v := float64(k) * step
		// points further along this axis only add volume
		if usedVol+v >= s.volume {
			break
		}
		vols[axis] = v
		s.scanAxis(axis+1, vols, usedVol+v, usedMass+s.conc[axis]*v, step, count)
	}
}
