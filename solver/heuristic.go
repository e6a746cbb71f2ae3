package solver

import "gonum.org/v1/gonum/floats"

// ── Max-usage heuristics ────────────────────────────────────────────

// maxUsage proposes the mixes a technician would try by hand: one stock
// dominant with the rest at a floor volume, and every stock equal. Each is
// scaled so the mass matches the target exactly.
func (s *search) maxUsage() {
	n := len(s.conc)
	for i := 0; i < n; i++ {
		vols := make([]float64, n)
		for j := range vols {
			vols[j] = s.cfg.FloorVolume
		}
		vols[i] = s.volume * s.cfg.DominantShare
		// the per-index penalty only separates otherwise equal scores
		s.scaled(vols, SourceDominant, -i*s.cfg.DominantPenalty)
	}

	vols := make([]float64, n)
	for j := range vols {
		vols[j] = s.volume * s.cfg.BalancedShare / float64(n)
	}
	s.scaled(vols, SourceBalanced, s.cfg.BalancedBonus)
}

// scaled rescales vols in place so that Σ c·v equals the target mass, then
// offers the result to accept.
func (s *search) scaled(vols []float64, src Source, adjust int) bool {
	m := floats.Dot(s.conc, vols)
	if !(m > 0) {
		return false
	}
	floats.Scale(s.mass/m, vols)
	return s.accept(vols, src, adjust)
}
