package solver

import (
	"math"
	"slices"
)

// ── Fingerprint dedup ───────────────────────────────────────────────

// dedupMixes keeps the first mix for each fingerprint, preserving order.
func dedupMixes(mixes []Mix) []Mix {
	seen := make(map[string]bool, len(mixes))
	out := make([]Mix, 0, len(mixes))
	for _, m := range mixes {
		fp := mixFingerprint(m.Volumes)
		if !seen[fp] {
			seen[fp] = true
			out = append(out, m)
		}
	}
	return out
}

// mixFingerprint packs the volumes rounded to hundredths of a ml.
func mixFingerprint(vols []float64) string {
	buf := make([]byte, 0, len(vols)*8)
	for _, v := range vols {
		c := int64(math.Round(v * 100))
		buf = append(buf,
			byte(c>>56), byte(c>>48), byte(c>>40), byte(c>>32),
			byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
	}
	return string(buf)
}

// ── Ranking ─────────────────────────────────────────────────────────

// rank dedups, orders by score (ties keep generation order) and keeps the
// best topN.
func rank(mixes []Mix, topN int) []Mix {
	out := dedupMixes(mixes)
	slices.SortStableFunc(out, func(a, b Mix) int { return b.Score - a.Score })
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
