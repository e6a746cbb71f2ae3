package solver

// ── Preference weights ──

const (
	scoreAllInteger     = 1000 // every stock and the diluent are whole ml
	scoreStockInteger   = 100
	scoreStockHalf      = 50
	scoreStockTenth     = 20
	scoreDiluentInteger = 50
	scorePerUsedStock   = 10
	scoreDiluentShare   = 30
	scoreNoExtreme      = 20

	usedStockVolume = 0.1 // ml; smaller volumes do not count as using a stock
	minDiluentShare = 0.1
	maxDiluentShare = 0.9
	minStockVolume  = 0.1
	maxStockShare   = 0.8
)

// Score rates a recipe for ease of pipetting. Higher is better. It is used
// only to order candidates, never to reject them.
func Score(volumes []float64, diluent, total float64) int {
	score := 0

	allInteger := nearInteger(diluent)
	for _, v := range volumes {
		if !nearInteger(v) {
			allInteger = false
			break
		}
	}
	if allInteger {
		score += scoreAllInteger
	}

	for _, v := range volumes {
		if v <= 0 {
			continue
		}
		switch {
		case nearInteger(v):
			score += scoreStockInteger
		case nearInteger(v * 2):
			score += scoreStockHalf
		case nearInteger(v * 10):
			score += scoreStockTenth
		}
	}

	if nearInteger(diluent) {
		score += scoreDiluentInteger
	}

	used := 0
	for _, v := range volumes {
		if v > usedStockVolume {
			used++
		}
	}
	score += used * scorePerUsedStock

	if total > 0 {
		share := diluent / total
		if share >= minDiluentShare && share <= maxDiluentShare {
			score += scoreDiluentShare
		}
	}

	extreme := false
	for _, v := range volumes {
		if v < minStockVolume || v > total*maxStockShare {
			extreme = true
			break
		}
	}
	if !extreme {
		score += scoreNoExtreme
	}

	return score
}
