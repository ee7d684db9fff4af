package img2ascii

import "math"

// BuildLevels returns n ascending brightness levels evenly spaced over
// [0,255] inclusive: first 0, last 255, step 255/(n-1). For n <= 1 the
// single level is the midpoint 128, since a one-glyph ramp cannot
// discriminate brightness.
func BuildLevels(n int) []float64 {
	if n <= 1 {
		return []float64{128.0}
	}
	step := 255.0 / float64(n-1)
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = float64(i) * step
	}
	return levels
}

// NearestLevel snaps a luminance value to its nearest level and returns
// the level index and value. The index is round((y/255)*(n-1)), clamped
// to [0, n-1] so error-adjusted values outside [0,255] still quantize.
// Exact halves round away from zero (math.Round); this tie-break is
// part of the output contract and pinned by tests.
func NearestLevel(y float64, levels []float64) (int, float64) {
	n := len(levels)
	idx := int(math.Round(y / 255.0 * float64(n-1)))
	if idx < 0 {
		idx = 0
	} else if idx > n-1 {
		idx = n - 1
	}
	return idx, levels[idx]
}
