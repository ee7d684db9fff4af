package img2ascii

import "strings"

// MapLines converts an index grid into one string per row using the
// ramp. When invert is set the ramp is reversed before indexing, so
// index 0 maps to the lightest glyph instead of the darkest; inversion
// changes glyph assignment, never the underlying luminance. Indices
// are guaranteed in-range by the quantizer, so no bounds checking
// happens here.
func MapLines(grid *IndexGrid, ramp []rune, invert bool) []string {
	if invert {
		ramp = reverseRamp(ramp)
	}
	lines := make([]string, grid.Height())
	var row strings.Builder
	for y := 0; y < grid.Height(); y++ {
		row.Reset()
		for x := 0; x < grid.Width(); x++ {
			row.WriteRune(ramp[grid.At(x, y)])
		}
		lines[y] = row.String()
	}
	return lines
}
