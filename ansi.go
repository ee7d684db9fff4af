package img2ascii

import (
	"fmt"
	"strings"

	"github.com/cdillard/img2ascii/imageutil"
)

const (
	// ESC is the ANSI escape character.
	ESC = ""

	// ansiReset clears all terminal attributes.
	ansiReset = ESC + "[0m"
)

// Colorize re-attaches original pixel color to mapped glyph lines for
// terminal rendering. Every glyph is preceded by a truecolor foreground
// escape carrying the corresponding resized-raster pixel, and every row
// ends with a reset. Color always reflects the original resized pixel,
// never the quantized level or dither-adjusted luminance: the glyph
// encodes brightness structure, the color encodes true hue.
func Colorize(lines []string, raster *imageutil.Raster) []string {
	colored := make([]string, len(lines))
	var row strings.Builder
	for y, line := range lines {
		row.Reset()
		x := 0
		for _, ch := range line {
			c := raster.GetRGB(x, y)
			fmt.Fprintf(&row, "%s[38;2;%d;%d;%dm%c", ESC, c.R, c.G, c.B, ch)
			x++
		}
		row.WriteString(ansiReset)
		colored[y] = row.String()
	}
	return colored
}
