package img2ascii

import (
	"fmt"
	"strings"

	"github.com/cdillard/img2ascii/imageutil"
)

// RenderHTML wraps the glyph lines in a minimal standalone HTML page:
// a dark-background <pre> with fixed-width 10px monospace cells so the
// grid keeps its shape. With color enabled each glyph is wrapped in a
// span carrying its resized-raster pixel color; otherwise the lines are
// emitted as-is in white.
func RenderHTML(lines []string, raster *imageutil.Raster, useColor bool) string {
	var doc strings.Builder
	doc.WriteString("<!doctype html><meta charset='utf-8'>\n")
	doc.WriteString("<title>ASCII Art</title>\n")
	doc.WriteString("<style>body{margin:0;background:#000}" +
		"pre{line-height:0.9;font:10px/10px monospace;color:#fff;padding:8px;}</style>\n")
	doc.WriteString("<pre>\n")
	if useColor && raster != nil {
		for y, line := range lines {
			x := 0
			for _, ch := range line {
				c := raster.GetRGB(x, y)
				fmt.Fprintf(&doc, "<span style='color:rgb(%d,%d,%d)'>%c</span>",
					c.R, c.G, c.B, ch)
				x++
			}
			doc.WriteByte('\n')
		}
	} else {
		for _, line := range lines {
			doc.WriteString(line)
			doc.WriteByte('\n')
		}
	}
	doc.WriteString("</pre>\n")
	return doc.String()
}
