package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// glyphWidth and glyphHeight define the unscaled character cell size
// in pixels.
const (
	glyphWidth  = 8
	glyphHeight = 8
)

// LoadFont loads a TrueType font from file for PNG rendering.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return ttf, nil
}

// RenderPNG rasterizes the glyph grid into an RGBA image, one fixed
// cell per character, drawn with the given font on a black background.
// Colored renders draw each glyph in its resized-raster pixel color;
// plain renders draw white. Scale multiplies the 8x8 base cell.
func (a *Art) RenderPNG(ttf *truetype.Font, scale int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	cellW, cellH := glyphWidth*scale, glyphHeight*scale

	rows := len(a.Lines)
	cols := 0
	if rows > 0 {
		cols = len([]rune(a.Lines[0]))
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	// Baseline from font metrics so descenders are not clipped.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(cellH),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	baseline := (cellH + ascent - descent) / 2

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(float64(cellH))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	for y, line := range a.Lines {
		x := 0
		for _, ch := range line {
			fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if a.Colored {
				fg = a.Raster.GetRGB(x, y).ToColor()
			}
			ctx.SetSrc(image.NewUniform(fg))
			pt := freetype.Pt(x*cellW, y*cellH+baseline)
			if _, err := ctx.DrawString(string(ch), pt); err != nil {
				return nil, fmt.Errorf("failed to draw glyph %q: %w", ch, err)
			}
			x++
		}
	}
	return img, nil
}
