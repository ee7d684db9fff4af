package img2ascii

import (
	"math"

	"github.com/cdillard/img2ascii/imageutil"
)

// GrayGrid is a mutable grid of luminance values backed by a single
// contiguous row-major buffer. It is derived once from a resized
// raster and owned exclusively by the quantization pass that consumes
// it: dithering injects quantization error into not-yet-visited cells,
// which may transiently push values outside [0,255].
type GrayGrid struct {
	w, h int
	pix  []float64
}

// NewGrayGrid creates a zeroed grid with the given dimensions.
func NewGrayGrid(width, height int) *GrayGrid {
	return &GrayGrid{
		w:   width,
		h:   height,
		pix: make([]float64, width*height),
	}
}

// Width returns the grid width.
func (g *GrayGrid) Width() int { return g.w }

// Height returns the grid height.
func (g *GrayGrid) Height() int { return g.h }

// At returns the luminance at (x, y).
func (g *GrayGrid) At(x, y int) float64 {
	return g.pix[y*g.w+x]
}

// Set overwrites the luminance at (x, y).
func (g *GrayGrid) Set(x, y int, v float64) {
	g.pix[y*g.w+x] = v
}

// Add accumulates v into the luminance at (x, y).
func (g *GrayGrid) Add(x, y int, v float64) {
	g.pix[y*g.w+x] += v
}

// Luminance computes the linear luminance of a pixel using the
// Rec. 709 weights. A plain channel average over-weights blue relative
// to perceived brightness; the weighted sum does not.
func Luminance(c imageutil.RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// ApplyGamma applies power-law gamma correction to a luminance value
// in [0,255]. Gamma above 1 brightens midtones, below 1 darkens them.
// Non-positive gamma is treated as 1.0 (identity): gamma is a cosmetic
// tone-curve adjustment and an invalid value must never block
// rendering.
func ApplyGamma(y, gamma float64) float64 {
	if gamma <= 0 {
		gamma = 1.0
	}
	return 255.0 * math.Pow(y/255.0, 1.0/gamma)
}

// BuildGrayGrid converts a raster into a gamma-corrected luminance
// grid, one float per pixel.
func BuildGrayGrid(raster *imageutil.Raster, gamma float64) *GrayGrid {
	w, h := raster.Width(), raster.Height()
	grid := NewGrayGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid.Set(x, y, ApplyGamma(Luminance(raster.GetRGB(x, y)), gamma))
		}
	}
	return grid
}
