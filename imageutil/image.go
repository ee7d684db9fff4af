// Package imageutil provides pure Go raster helpers: an RGB pixel
// wrapper around image.RGBA, decoding for the common raster formats,
// and high-quality resizing.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Raster wraps image.RGBA with convenience methods for pixel access.
// It is the pipeline's source pixel type: loaded once, resized once,
// and read-only from then on.
type Raster struct {
	*image.RGBA
}

// NewRaster creates a new Raster with the specified dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RasterFromImage converts any image.Image to a Raster anchored at
// the origin.
func RasterFromImage(img image.Image) *Raster {
	if raster, ok := img.(*Raster); ok {
		return raster
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &Raster{RGBA: rgba}
	}
	bounds := img.Bounds()
	raster := NewRaster(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			raster.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return raster
}

// Width returns the raster width.
func (r *Raster) Width() int {
	return r.Bounds().Dx()
}

// Height returns the raster height.
func (r *Raster) Height() int {
	return r.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (r *Raster) GetRGB(x, y int) RGB {
	c := r.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (r *Raster) SetRGB(x, y int, c RGB) {
	r.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	clone := NewRaster(r.Width(), r.Height())
	copy(clone.Pix, r.Pix)
	return clone
}
