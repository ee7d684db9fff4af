package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize resizes a raster to the specified dimensions using Catmull-Rom
// interpolation. Catmull-Rom is a smooth bicubic kernel, monotonic in
// each axis, so relative brightness ordering in the source survives the
// downscale.
func Resize(src *Raster, width, height int) *Raster {
	dst := NewRaster(width, height)
	dstRect := image.Rect(0, 0, width, height)
	draw.CatmullRom.Scale(dst.RGBA, dstRect, src.RGBA, src.Bounds(), draw.Over, nil)
	return dst
}
