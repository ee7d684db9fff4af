package img2ascii

// IndexGrid holds one ramp index per cell in a contiguous row-major
// buffer, same dimensions as the gray grid it was quantized from.
type IndexGrid struct {
	w, h int
	idx  []int
}

// NewIndexGrid creates a zeroed index grid with the given dimensions.
func NewIndexGrid(width, height int) *IndexGrid {
	return &IndexGrid{
		w:   width,
		h:   height,
		idx: make([]int, width*height),
	}
}

// Width returns the grid width.
func (g *IndexGrid) Width() int { return g.w }

// Height returns the grid height.
func (g *IndexGrid) Height() int { return g.h }

// At returns the ramp index at (x, y).
func (g *IndexGrid) At(x, y int) int {
	return g.idx[y*g.w+x]
}

// Set overwrites the ramp index at (x, y).
func (g *IndexGrid) Set(x, y int, v int) {
	g.idx[y*g.w+x] = v
}

// FloydSteinberg quantizes the gray grid against the level set using
// Floyd-Steinberg error diffusion and returns the resulting index grid.
//
// Cells are visited exactly once in row-major order, top to bottom and
// left to right. Each cell's quantization error is pushed into its
// not-yet-visited neighbors with the classic weights: 7/16 right, 3/16
// down-left, 5/16 down, 1/16 down-right. Out-of-bounds neighbors are
// skipped. The grid is mutated in place, so a later cell's input
// depends on every earlier cell in the pass; the scan order is part of
// the output contract, not an implementation detail, and the pass must
// stay sequential.
func FloydSteinberg(grays *GrayGrid, levels []float64) *IndexGrid {
	w, h := grays.Width(), grays.Height()
	grid := NewIndexGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := grays.At(x, y)
			idx, level := NearestLevel(old, levels)
			grid.Set(x, y, idx)
			err := old - level

			if x+1 < w {
				grays.Add(x+1, y, err*(7.0/16.0))
			}
			if y+1 < h {
				if x-1 >= 0 {
					grays.Add(x-1, y+1, err*(3.0/16.0))
				}
				grays.Add(x, y+1, err*(5.0/16.0))
				if x+1 < w {
					grays.Add(x+1, y+1, err*(1.0/16.0))
				}
			}
		}
	}
	return grid
}

// Quantize maps every cell to its nearest level with no error
// propagation. The gray grid is not mutated, so the result is
// idempotent; output is coarser than the dithered equivalent and prone
// to banding on gradients.
func Quantize(grays *GrayGrid, levels []float64) *IndexGrid {
	w, h := grays.Width(), grays.Height()
	grid := NewIndexGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx, _ := NearestLevel(grays.At(x, y), levels)
			grid.Set(x, y, idx)
		}
	}
	return grid
}
