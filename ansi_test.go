package img2ascii

import (
	"strings"
	"testing"

	"github.com/cdillard/img2ascii/imageutil"
)

func TestColorizeSingleGlyph(t *testing.T) {
	t.Parallel()

	raster := imageutil.NewRaster(1, 1)
	raster.SetRGB(0, 0, imageutil.RGB{R: 10, G: 20, B: 30})

	colored := Colorize([]string{"X"}, raster)
	want := "\x1b[38;2;10;20;30mX\x1b[0m"
	if colored[0] != want {
		t.Errorf("colored glyph = %q, want %q", colored[0], want)
	}
}

func TestColorizeRowStructure(t *testing.T) {
	t.Parallel()

	// Every glyph carries its own escape; every row ends with exactly
	// one reset.
	raster := imageutil.NewRaster(2, 2)
	raster.SetRGB(0, 0, imageutil.RGB{R: 255, G: 0, B: 0})
	raster.SetRGB(1, 0, imageutil.RGB{R: 0, G: 255, B: 0})
	raster.SetRGB(0, 1, imageutil.RGB{R: 0, G: 0, B: 255})
	raster.SetRGB(1, 1, imageutil.RGB{R: 1, G: 2, B: 3})

	colored := Colorize([]string{"ab", "cd"}, raster)
	if len(colored) != 2 {
		t.Fatalf("row count = %d, want 2", len(colored))
	}
	if colored[0] != "\x1b[38;2;255;0;0ma\x1b[38;2;0;255;0mb\x1b[0m" {
		t.Errorf("row 0 = %q", colored[0])
	}
	if colored[1] != "\x1b[38;2;0;0;255mc\x1b[38;2;1;2;3md\x1b[0m" {
		t.Errorf("row 1 = %q", colored[1])
	}
	for y, row := range colored {
		if strings.Count(row, ansiReset) != 1 {
			t.Errorf("row %d has %d resets, want 1", y, strings.Count(row, ansiReset))
		}
	}
}
