package imageutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRaster(t *testing.T) {
	r := NewRaster(100, 50)
	if r.Width() != 100 {
		t.Errorf("Expected width 100, got %d", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Expected height 50, got %d", r.Height())
	}
}

func TestRasterGetSetRGB(t *testing.T) {
	r := NewRaster(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	r.SetRGB(5, 5, c)

	got := r.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRasterClone(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := r.Clone()
	if clone.GetRGB(5, 5) != r.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if r.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRasterFromImageOffsetBounds(t *testing.T) {
	// Source images with non-origin bounds must be re-anchored.
	src := image.NewRGBA(image.Rect(3, 3, 5, 5))
	src.SetRGBA(3, 3, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	r := RasterFromImage(src)
	if r.Width() != 2 || r.Height() != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", r.Width(), r.Height())
	}
	if got := r.GetRGB(0, 0); got != (RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("Expected {9 8 7} at origin, got %v", got)
	}
}

func TestRGBFromColor(t *testing.T) {
	c := RGBFromColor(color.RGBA{R: 12, G: 34, B: 56, A: 255})
	if c != (RGB{R: 12, G: 34, B: 56}) {
		t.Errorf("Expected {12 34 56}, got %v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	src := NewRaster(4, 2)
	src.SetRGB(0, 0, RGB{R: 255, G: 0, B: 0})
	src.SetRGB(3, 1, RGB{R: 0, G: 0, B: 255})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src.RGBA); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Width() != 4 || loaded.Height() != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", loaded.Width(), loaded.Height())
	}
	if got := loaded.GetRGB(0, 0); got != (RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("Expected red at (0,0), got %v", got)
	}
	if got := loaded.GetRGB(3, 1); got != (RGB{R: 0, G: 0, B: 255}) {
		t.Errorf("Expected blue at (3,1), got %v", got)
	}
}
