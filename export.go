package img2ascii

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
)

// WriteText saves the rendering to a text file, colored with ANSI
// escapes when the render was configured for color.
func (a *Art) WriteText(path string) error {
	text := a.Text()
	if a.Colored {
		text = a.ANSI()
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

// WriteHTML saves the rendering as a standalone HTML page.
func (a *Art) WriteHTML(path string) error {
	if err := os.WriteFile(path, []byte(a.HTML()), 0644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

// WritePNG rasterizes the rendering with the given font and saves it
// as a PNG.
func (a *Art) WritePNG(path string, ttf *truetype.Font, scale int) error {
	img, err := a.RenderPNG(ttf, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// OutputFormat names the export format an output path implies.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatHTML
	FormatPNG
)

// FormatForPath picks the export format from a path's extension:
// .html/.htm is HTML, .png is PNG, anything else is text.
func FormatForPath(path string) OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".png":
		return FormatPNG
	default:
		return FormatText
	}
}
