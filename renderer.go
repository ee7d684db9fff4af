// Package img2ascii renders raster images as grids of text characters
// whose density approximates source luminance, optionally preserving
// the original pixel colors.
//
// The pipeline is strictly staged: resize, grayscale conversion with
// gamma correction, brightness quantization against a character ramp
// (with optional Floyd-Steinberg error diffusion), glyph mapping, and
// optional colorization. Each render owns its grids exclusively; no
// state persists across renders.
package img2ascii

import (
	"image"
	"math"
	"strings"

	"github.com/cdillard/img2ascii/imageutil"
)

// Default renderer configuration.
const (
	DefaultWidth       = 100
	DefaultHeightScale = 0.55
	DefaultGamma       = 1.0
	DefaultCharset     = "standard"
)

// Renderer holds the configuration for one rendering pipeline. A
// Renderer is reusable: Render allocates fresh grids per invocation.
type Renderer struct {
	// Width is the output width in characters. Values below 1 are
	// coerced up to 1.
	Width int

	// HeightScale compensates for glyph cells being taller than wide
	// in monospace rendering. It is a pure scaling multiplier.
	HeightScale float64

	// Gamma adjusts midtone contrast; >1 brightens, <1 darkens.
	// Non-positive values fall back to 1.0.
	Gamma float64

	// Charset is a preset name or a literal ramp string, darkest to
	// lightest.
	Charset string

	// Invert reverses the ramp before glyph mapping.
	Invert bool

	// Dither enables Floyd-Steinberg error diffusion. Disabled, each
	// cell snaps independently to its nearest level.
	Dither bool

	// Color records original pixel colors on the rendered artifact
	// for colored terminal and HTML output.
	Color bool
}

// Option is a functional option for configuring a Renderer.
type Option func(*Renderer)

// New creates a Renderer with the given options applied over the
// defaults: width 100, height scale 0.55, gamma 1.0, the standard
// charset, dithering on, color off.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		Width:       DefaultWidth,
		HeightScale: DefaultHeightScale,
		Gamma:       DefaultGamma,
		Charset:     DefaultCharset,
		Dither:      true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithWidth sets the output width in characters.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.Width = width
	}
}

// WithHeightScale sets the character cell aspect compensation factor.
func WithHeightScale(scale float64) Option {
	return func(r *Renderer) {
		r.HeightScale = scale
	}
}

// WithGamma sets the gamma correction factor.
func WithGamma(gamma float64) Option {
	return func(r *Renderer) {
		r.Gamma = gamma
	}
}

// WithCharset sets the charset preset name or literal ramp.
func WithCharset(charset string) Option {
	return func(r *Renderer) {
		r.Charset = charset
	}
}

// WithInvert sets inverted brightness-to-glyph mapping.
func WithInvert(invert bool) Option {
	return func(r *Renderer) {
		r.Invert = invert
	}
}

// WithDither enables or disables Floyd-Steinberg dithering.
func WithDither(enabled bool) Option {
	return func(r *Renderer) {
		r.Dither = enabled
	}
}

// WithColor enables colored output.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.Color = enabled
	}
}

// Art is the rendered artifact: one glyph string per row plus the
// resized raster the glyphs were derived from, kept for colorization.
type Art struct {
	// Lines holds one glyph string per output row.
	Lines []string

	// Raster is the resized source image, original colors intact.
	Raster *imageutil.Raster

	// Colored records whether the render was configured for color
	// output; exporters consult it.
	Colored bool
}

// Text returns the plain newline-joined rendering.
func (a *Art) Text() string {
	return strings.Join(a.Lines, "\n")
}

// ANSI returns the newline-joined rendering with truecolor escapes.
func (a *Art) ANSI() string {
	return strings.Join(Colorize(a.Lines, a.Raster), "\n")
}

// HTML returns the rendering as a standalone HTML page, colored when
// the render was configured for color.
func (a *Art) HTML() string {
	return RenderHTML(a.Lines, a.Raster, a.Colored)
}

// targetSize computes the output grid dimensions for a source raster.
// Width is coerced up to 1; height follows the source aspect ratio
// scaled by HeightScale, never below 1. A zero-width source falls back
// to a square aspect rather than dividing by zero.
func (r *Renderer) targetSize(src *imageutil.Raster) (int, int) {
	width := r.Width
	if width < 1 {
		width = 1
	}
	aspect := 1.0
	if src.Width() > 0 {
		aspect = float64(src.Height()) / float64(src.Width())
	}
	height := int(math.Round(aspect * float64(width) * r.HeightScale))
	if height < 1 {
		height = 1
	}
	return width, height
}

// Render runs the full pipeline over a decoded image and returns the
// rendered artifact. The only hard failure before pixel work is an
// empty charset; cosmetic parameters (gamma, width) are normalized
// instead of rejected. No partial results are produced.
func (r *Renderer) Render(img image.Image) (*Art, error) {
	ramp, err := ResolveCharset(r.Charset)
	if err != nil {
		return nil, err
	}

	src := imageutil.RasterFromImage(img)
	width, height := r.targetSize(src)
	resized := imageutil.Resize(src, width, height)

	grays := BuildGrayGrid(resized, r.Gamma)
	levels := BuildLevels(len(ramp))

	var grid *IndexGrid
	if r.Dither {
		grid = FloydSteinberg(grays, levels)
	} else {
		grid = Quantize(grays, levels)
	}

	return &Art{
		Lines:   MapLines(grid, ramp, r.Invert),
		Raster:  resized,
		Colored: r.Color,
	}, nil
}

// RenderFile loads an image from disk and renders it.
func (r *Renderer) RenderFile(path string) (*Art, error) {
	raster, err := imageutil.Load(path)
	if err != nil {
		return nil, err
	}
	return r.Render(raster)
}
