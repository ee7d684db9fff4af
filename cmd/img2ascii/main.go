package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cdillard/img2ascii"
	"github.com/golang/freetype/truetype"
	"github.com/lmittmann/tint"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("out", "",
		"Path to save the output; .html and .png pick the format, "+
			"anything else is text (if not specified, prints to stdout)")
	width := flag.Int("width", img2ascii.DefaultWidth,
		"Output character width")
	charset := flag.String("charset", img2ascii.DefaultCharset,
		"Charset preset name or a custom ramp string "+
			"(presets: standard, classic, blocks, dots)")
	invert := flag.Bool("invert", false,
		"Invert brightness to character mapping (light becomes dark)")
	useColor := flag.Bool("color", false,
		"ANSI truecolor output using original pixel colors")
	noDither := flag.Bool("no-dither", false,
		"Disable Floyd-Steinberg dithering (nearest character only)")
	gamma := flag.Float64("gamma", img2ascii.DefaultGamma,
		"Gamma correction; >1 brightens midtones, <1 darkens")
	heightScale := flag.Float64("height-scale", img2ascii.DefaultHeightScale,
		"Character height scaling; compensates for terminal "+
			"characters being taller than wide")
	fontPath := flag.String("font", "",
		"Path to a TTF font (required for PNG output)")
	fontScale := flag.Int("font-scale", 2,
		"Font scaling factor for PNG output (1 = 8x8 cells, 2 = 16x16, etc.)")
	verbose := flag.Bool("verbose", false,
		"Log stage timings and dimensions")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	renderer := img2ascii.New(
		img2ascii.WithWidth(*width),
		img2ascii.WithHeightScale(*heightScale),
		img2ascii.WithGamma(*gamma),
		img2ascii.WithCharset(*charset),
		img2ascii.WithInvert(*invert),
		img2ascii.WithDither(!*noDither),
		img2ascii.WithColor(*useColor),
	)

	start := time.Now()
	art, err := renderer.RenderFile(*inputFile)
	if err != nil {
		logger.Error("render failed", "input", *inputFile, "error", err)
		os.Exit(1)
	}
	cols := 0
	if len(art.Lines) > 0 {
		cols = len([]rune(art.Lines[0]))
	}
	logger.Debug("rendered",
		"input", *inputFile,
		"cols", cols,
		"rows", len(art.Lines),
		"elapsed", time.Since(start))

	if *outputFile == "" {
		if *useColor {
			fmt.Println(art.ANSI())
		} else {
			fmt.Println(art.Text())
		}
		return
	}

	switch img2ascii.FormatForPath(*outputFile) {
	case img2ascii.FormatHTML:
		err = art.WriteHTML(*outputFile)
	case img2ascii.FormatPNG:
		if *fontPath == "" {
			logger.Error("PNG output requires a TTF font, use the -font flag")
			os.Exit(1)
		}
		var ttf *truetype.Font
		ttf, err = img2ascii.LoadFont(*fontPath)
		if err == nil {
			err = art.WritePNG(*outputFile, ttf, *fontScale)
		}
	default:
		err = art.WriteText(*outputFile)
	}
	if err != nil {
		logger.Error("export failed", "out", *outputFile, "error", err)
		os.Exit(1)
	}
	logger.Debug("output written", "out", *outputFile,
		"elapsed", time.Since(start))
	fmt.Printf("Output written to %s\n", *outputFile)
}
