package img2ascii

import (
	"errors"
	"strings"
)

// Charsets maps preset names to character ramps. Ramps are ordered
// darkest to lightest, so darker pixels pick up visually denser glyphs.
var Charsets = map[string]string{
	"standard": "@%#*+=-:. ",
	"classic":  "$@B%8&WM#*oahkbdpqwmZ0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!l;:,\"^`'. ",
	"blocks":   "█▓▒░  ",
	"dots":     "⣿⣾⣶⣤⣀  ",
}

// ErrEmptyCharset is returned when a custom charset resolves to an
// empty ramp. An empty ramp gives the quantizer zero levels to work
// with, so rendering refuses to start.
var ErrEmptyCharset = errors.New("charset must not be empty")

// ResolveCharset resolves a preset name or custom ramp string into the
// rune sequence used for brightness mapping. Preset names take
// precedence; anything else is treated as a literal ramp. The ramp is
// returned as runes so multi-byte glyphs (block and braille presets)
// index correctly.
func ResolveCharset(charset string) ([]rune, error) {
	if preset, ok := Charsets[charset]; ok {
		return []rune(preset), nil
	}
	if strings.TrimSpace(charset) == "" {
		return nil, ErrEmptyCharset
	}
	return []rune(charset), nil
}

// reverseRamp returns a reversed copy of the ramp. Used for inverted
// mapping, where index 0 picks the lightest glyph instead of the
// darkest.
func reverseRamp(ramp []rune) []rune {
	reversed := make([]rune, len(ramp))
	for i, r := range ramp {
		reversed[len(ramp)-1-i] = r
	}
	return reversed
}
