// Package assets loads the optional badge font.
// A missing or unreadable font is never fatal: callers fall back to the
// surface's default face.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/plan9font"
)

// DefaultFontPath is where the badge firmware keeps its pixel fonts.
const DefaultFontPath = "/system/assets/fonts/bacteria.ttf"

// glyphCheckText must have a positive advance in any usable face.
const glyphCheckText = "#?ABC abc"

// Loader names accepted by LoaderFor.
const (
	LoaderAuto     = "auto"
	LoaderOpenType = "opentype"
	LoaderPlan9    = "plan9"
	LoaderNone     = "none"
)

var (
	// ErrNoFont is returned by NoFont and for empty paths.
	ErrNoFont = errors.New("assets: no font configured")
	// ErrUnsupportedFont is returned when no loader handles a file type.
	ErrUnsupportedFont = errors.New("assets: unsupported font format")
)

// FontLoader turns a font file into a face.
type FontLoader interface {
	Load(path string) (font.Face, error)
}

// OpenTypeLoader loads TrueType/OpenType fonts at a fixed pixel size.
type OpenTypeLoader struct {
	Size float64 // Size in points
	DPI  float64 // 72 makes points equal pixels
}

// Load parses the file at path.
func (l OpenTypeLoader) Load(path string) (font.Face, error) {
	data, err := readFont(path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}

	size, dpi := l.Size, l.DPI
	if size <= 0 {
		size = 8
	}
	if dpi <= 0 {
		dpi = 72
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: cannot create face for %s: %w", path, err)
	}
	return face, nil
}

// Plan9Loader loads Plan 9 bitmap fonts.
// A ".font" file references subfont files relative to its own directory;
// a ".subfont" file is loaded directly starting at rune 0.
type Plan9Loader struct{}

// Load parses the file at path.
func (Plan9Loader) Load(path string) (font.Face, error) {
	data, err := readFont(path)
	if err != nil {
		return nil, err
	}

	var face font.Face
	if strings.EqualFold(filepath.Ext(path), ".subfont") {
		face, err = plan9font.ParseSubfont(data, 0)
	} else {
		dir := filepath.Dir(path)
		face, err = plan9font.ParseFont(data, func(name string) ([]byte, error) {
			return os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		})
	}
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}
	// Subfonts are only read on first use, so a broken one shows up here.
	if font.MeasureString(face, glyphCheckText) <= 0 {
		return nil, fmt.Errorf("%w: %s has no drawable glyphs", ErrUnsupportedFont, path)
	}
	return face, nil
}

// NoFont never loads anything.
type NoFont struct{}

// Load always returns ErrNoFont.
func (NoFont) Load(string) (font.Face, error) {
	return nil, ErrNoFont
}

// AutoLoader picks a loader from the file extension.
type AutoLoader struct {
	OpenType OpenTypeLoader
	Plan9    Plan9Loader
}

// Load dispatches on the extension of path.
func (l AutoLoader) Load(path string) (font.Face, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return l.OpenType.Load(path)
	case ".font", ".subfont":
		return l.Plan9.Load(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFont, path)
	}
}

// LoaderFor maps a configured loader name to a FontLoader.
// size only applies to scalable fonts.
func LoaderFor(kind string, size float64) (FontLoader, error) {
	ot := OpenTypeLoader{Size: size, DPI: 72}
	switch kind {
	case LoaderAuto, "":
		return AutoLoader{OpenType: ot}, nil
	case LoaderOpenType:
		return ot, nil
	case LoaderPlan9:
		return Plan9Loader{}, nil
	case LoaderNone:
		return NoFont{}, nil
	default:
		return nil, fmt.Errorf("assets: unknown font loader %q", kind)
	}
}

// LoadOrDefault loads the font at path and returns nil on any failure,
// meaning "use the default face". Failures are only logged at debug level.
func LoadOrDefault(loader FontLoader, path string, logger *log.Logger) font.Face {
	face, err := loader.Load(path)
	if err != nil {
		if logger != nil {
			logger.Debug("custom font unavailable, using default", "path", path, "error", err)
		}
		return nil
	}
	if logger != nil {
		logger.Debug("custom font loaded", "path", path)
	}
	return face
}

func readFont(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrNoFont
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read font: %w", err)
	}
	return data, nil
}
