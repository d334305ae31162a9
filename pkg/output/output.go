package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/ppm"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats this package cannot encode
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format, default first
func Formats() []Format {
	return []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "pnm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from the file extension; no extension means PPM
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPPM, nil
	}
	return ParseFormat(ext)
}

// Encode writes the oriented frame buffer (row 0 at the top) in the given format
func Encode(w io.Writer, fb *renderer.FrameBuffer, format Format) error {
	switch format {
	case FormatPPM:
		return ppm.Encode(w, fb.Width, fb.Height, fb.Pix)
	case FormatPNG:
		return png.Encode(w, fb.Image())
	case FormatBMP:
		return bmp.Encode(w, fb.Image())
	case FormatTIFF:
		return tiff.Encode(w, fb.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile encodes fb to path, replacing any existing file. Missing parent
// directories are not created. On any failure the partially written file is
// removed and a wrapped error is returned.
func WriteFile(path string, fb *renderer.FrameBuffer, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	start := time.Now()
	if err := Encode(file, fb, format); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s as %s: %w", path, format, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	core.Logger().Debug("encode complete", "format", string(format), "elapsed", time.Since(start))

	core.Logger().Info("image saved", "path", path, "format", string(format), "width", fb.Width, "height", fb.Height)
	return nil
}
