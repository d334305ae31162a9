// Package ppm encodes and decodes the plain-text "P3" pixel map format.
//
// An encoded image is a header
//
//	P3
//	<width> <height>
//	255
//
// followed by one "R G B" line per pixel, top row first, left to right.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// Magic is the format tag of the plain-text pixel map
	Magic = "P3"
	// MaxValue is the only channel maximum this package writes
	MaxValue = 255
)

var (
	// ErrInvalidHeader is returned when a header cannot be parsed
	ErrInvalidHeader = errors.New("ppm: invalid header")
	// ErrInvalidBody is returned when pixel data is missing or out of range
	ErrInvalidBody = errors.New("ppm: invalid pixel data")
)

// Header describes the dimensions and channel range of an image
type Header struct {
	Width    int
	Height   int
	MaxValue int
}

// String returns the header text, newline-terminated
func (h Header) String() string {
	return fmt.Sprintf("%s\n%d %d\n%d\n", Magic, h.Width, h.Height, h.MaxValue)
}

// Encode writes a width x height RGB buffer (3 bytes per pixel, row-major,
// top row first) as a P3 image.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return fmt.Errorf("ppm: buffer has %d bytes, want %d for %dx%d", len(pix), width*height*3, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header{Width: width, Height: height, MaxValue: MaxValue}.String()); err != nil {
		return err
	}

	// "255 255 255\n" is the longest line
	line := make([]byte, 0, 12)
	for i := 0; i < len(pix); i += 3 {
		line = strconv.AppendUint(line[:0], uint64(pix[i]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(pix[i+1]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(pix[i+2]), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
