package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// tokenReader splits PPM text into whitespace-separated tokens, skipping '#' comments
type tokenReader struct {
	r *bufio.Reader
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func (tr *tokenReader) next() (string, error) {
	var token []byte
	for {
		b, err := tr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}

		switch {
		case b == '#' && len(token) == 0:
			if _, err := tr.r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
		case isSpace(b):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func (tr *tokenReader) nextInt(what string, lo, hi int) (int, error) {
	token, err := tr.next()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	v, err := strconv.Atoi(token)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%s %q out of range [%d,%d]", what, token, lo, hi)
	}
	return v, nil
}

// MaxPixels bounds Width*Height accepted by the decoder
const MaxPixels = 1 << 28

// initialSamples caps the up-front allocation; the buffer grows as samples arrive
const initialSamples = 1 << 20

// Decoder reads a P3 image from a stream
type Decoder struct {
	tokens tokenReader
	header *Header
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{tokens: tokenReader{r: bufio.NewReader(r)}}
}

// Header parses and returns the image header. Repeated calls return the cached header.
func (d *Decoder) Header() (Header, error) {
	if d.header != nil {
		return *d.header, nil
	}

	magic, err := d.tokens.next()
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading magic: %v", ErrInvalidHeader, err)
	}
	if magic != Magic {
		return Header{}, fmt.Errorf("%w: magic %q, want %q", ErrInvalidHeader, magic, Magic)
	}

	var h Header
	if h.Width, err = d.tokens.nextInt("width", 1, 1<<24); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if h.Height, err = d.tokens.nextInt("height", 1, 1<<24); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if int64(h.Width)*int64(h.Height) > MaxPixels {
		return Header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidHeader, h.Width, h.Height, MaxPixels)
	}
	if h.MaxValue, err = d.tokens.nextInt("max value", 1, 65535); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}

	d.header = &h
	return h, nil
}

// Decode reads the header and every pixel. Channels are rescaled to 0-255
// when the header's max value differs from 255.
func (d *Decoder) Decode() (Header, []byte, error) {
	h, err := d.Header()
	if err != nil {
		return Header{}, nil, err
	}

	n := h.Width * h.Height * 3
	pix := make([]byte, 0, min(n, initialSamples))
	for i := range n {
		v, err := d.tokens.nextInt("channel", 0, h.MaxValue)
		if err != nil {
			return Header{}, nil, fmt.Errorf("%w: sample %d: %v", ErrInvalidBody, i, err)
		}
		if h.MaxValue != MaxValue {
			v = v * MaxValue / h.MaxValue
		}
		pix = append(pix, byte(v))
	}

	return h, pix, nil
}

// DecodeHeader parses only the header of a P3 image
func DecodeHeader(r io.Reader) (Header, error) {
	return NewDecoder(r).Header()
}

// Decode parses a complete P3 image into a row-major RGB buffer
func Decode(r io.Reader) (Header, []byte, error) {
	return NewDecoder(r).Decode()
}
