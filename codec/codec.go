// Package codec moves engine snapshots in and out of image files.
//
// Decoding accepts PNG, JPEG, BMP, TIFF and WebP. Encoding writes PNG, BMP
// or a single-page PDF. Pixel data crosses the boundary as the raw straight
// RGBA layout returned by Engine.ExportSnapshot.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Errors.
var (
	// ErrUnsupportedFormat is returned for an output format codec cannot write.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("codec: empty data")

	// ErrPixelSize is returned when a pixel slice does not match its dimensions.
	ErrPixelSize = errors.New("codec: pixel data does not match dimensions")
)

// Format is an output file format.
type Format string

// Output formats.
const (
	PNG Format = "png"
	BMP Format = "bmp"
	PDF Format = "pdf"
)

// ParseFormat returns the format named by s, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	switch f {
	case PNG, BMP, PDF:
		return f, nil
	case "":
		return PNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Decode decodes an image from r, detecting the format from its content.
// It returns the format name reported by the image package.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	return img, err
}

// Image wraps raw straight RGBA pixels as an image without copying.
func Image(pix []uint8, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrPixelSize, len(pix), width, height)
	}
	return &image.NRGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}, nil
}

// EncodePNG writes raw RGBA pixels to w as PNG.
func EncodePNG(w io.Writer, pix []uint8, width, height int) error {
	img, err := Image(pix, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("codec: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes raw RGBA pixels to w as a 32-bit BMP.
func EncodeBMP(w io.Writer, pix []uint8, width, height int) error {
	img, err := Image(pix, width, height)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("codec: encode BMP: %w", err)
	}
	return nil
}

// Encode writes raw RGBA pixels to w in the given format.
func Encode(w io.Writer, f Format, pix []uint8, width, height int) error {
	switch f {
	case PNG:
		return EncodePNG(w, pix, width, height)
	case BMP:
		return EncodeBMP(w, pix, width, height)
	case PDF:
		img, err := Image(pix, width, height)
		if err != nil {
			return err
		}
		return WritePDF(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// Save writes raw RGBA pixels to the file at path in the given format.
func Save(path string, f Format, pix []uint8, width, height int) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	if err := Encode(file, f, pix, width, height); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
