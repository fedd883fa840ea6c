package paint

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as straight RGBA, 4 bytes per pixel, row by row.
// The dimensions never change after creation.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new zero-initialized (fully transparent) pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// Performance-critical code iterates this slice directly.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Get returns the color of a single pixel.
func (p *Pixmap) Get(x, y int) (Color, error) {
	if !p.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}, nil
}

// Set sets the color of a single pixel.
func (p *Pixmap) Set(x, y int, c Color) error {
	if !p.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
	return nil
}

// CopyFrom replaces the contents of p with those of src byte for byte.
func (p *Pixmap) CopyFrom(src *Pixmap) error {
	if src.width != p.width || src.height != p.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrDimensionMismatch, src.width, src.height, p.width, p.height)
	}
	copy(p.data, src.data)
	return nil
}

// Clone returns an independent copy of p.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// Equal reports whether p and o have the same size and pixels.
func (p *Pixmap) Equal(o *Pixmap) bool {
	return p.width == o.width && p.height == o.height && bytes.Equal(p.data, o.data)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	if c == Transparent {
		clear(p.data)
		return
	}
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// nrgba views the pixel storage as an image.NRGBA without copying.
func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{Pix: p.data, Stride: p.width * 4, Rect: image.Rect(0, 0, p.width, p.height)}
}

// DrawImage composites img over the pixmap with its top-left corner at the
// origin. Parts of img beyond the pixmap are ignored.
func (p *Pixmap) DrawImage(img image.Image) {
	dst := p.nrgba()
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
}

// ToImage converts the pixmap to an independent image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	dst := pm.nrgba()
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c, err := p.Get(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
