package image

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// StencilSize returns the side of the square stencil for a source of
// w x h pixels drawn at the given scale: twice the scaled longest side,
// rounded up, and never less than 2. The margin leaves room for any
// rotation about the center.
func StencilSize(w, h int, scale float64) int {
	size := int(math.Ceil(scale * float64(max(w, h))))
	size *= 2
	if size < 2 {
		size = 2
	}
	return size
}

// StencilTransform maps source pixels into a size x size stencil: the
// source center lands on the stencil center, then the source is scaled and
// rotated about that point.
func StencilTransform(w, h, size int, scale, rotation float64) Affine {
	half := float64(size / 2)
	return Translate(half, half).
		Multiply(Rotate(rotation)).
		Multiply(Scale(scale, scale)).
		Multiply(Translate(-float64(w/2), -float64(h/2)))
}

// Stencil renders src scaled and rotated into a new square RGBA image using
// nearest-neighbour sampling, then thresholds it so that every pixel is
// either fully opaque or fully transparent. A non-positive scale or an
// empty source yields a blank stencil.
func Stencil(src image.Image, scale, rotation float64) *image.RGBA {
	b := src.Bounds()
	size := StencilSize(b.Dx(), b.Dy(), scale)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if scale <= 0 || b.Empty() {
		return dst
	}

	m := StencilTransform(b.Dx(), b.Dy(), size, scale, rotation)
	// The transform is expressed for a source anchored at the origin.
	m = m.Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))
	xdraw.NearestNeighbor.Transform(dst, m.Aff3(), src, b, xdraw.Src, nil)

	Threshold(dst.Pix)
	return dst
}

// Threshold clears every pixel of pix whose alpha is below 255 and leaves
// opaque pixels untouched.
func Threshold(pix []uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] < 255 {
			pix[i+0] = 0
			pix[i+1] = 0
			pix[i+2] = 0
			pix[i+3] = 0
		}
	}
}
