// Package raster provides the pixel-level algorithms of the paint engine.
//
// Every function here works on an interleaved RGBA byte slice of a known
// width and height. Callers own the slice; nothing is retained between calls.
package raster

// BytesPerPixel is the stride of one pixel in an interleaved RGBA slice.
const BytesPerPixel = 4

// Span is a horizontal run of pixels on row Y, from X0 to X1 inclusive.
type Span struct {
	X0, X1 int
	Y      int
}

// Len returns the number of pixels covered by the span.
func (s Span) Len() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// Offset returns the byte offset of pixel (x, y) in a raster of the given width.
func Offset(x, y, width int) int {
	return (y*width + x) * BytesPerPixel
}

// FillSpan writes the quad (r, g, b, a) into every pixel of s.
// The span must already be clipped to the raster. An empty span is a no-op.
func FillSpan(pix []uint8, width int, s Span, r, g, b, a uint8) {
	if s.Len() == 0 {
		return
	}
	end := Offset(s.X1, s.Y, width)
	for i := Offset(s.X0, s.Y, width); i <= end; i += BytesPerPixel {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}
