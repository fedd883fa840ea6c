// Package blend merges the stroke overlay into the main raster.
//
// Blending here is alpha-gated replacement rather than Porter-Duff
// compositing: a source pixel either overwrites the destination completely
// or leaves it alone.
package blend

import "errors"

// ErrSizeMismatch is returned when two rasters of different sizes are merged.
var ErrSizeMismatch = errors.New("blend: layer sizes differ")

// Bounds represents a rectangular region in pixel coordinates.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Merge copies every src pixel whose alpha is non-zero into dst, then zeroes
// src. Both slices hold interleaved RGBA of the same dimensions.
// It returns the number of pixels copied.
func Merge(dst, src []uint8) (int, error) {
	if len(dst) != len(src) {
		return 0, ErrSizeMismatch
	}
	n := 0
	for i := 0; i+3 < len(src); i += 4 {
		if src[i+3] > 0 {
			copy(dst[i:i+4], src[i:i+4])
			n++
		}
	}
	clear(src)
	return n, nil
}

// Stamp copies the non-transparent pixels of src, whose size is given by
// at.Width and at.Height, into dst with its top-left corner at (at.X, at.Y).
// The copy is clipped to the dstWidth x dstHeight destination. When flip is
// set, src is mirrored horizontally. It returns the number of pixels written.
func Stamp(dst []uint8, dstWidth, dstHeight int, src []uint8, at Bounds, flip bool) int {
	n := 0
	for sy := 0; sy < at.Height; sy++ {
		dy := at.Y + sy
		if dy < 0 || dy >= dstHeight {
			continue
		}
		for sx := 0; sx < at.Width; sx++ {
			dx := at.X + sx
			if dx < 0 || dx >= dstWidth {
				continue
			}
			col := sx
			if flip {
				col = at.Width - 1 - sx
			}
			si := (sy*at.Width + col) * 4
			if src[si+3] == 0 {
				continue
			}
			di := (dy*dstWidth + dx) * 4
			copy(dst[di:di+4], src[si:si+4])
			n++
		}
	}
	return n
}
