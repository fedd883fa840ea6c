package raster

// Plane addresses a single channel of an interleaved RGBA raster.
type Plane struct {
	Pix     []uint8
	Width   int
	Height  int
	Channel int // 0..3, 3 is alpha
}

// AlphaPlane returns the alpha channel plane of pix.
func AlphaPlane(pix []uint8, width, height int) Plane {
	return Plane{Pix: pix, Width: width, Height: height, Channel: 3}
}

func (p Plane) index(x, y int) int {
	return Offset(x, y, p.Width) + p.Channel
}

// At returns the channel value at (x, y). The point must be in range.
func (p Plane) At(x, y int) uint8 {
	return p.Pix[p.index(x, y)]
}

// FloodFill replaces the channel value empty with fill over the 4-connected
// region containing the seed (x, y) and returns the number of pixels changed.
//
// The fill works on spans: a work list holds horizontal runs that may need
// filling. Each popped span is extended left and right while the predicate
// holds, its eligible pixels are filled, and contiguous runs of filled pixels
// seed new spans on the rows above and below. Some pixels are examined more
// than once; each is written at most once because a filled pixel no longer
// matches empty.
//
// A seed outside the plane, a seed whose value is not empty, or empty == fill
// are no-ops.
func FloodFill(p Plane, x, y int, empty, fill uint8) int {
	if empty == fill {
		return 0
	}
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return 0
	}
	need := func(x, y int) bool {
		return p.At(x, y) == empty
	}

	work := []Span{{X0: x, X1: x, Y: y}}
	filled := 0
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		if s.Y < 0 || s.Y >= p.Height {
			continue
		}

		if need(s.X0, s.Y) && s.X0 > 0 && need(s.X0-1, s.Y) {
			left := s.X0 - 1
			for left > 0 && need(left-1, s.Y) {
				left--
			}
			work = append(work, Span{X0: left, X1: s.X0 - 1, Y: s.Y})
		}
		if need(s.X1, s.Y) && s.X1 < p.Width-1 && need(s.X1+1, s.Y) {
			right := s.X1 + 1
			for right < p.Width-1 && need(right+1, s.Y) {
				right++
			}
			work = append(work, Span{X0: s.X1 + 1, X1: right, Y: s.Y})
		}

		// Indices into work of the spans being grown on the neighbour rows.
		above, below := -1, -1
		for x := s.X0; x <= s.X1; x++ {
			i := p.index(x, s.Y)
			if p.Pix[i] != empty {
				continue
			}
			p.Pix[i] = fill
			filled++

			if above < 0 || work[above].X1 != x-1 {
				work = append(work, Span{X0: x, X1: x, Y: s.Y - 1})
				above = len(work) - 1
			}
			work[above].X1 = x

			if below < 0 || work[below].X1 != x-1 {
				work = append(work, Span{X0: x, X1: x, Y: s.Y + 1})
				below = len(work) - 1
			}
			work[below].X1 = x
		}
	}
	return filled
}
