package paint

import (
	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/raster"
)

// toolBehavior is implemented by each tool variant. Adding a tool means
// adding a variant and registering it in behaviorFor.
type toolBehavior interface {
	// apply handles the stroke moving from (x0, y0) to (x1, y1). The first
	// point of a stroke arrives with both ends equal.
	apply(e *Engine, s *stroke, x0, y0, x1, y1 int)
	// finish runs at stroke end, before the overlay is merged.
	finish(e *Engine, s *stroke)
}

func behaviorFor(t Tool) toolBehavior {
	switch t {
	case ToolEraser:
		return brushTool{erase: true}
	case ToolStamp:
		return stampTool{}
	case ToolFloodFill:
		return fillTool{}
	default:
		return brushTool{}
	}
}

// brushTool stamps filled circles along the stroke. Painting goes to the
// overlay; erasing clears pixels in the main buffer immediately.
type brushTool struct {
	erase bool
}

func (b brushTool) apply(e *Engine, s *stroke, x0, y0, x1, y1 int) {
	dst, c := e.overlay, s.color
	if b.erase {
		dst, c = e.main, Transparent
	}
	raster.Segment(x0, y0, x1, y1, func(x, y int) {
		dab(dst, x, y, s.radius, c)
		if s.mirror {
			dab(dst, dst.width-x, y, s.radius, c)
		}
	})
}

func (brushTool) finish(*Engine, *stroke) {}

// dab fills one brush circle of radius r centered at (x, y).
func dab(dst *Pixmap, x, y, r int, c Color) {
	raster.Disc(x, y, r, dst.width, dst.height, func(s raster.Span) {
		raster.FillSpan(dst.data, dst.width, s, c.R, c.G, c.B, c.A)
	})
}

// stampTool replaces the overlay with the stencil centered on the pointer.
// Only the latest point matters; intermediate positions are not stamped.
type stampTool struct{}

func (stampTool) apply(e *Engine, s *stroke, _, _, x, y int) {
	st := s.stencil
	if st == nil {
		return
	}
	e.overlay.Clear(Transparent)
	size := st.Bounds().Dx()
	at := blend.Bounds{X: x - size/2, Y: y - size/2, Width: size, Height: size}
	blend.Stamp(e.overlay.data, e.width, e.height, st.Pix, at, false)
	if s.mirror {
		// The mirrored stencil is flipped, so its left edge starts where
		// the mirror of the right edge lands.
		at.X = e.width - x - (size - size/2) + 1
		blend.Stamp(e.overlay.data, e.width, e.height, st.Pix, at, true)
	}
}

func (stampTool) finish(*Engine, *stroke) {}

// fillTool flood-fills the main buffer at the last stroke point when the
// stroke ends. Movement during the stroke only tracks the point.
type fillTool struct{}

func (fillTool) apply(*Engine, *stroke, int, int, int, int) {}

func (fillTool) finish(e *Engine, s *stroke) {
	plane := raster.AlphaPlane(e.main.data, e.width, e.height)
	n := raster.FloodFill(plane, s.lastX, s.lastY, s.empty, s.fill)
	if s.mirror {
		n += raster.FloodFill(plane, e.width-s.lastX, s.lastY, s.empty, s.fill)
	}
	Logger().Debug("paint: flood fill", "x", s.lastX, "y", s.lastY, "pixels", n)
}
