// Package paint provides a raster painting engine for Go.
//
// # Overview
//
// An Engine owns a fixed-size RGBA surface and applies tool edits driven
// by stroke events (begin, move, end). Brush and stamp strokes are drawn
// on a transparent overlay and merged into the surface when the stroke
// ends, so a stroke can be abandoned without touching the surface. Every
// finished edit records one undo step holding whole-surface snapshots.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	e, err := paint.NewEngine(512, 512)
//	if err != nil {
//	    return err
//	}
//
//	// Paint a red line with a 4 pixel brush
//	c, _ := paint.ParseColor("#ff0000")
//	e.SetBrushColor(c)
//	e.SetBrushSize(4)
//	e.StrokeBegin(10, 10)
//	e.StrokeMove(200, 120)
//	_ = e.StrokeEnd()
//
//	// Undo it
//	_, _ = e.Undo()
//
//	// Raw RGBA for the codec package
//	pix, _ := e.ExportSnapshot()
//
// # Tools
//
//   - ToolPaint stamps filled circles along the stroke onto the overlay
//   - ToolEraser clears circles in the surface immediately
//   - ToolStamp places a thresholded stencil image at the pointer
//   - ToolFloodFill fills the alpha region under the final stroke point
//
// Mirror mode repeats every edit at the horizontally mirrored position.
//
// # Stencils
//
// Stamp stencils come from a StencilSource, which may still be loading.
// Selecting a pending source returns ErrStencilNotReady and the selection
// completes when the source is resolved. NewTextStencilSource renders a
// text label as a ready source.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Points
// outside the surface are clipped, never rejected.
//
// # Concurrency
//
// An Engine is single-threaded. All calls, including StencilSource.Resolve,
// must come from the goroutine that owns the engine.
package paint
