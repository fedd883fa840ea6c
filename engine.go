package paint

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/history"
	intImage "github.com/gogpu/paint/internal/image"
)

// stroke is the state of an in-progress stroke. The tool settings are
// captured when the stroke begins; changing them mid-stroke affects the
// next stroke only.
type stroke struct {
	tool         Tool
	behavior     toolBehavior
	lastX, lastY int
	radius       int
	mirror       bool
	color        Color
	fill         uint8
	empty        uint8
	stencil      *image.RGBA
}

// stampRequest is a stencil selection waiting for its source to load.
type stampRequest struct {
	src      *StencilSource
	scale    float64
	rotation float64
}

// Engine owns a main pixel buffer and a same-sized overlay, applies tool
// edits driven by stroke events, and keeps a bounded undo history of
// whole-buffer snapshots.
//
// The engine never hands out its buffers: inspection methods return copies,
// and every snapshot in the history is independent of the live buffer.
//
// Engine is not safe for concurrent use.
type Engine struct {
	width   int
	height  int
	main    *Pixmap
	overlay *Pixmap

	config  Config
	stencil *image.RGBA
	pending *stampRequest
	stroke  *stroke

	codec history.Codec
	undos *history.Stack
	saved *history.Snapshot // main buffer as of the last recorded edit
}

// NewEngine creates an engine with a transparent width x height surface.
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.config.Tool.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTool, int(o.config.Tool))
	}
	if o.config.Tool == ToolStamp {
		return nil, ErrNoStencil
	}
	if o.config.BrushSize < 0 {
		o.config.BrushSize = 0
	}
	if o.config.HistorySize <= 0 {
		o.config.HistorySize = history.DefaultMaxSize
	}

	e := &Engine{
		width:   width,
		height:  height,
		main:    NewPixmap(width, height),
		overlay: NewPixmap(width, height),
		config:  o.config,
		codec:   history.Raw,
		undos:   history.NewStack(o.config.HistorySize),
	}
	if o.config.CompressHistory {
		e.codec = history.Zstd
	}

	saved, err := e.takeSnapshot()
	if err != nil {
		return nil, err
	}
	e.saved = saved

	Logger().Debug("paint: engine created",
		"width", width, "height", height,
		"history", o.config.HistorySize, "codec", e.codec.Name())
	return e, nil
}

// Width returns the surface width.
func (e *Engine) Width() int { return e.width }

// Height returns the surface height.
func (e *Engine) Height() int { return e.height }

// Config returns a copy of the current tool configuration.
func (e *Engine) Config() Config { return e.config }

// Pixel returns the main-buffer color at (x, y).
func (e *Engine) Pixel(x, y int) (Color, error) { return e.main.Get(x, y) }

// Snapshot returns a copy of the main buffer.
func (e *Engine) Snapshot() *Pixmap { return e.main.Clone() }

// Overlay returns a copy of the overlay holding the in-progress stroke.
func (e *Engine) Overlay() *Pixmap { return e.overlay.Clone() }

// Stroking reports whether a stroke is in progress.
func (e *Engine) Stroking() bool { return e.stroke != nil }

// SetTool selects the active tool. Selecting ToolStamp requires a stencil
// set earlier with SetStampStencil. Any stencil selection still waiting for
// its image is abandoned.
func (e *Engine) SetTool(t Tool) error {
	if !t.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTool, int(t))
	}
	if t == ToolStamp && e.stencil == nil {
		return ErrNoStencil
	}
	e.dropPending()
	e.config.Tool = t
	return nil
}

// SetBrushSize sets the brush radius in pixels. Negative sizes clamp to 0.
func (e *Engine) SetBrushSize(n int) {
	e.config.BrushSize = max(n, 0)
}

// SetMirrorMode enables or disables horizontal mirroring of every edit.
func (e *Engine) SetMirrorMode(enable bool) {
	e.config.Mirror = enable
}

// SetFloodFillColor sets the alpha value flood fill writes. The value it
// replaces is its complement, c^0xff.
func (e *Engine) SetFloodFillColor(c uint8) {
	e.config.FillColor = c
}

// SetBrushColor sets the color laid down by the paint tool.
func (e *Engine) SetBrushColor(c Color) {
	e.config.BrushColor = c
}

// SetStampStencil builds a stencil from src at the given scale and rotation
// (radians) and selects the stamp tool.
//
// If src is still pending, SetStampStencil returns ErrStencilNotReady and
// leaves the tool unchanged; the selection is replayed automatically when
// src resolves, unless another tool or stencil is selected first.
func (e *Engine) SetStampStencil(src *StencilSource, scale, rotation float64) error {
	if src == nil {
		return ErrNoStencil
	}
	req := &stampRequest{src: src, scale: scale, rotation: rotation}
	e.dropPending()
	if src.State() == StencilPending {
		e.pending = req
		src.onReady(func(img image.Image) {
			if e.pending != req {
				return
			}
			e.pending = nil
			e.applyStencil(req, img)
		})
		Logger().Debug("paint: stencil pending", "scale", scale, "rotation", rotation)
		return ErrStencilNotReady
	}
	e.applyStencil(req, src.Image())
	return nil
}

func (e *Engine) applyStencil(req *stampRequest, img image.Image) {
	e.stencil = intImage.Stencil(img, req.scale, req.rotation)
	e.config.Tool = ToolStamp
	Logger().Debug("paint: stencil ready",
		"size", e.stencil.Bounds().Dx(), "scale", req.scale, "rotation", req.rotation)
}

func (e *Engine) dropPending() {
	if e.pending != nil {
		Logger().Warn("paint: pending stencil superseded")
		e.pending = nil
	}
}

// StrokeBegin starts a stroke at (x, y) and applies the tool at that point.
// A stroke still in progress is cancelled first.
func (e *Engine) StrokeBegin(x, y int) {
	if e.stroke != nil {
		Logger().Warn("paint: stroke abandoned", "tool", e.stroke.tool)
		e.CancelStroke()
	}
	s := &stroke{
		tool:     e.config.Tool,
		behavior: behaviorFor(e.config.Tool),
		lastX:    x,
		lastY:    y,
		radius:   e.config.BrushSize,
		mirror:   e.config.Mirror,
		color:    e.config.BrushColor,
		fill:     e.config.FillColor,
		empty:    e.config.FillEmpty(),
	}
	if s.tool == ToolStamp {
		s.stencil = e.stencil
	}
	e.stroke = s
	Logger().Debug("paint: stroke begin", "tool", s.tool, "x", x, "y", y)
	s.behavior.apply(e, s, x, y, x, y)
}

// StrokeMove continues the stroke to (x, y). It is a no-op when no stroke
// is in progress.
func (e *Engine) StrokeMove(x, y int) {
	s := e.stroke
	if s == nil {
		return
	}
	s.behavior.apply(e, s, s.lastX, s.lastY, x, y)
	s.lastX, s.lastY = x, y
}

// StrokeEnd finishes the stroke: the tool completes its edit, the overlay
// is merged into the main buffer and one undo step is recorded. It is a
// no-op when no stroke is in progress.
func (e *Engine) StrokeEnd() error {
	s := e.stroke
	if s == nil {
		return nil
	}
	e.stroke = nil

	s.behavior.finish(e, s)
	n, err := blend.Merge(e.main.data, e.overlay.data)
	if err != nil {
		return err
	}
	Logger().Debug("paint: stroke end", "tool", s.tool, "merged", n)
	return e.record(s.tool.String())
}

// CancelStroke abandons the stroke in progress: the overlay is cleared
// without being merged and nothing is recorded. Eraser edits, which go to
// the main buffer directly, are rolled back to the last recorded state.
func (e *Engine) CancelStroke() {
	s := e.stroke
	if s == nil {
		return
	}
	e.stroke = nil
	e.overlay.Clear(Transparent)
	if s.tool == ToolEraser {
		if err := e.saved.Restore(e.main.data, e.width, e.height); err != nil {
			Logger().Error("paint: rollback cancelled erase", "err", err)
		}
	}
	Logger().Debug("paint: stroke cancelled", "tool", s.tool)
}

// Undo reverts the most recent edit. It reports false when there is
// nothing to undo. A stroke in progress is cancelled first.
func (e *Engine) Undo() (bool, error) {
	e.CancelStroke()
	cmd, ok := e.undos.Undo()
	if !ok {
		return false, nil
	}
	if err := e.restore(cmd.Before()); err != nil {
		return false, err
	}
	Logger().Debug("paint: undo", "command", cmd.ID(), "label", cmd.Label())
	return true, nil
}

// Redo reapplies the most recently undone edit. It reports false when there
// is nothing to redo. A stroke in progress is cancelled first.
func (e *Engine) Redo() (bool, error) {
	e.CancelStroke()
	cmd, ok := e.undos.Redo()
	if !ok {
		return false, nil
	}
	if err := e.restore(cmd.After()); err != nil {
		return false, err
	}
	Logger().Debug("paint: redo", "command", cmd.ID(), "label", cmd.Label())
	return true, nil
}

// CanUndo reports whether Undo would revert an edit.
func (e *Engine) CanUndo() bool { return e.undos.CanUndo() }

// CanRedo reports whether Redo would reapply an edit.
func (e *Engine) CanRedo() bool { return e.undos.CanRedo() }

// Clear makes the whole surface transparent and records one undo step.
func (e *Engine) Clear() error {
	e.CancelStroke()
	e.main.Clear(Transparent)
	Logger().Info("paint: clear")
	return e.record("clear")
}

// ClearToBlack fills the whole surface with opaque black and records one
// undo step.
func (e *Engine) ClearToBlack() error {
	e.CancelStroke()
	e.main.Clear(Black)
	Logger().Info("paint: clear to black")
	return e.record("clear-black")
}

// ExportSnapshot returns a copy of the main buffer's raw RGBA pixels.
// A stroke in progress is finished first so that the export matches what
// the user sees.
func (e *Engine) ExportSnapshot() ([]uint8, error) {
	if err := e.StrokeEnd(); err != nil {
		return nil, err
	}
	out := make([]uint8, len(e.main.data))
	copy(out, e.main.data)
	return out, nil
}

// ImportSnapshot replaces the main buffer with pix, raw RGBA of exactly
// Width()*Height()*4 bytes, and records one undo step.
func (e *Engine) ImportSnapshot(pix []uint8) error {
	if len(pix) != len(e.main.data) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrDimensionMismatch, len(pix), len(e.main.data))
	}
	e.CancelStroke()
	copy(e.main.data, pix)
	Logger().Info("paint: import snapshot", "bytes", len(pix))
	return e.record("import")
}

// ImportImage draws img over the main buffer at the origin and records one
// undo step. Parts of img beyond the surface are dropped.
func (e *Engine) ImportImage(img image.Image) error {
	e.CancelStroke()
	e.main.DrawImage(img)
	Logger().Info("paint: import image", "bounds", img.Bounds().String())
	return e.record("import")
}

// record pushes an undo command from the last recorded state to the
// current main buffer.
func (e *Engine) record(label string) error {
	after, err := e.takeSnapshot()
	if err != nil {
		return fmt.Errorf("paint: record %s: %w", label, err)
	}
	cmd := history.NewCommand(label, e.saved, after)
	if e.undos.Push(cmd) {
		Logger().Warn("paint: oldest undo step dropped", "max", e.undos.MaxSize())
	}
	e.saved = after
	Logger().Debug("paint: history push",
		slog.String("command", cmd.ID().String()),
		slog.String("label", label),
		slog.Int("depth", e.undos.Index()),
		slog.Int("bytes", after.Size()))
	return nil
}

func (e *Engine) takeSnapshot() (*history.Snapshot, error) {
	return history.Take(e.codec, e.main.data, e.width, e.height)
}

func (e *Engine) restore(s *history.Snapshot) error {
	if err := s.Restore(e.main.data, e.width, e.height); err != nil {
		if errors.Is(err, history.ErrDimensionMismatch) {
			return fmt.Errorf("%w: restore: %w", ErrDimensionMismatch, err)
		}
		return fmt.Errorf("paint: restore: %w", err)
	}
	e.saved = s
	return nil
}
