package paint

import (
	"image"
)

// StencilState is the readiness of a StencilSource.
type StencilState int

const (
	// StencilPending means the source image has not loaded yet.
	StencilPending StencilState = iota
	// StencilReady means the source image is available.
	StencilReady
)

// String returns "pending" or "ready".
func (s StencilState) String() string {
	if s == StencilReady {
		return "ready"
	}
	return "pending"
}

// StencilSource is an image used by the stamp tool that may still be
// loading. It moves from Pending to Ready exactly once, when Resolve is
// called, and runs the callbacks registered while it was pending.
//
// A StencilSource is not safe for concurrent use; Resolve must run on the
// goroutine that drives the engine.
type StencilSource struct {
	img     image.Image
	waiters []func(image.Image)
}

// NewStencilSource returns a Ready source for img. A nil img is
// ErrNoStencil; use NewPendingStencilSource for an image still loading.
func NewStencilSource(img image.Image) (*StencilSource, error) {
	if img == nil {
		return nil, ErrNoStencil
	}
	return &StencilSource{img: img}, nil
}

// NewPendingStencilSource returns a source whose image arrives later
// through Resolve.
func NewPendingStencilSource() *StencilSource {
	return &StencilSource{}
}

// State reports whether the image has arrived.
func (s *StencilSource) State() StencilState {
	if s.img != nil {
		return StencilReady
	}
	return StencilPending
}

// Image returns the source image, or nil while pending.
func (s *StencilSource) Image() image.Image {
	return s.img
}

// Resolve supplies the image, moves the source to Ready and replays every
// pending request in registration order. A nil img is ErrNoStencil and
// leaves the source pending.
func (s *StencilSource) Resolve(img image.Image) error {
	if s.img != nil {
		return ErrStencilResolved
	}
	if img == nil {
		return ErrNoStencil
	}
	s.img = img
	waiters := s.waiters
	s.waiters = nil
	for _, fn := range waiters {
		fn(img)
	}
	return nil
}

// onReady runs fn immediately when the source is ready, otherwise once it
// resolves.
func (s *StencilSource) onReady(fn func(image.Image)) {
	if s.img != nil {
		fn(s.img)
		return
	}
	s.waiters = append(s.waiters, fn)
}
