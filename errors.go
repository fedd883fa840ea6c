package paint

import "errors"

// Errors returned by the engine and its buffers.
var (
	// ErrDimensionMismatch is returned when two buffers of different sizes
	// are copied or compared, or imported pixels do not match the surface.
	ErrDimensionMismatch = errors.New("paint: dimension mismatch")

	// ErrOutOfBounds is returned when a pixel outside the buffer is accessed.
	ErrOutOfBounds = errors.New("paint: coordinates out of bounds")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("paint: invalid dimensions")

	// ErrStencilNotReady signals that the stencil image has not loaded yet.
	// It is not a failure: the selection is replayed once the source resolves.
	ErrStencilNotReady = errors.New("paint: stencil not ready")

	// ErrStencilResolved is returned when a stencil source is resolved twice.
	ErrStencilResolved = errors.New("paint: stencil source already resolved")

	// ErrNoStencil is returned when the stamp tool is selected without a stencil.
	ErrNoStencil = errors.New("paint: no stamp stencil")

	// ErrUnknownTool is returned for a tool value outside the known set.
	ErrUnknownTool = errors.New("paint: unknown tool")

	// ErrEmptyText is returned when a text stencil is requested for an empty string.
	ErrEmptyText = errors.New("paint: empty stencil text")
)
