package paint

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Defaults: paint tool, radius 5, five undo steps
//	e, err := paint.NewEngine(800, 600)
//
//	// Longer, compressed history
//	e, err := paint.NewEngine(800, 600,
//	    paint.WithHistorySize(50),
//	    paint.WithCompressedHistory())
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	config Config
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{config: DefaultConfig()}
}

// WithConfig replaces the whole starting configuration.
// Options applied after it still modify individual fields.
func WithConfig(c Config) Option {
	return func(o *engineOptions) {
		o.config = c
	}
}

// WithHistorySize sets how many edits can be undone.
// Non-positive values select the default of five.
func WithHistorySize(n int) Option {
	return func(o *engineOptions) {
		o.config.HistorySize = n
	}
}

// WithCompressedHistory stores undo snapshots zstd-compressed.
// Snapshots of large, mostly uniform surfaces shrink by orders of
// magnitude at the cost of a decode on every undo and redo.
func WithCompressedHistory() Option {
	return func(o *engineOptions) {
		o.config.CompressHistory = true
	}
}

// WithBrushColor sets the color laid down by the paint tool.
func WithBrushColor(c Color) Option {
	return func(o *engineOptions) {
		o.config.BrushColor = c
	}
}
