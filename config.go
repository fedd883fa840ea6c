package paint

import (
	"fmt"
	"strings"
)

// Tool selects how stroke points modify the surface.
type Tool int

// The closed set of tools.
const (
	// ToolPaint draws filled brush circles on the overlay.
	ToolPaint Tool = iota
	// ToolEraser clears brush circles directly in the main buffer.
	ToolEraser
	// ToolStamp places the stamp stencil on the overlay at the pointer.
	ToolStamp
	// ToolFloodFill fills the region under the final stroke point.
	ToolFloodFill
)

var toolNames = [...]string{
	ToolPaint:     "paint",
	ToolEraser:    "eraser",
	ToolStamp:     "stamp",
	ToolFloodFill: "fill",
}

// String returns the tool name.
func (t Tool) String() string {
	if t.valid() {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

func (t Tool) valid() bool {
	return t >= ToolPaint && t <= ToolFloodFill
}

// ParseTool returns the tool with the given name.
func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if strings.EqualFold(name, n) {
			return Tool(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Config is the tool configuration held by one Engine.
type Config struct {
	// Tool is the active tool.
	Tool Tool

	// BrushSize is the brush radius in pixels. Zero paints single pixels.
	BrushSize int

	// Mirror duplicates every edit at the horizontally mirrored position.
	Mirror bool

	// FillColor is the alpha value written by flood fill. Pixels whose
	// alpha equals FillColor^0xff are considered empty.
	FillColor uint8

	// BrushColor is the color laid down by the paint tool.
	BrushColor Color

	// HistorySize bounds the number of undoable edits.
	HistorySize int

	// CompressHistory stores undo snapshots zstd-compressed.
	CompressHistory bool
}

// DefaultConfig returns the configuration of a fresh engine.
func DefaultConfig() Config {
	return Config{
		Tool:        ToolPaint,
		BrushSize:   5,
		FillColor:   255,
		BrushColor:  Black,
		HistorySize: 5,
	}
}

// FillEmpty returns the alpha value flood fill replaces.
func (c Config) FillEmpty() uint8 {
	return c.FillColor ^ 0xff
}
