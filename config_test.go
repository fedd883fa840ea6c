package paint

import (
	"errors"
	"testing"
)

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{"paint", ToolPaint, false},
		{"Eraser", ToolEraser, false},
		{"stamp", ToolStamp, false},
		{"FILL", ToolFloodFill, false},
		{"lasso", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTool(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownTool) {
				t.Errorf("ParseTool(%q) error = %v, want ErrUnknownTool", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTool(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToolString(t *testing.T) {
	for _, tool := range []Tool{ToolPaint, ToolEraser, ToolStamp, ToolFloodFill} {
		back, err := ParseTool(tool.String())
		if err != nil || back != tool {
			t.Errorf("ParseTool(%q) = %v, %v, want %v", tool.String(), back, err, tool)
		}
	}
	if got := Tool(42).String(); got != "Tool(42)" {
		t.Errorf("Tool(42).String() = %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Tool != ToolPaint || c.BrushSize != 5 || c.HistorySize != 5 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if c.FillColor != 255 || c.FillEmpty() != 0 {
		t.Errorf("fill colors = %d/%d, want 255/0", c.FillColor, c.FillEmpty())
	}
	if c.BrushColor != Black {
		t.Errorf("BrushColor = %v, want opaque black", c.BrushColor)
	}
}

func TestOptions(t *testing.T) {
	red := Color{R: 255, A: 255}
	e, err := NewEngine(4, 4,
		WithHistorySize(9),
		WithCompressedHistory(),
		WithBrushColor(red),
	)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	c := e.Config()
	if c.HistorySize != 9 || !c.CompressHistory || c.BrushColor != red {
		t.Errorf("Config() = %+v", c)
	}

	cfg := DefaultConfig()
	cfg.BrushSize = 2
	cfg.Mirror = true
	e, err = NewEngine(4, 4, WithConfig(cfg), WithHistorySize(3))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if c := e.Config(); c.BrushSize != 2 || !c.Mirror || c.HistorySize != 3 {
		t.Errorf("Config() = %+v", c)
	}
}
