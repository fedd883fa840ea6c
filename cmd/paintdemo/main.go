// Command paintdemo replays a stroke script against a paint engine and
// writes the result as PNG, BMP or PDF.
//
// Usage:
//
//	paintdemo -script strokes.txt -output out.png
//	paintdemo -input photo.jpg -script strokes.txt -format pdf -output out.pdf
//
// Without -script a built-in demo script is used.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/codec"
)

const demoScript = `# brush strokes with a mirrored twin
color #d03020
size 6
mirror on
begin 40 40
move 120 160
move 60 260
end
mirror off

# ring, then fill its inside
color #2050c0
size 2
begin 200 60
move 260 80
move 280 140
move 240 190
move 180 170
move 170 110
move 200 60
end
tool fill
begin 225 125
end

text 48 paint
begin 200 250
end
`

func main() {
	var (
		width    = flag.Int("width", 320, "surface width")
		height   = flag.Int("height", 320, "surface height")
		script   = flag.String("script", "", "stroke script (default: built-in demo)")
		input    = flag.String("input", "", "image to import before replaying")
		output   = flag.String("output", "paint.png", "output file")
		format   = flag.String("format", "", "output format: png, bmp or pdf (default: from -output)")
		compress = flag.Bool("compress", false, "keep undo history zstd-compressed")
		verbose  = flag.Bool("v", false, "log engine events")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f := *format
	if f == "" {
		f = filepath.Ext(*output)
	}
	outFormat, err := codec.ParseFormat(f)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}

	var opts []paint.Option
	if *compress {
		opts = append(opts, paint.WithCompressedHistory())
	}

	e, err := newEngine(*input, *width, *height, opts)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	var src io.Reader = strings.NewReader(demoScript)
	if *script != "" {
		file, err := os.Open(filepath.Clean(*script))
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer func() { _ = file.Close() }()
		src = file
	}
	if err := run(e, src); err != nil {
		log.Fatalf("Script failed: %v", err)
	}

	pix, err := e.ExportSnapshot()
	if err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	if err := codec.Save(*output, outFormat, pix, e.Width(), e.Height()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d, %s)\n", *output, e.Width(), e.Height(), outFormat)
}

// newEngine creates the engine, sized to the input image when one is given.
func newEngine(input string, w, h int, opts []paint.Option) (*paint.Engine, error) {
	if input == "" {
		return paint.NewEngine(w, h, opts...)
	}
	img, err := codec.Load(input)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	e, err := paint.NewEngine(b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	if err := e.ImportImage(img); err != nil {
		return nil, err
	}
	return e, nil
}
