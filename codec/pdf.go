package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes img to w as a one-page PDF. The page measures one point
// per pixel and the image covers it edge to edge.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty image", ErrPixelSize)
	}
	wd, ht := float64(b.Dx()), float64(b.Dy())

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("codec: encode PDF image: %w", err)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opt, &buf)
	p.ImageOptions("canvas", 0, 0, wd, ht, false, opt, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("codec: write PDF: %w", err)
	}
	return nil
}
