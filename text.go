package paint

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/paint/internal/cache"
)

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

type textKey struct {
	text  string
	size  float64
	color Color
}

// textImages holds recently rendered labels. Cached images are shared
// between sources and never modified.
var textImages = cache.New[textKey, *image.NRGBA](32)

// NewTextStencilSource renders text in Go Regular at the given pixel size
// and color and returns it as a Ready stencil source. The text is
// NFC-normalized first so that decomposed accents map to precomposed glyphs.
//
// Anti-aliased glyph edges are dropped when the stencil is thresholded, so
// sizes below roughly 10 pixels lose thin strokes.
func NewTextStencilSource(text string, size float64, c Color) (*StencilSource, error) {
	text = norm.NFC.String(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: text size %v", ErrInvalidDimensions, size)
	}

	key := textKey{text: text, size: size, color: c}
	if img, ok := textImages.Get(key); ok {
		return NewStencilSource(img)
	}

	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("paint: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("paint: create face: %w", err)
	}
	defer func() { _ = face.Close() }()

	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: text %q measures %dx%d", ErrInvalidDimensions, text, w, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	textImages.Set(key, img)

	Logger().Debug("paint: text stencil", "text", text, "size", size, "width", w, "height", h)
	return NewStencilSource(img)
}
