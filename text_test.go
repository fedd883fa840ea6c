package paint

import (
	"image"
	"testing"
)

func TestTextStencilCached(t *testing.T) {
	a, err := NewTextStencilSource("café", 20, Black)
	if err != nil {
		t.Fatal(err)
	}
	// Precomposed and decomposed forms normalize to the same label.
	b, err := NewTextStencilSource("cafe\u0301", 20, Black)
	if err != nil {
		t.Fatal(err)
	}
	if a.Image() != b.Image() {
		t.Error("equal labels were rendered twice")
	}

	c, err := NewTextStencilSource("café", 20, White)
	if err != nil {
		t.Fatal(err)
	}
	if c.Image() == a.Image() {
		t.Error("labels of different colors share an image")
	}
}

func TestTextStencilOpaqueGlyphs(t *testing.T) {
	src, err := NewTextStencilSource("I", 40, Black)
	if err != nil {
		t.Fatal(err)
	}
	img, ok := src.Image().(*image.NRGBA)
	if !ok {
		t.Fatalf("Image() is %T, want *image.NRGBA", src.Image())
	}
	solid := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			solid++
		}
	}
	if solid == 0 {
		t.Error("rendered label has no opaque pixels")
	}
}
