package image

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// opaqueBox returns the number of opaque pixels in img and their bounding box.
func opaqueBox(img *image.RGBA) (int, image.Rectangle) {
	n := 0
	var box image.Rectangle
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			a := img.Pix[img.PixOffset(x, y)+3]
			switch a {
			case 255:
				n++
				box = box.Union(image.Rect(x, y, x+1, y+1))
			case 0:
			default:
				panic("stencil pixel is neither opaque nor transparent")
			}
		}
	}
	return n, box
}

func TestStencilSize(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
		want  int
	}{
		{2, 2, 1, 4},
		{10, 3, 1, 20},
		{3, 10, 0.5, 10},
		{5, 5, 0.3, 4},
		{1, 1, 0.01, 2},
		{0, 0, 1, 2},
	}
	for _, tt := range tests {
		if got := StencilSize(tt.w, tt.h, tt.scale); got != tt.want {
			t.Errorf("StencilSize(%d, %d, %v) = %d, want %d", tt.w, tt.h, tt.scale, got, tt.want)
		}
	}
}

func TestStencilIdentity(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	st := Stencil(solid(2, 2, red), 1, 0)

	if st.Bounds().Dx() != 4 || st.Bounds().Dy() != 4 {
		t.Fatalf("stencil size = %v, want 4x4", st.Bounds())
	}
	n, box := opaqueBox(st)
	if n != 4 {
		t.Errorf("opaque pixels = %d, want 4", n)
	}
	if want := image.Rect(1, 1, 3, 3); box != want {
		t.Errorf("opaque box = %v, want %v", box, want)
	}
	if c := st.RGBAAt(1, 1); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("stencil color = %v, want opaque red", c)
	}
}

func TestStencilScaled(t *testing.T) {
	st := Stencil(solid(2, 2, color.NRGBA{A: 255}), 2, 0)
	if st.Bounds().Dx() != 8 {
		t.Fatalf("stencil size = %d, want 8", st.Bounds().Dx())
	}
	n, box := opaqueBox(st)
	if n != 16 {
		t.Errorf("opaque pixels = %d, want 16", n)
	}
	if want := image.Rect(2, 2, 6, 6); box != want {
		t.Errorf("opaque box = %v, want %v", box, want)
	}
}

func TestStencilRotated(t *testing.T) {
	st := Stencil(solid(4, 2, color.NRGBA{B: 255, A: 255}), 1, math.Pi/2)
	n, box := opaqueBox(st)
	if n != 8 {
		t.Errorf("opaque pixels = %d, want 8", n)
	}
	if box.Dx() != 2 || box.Dy() != 4 {
		t.Errorf("rotated box = %v, want 2 wide and 4 tall", box)
	}
}

func TestStencilThresholdsAlpha(t *testing.T) {
	src := solid(2, 1, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 254})

	n, _ := opaqueBox(Stencil(src, 1, 0))
	if n != 1 {
		t.Errorf("opaque pixels = %d, want 1", n)
	}
}

func TestStencilDegenerate(t *testing.T) {
	st := Stencil(solid(3, 3, color.NRGBA{A: 255}), 0, 0)
	if n, _ := opaqueBox(st); n != 0 {
		t.Errorf("zero-scale stencil has %d opaque pixels, want 0", n)
	}
}

func TestThreshold(t *testing.T) {
	pix := []uint8{
		10, 20, 30, 255,
		10, 20, 30, 254,
		10, 20, 30, 0,
	}
	Threshold(pix)
	want := []uint8{
		10, 20, 30, 255,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}
