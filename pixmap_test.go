package thicklines

import (
	"bytes"
	"testing"
)

// TestPixmapSetGetPixel tests basic pixel access.
func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, Red)

	got := pm.GetPixel(3, 7)
	if got != Red {
		t.Errorf("GetPixel = %+v, want %+v", got, Red)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %+v, want transparent", got)
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds access is silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		pm.BlendPixel(c.x, c.y, Red, 1, BlendNormal)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}
	if !bytes.Equal(original, pm.Data()) {
		t.Fatal("out-of-bounds write modified pixel data")
	}
}

// TestPixmapClear fills every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Blue)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); got != Blue {
				t.Fatalf("pixel (%d, %d) = %+v, want blue", x, y, got)
			}
		}
	}
}

// TestFillCircleCenterSolid verifies the circle interior gets full coverage.
func TestFillCircleCenterSolid(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.FillCircle(10, 10, 5, Red, BlendNormal)

	if a := pm.AlphaAt(10, 10); a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := pm.AlphaAt(12, 10); a != 255 {
		t.Errorf("interior alpha = %d, want 255", a)
	}
	if a := pm.AlphaAt(0, 0); a != 0 {
		t.Errorf("far corner alpha = %d, want 0", a)
	}
}

// TestFillCircleDestinationOut verifies erasing punches transparency.
func TestFillCircleDestinationOut(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(Red)
	pm.FillCircle(10, 10, 4, Green, BlendDestinationOut)

	if a := pm.AlphaAt(10, 10); a != 0 {
		t.Errorf("erased center alpha = %d, want 0", a)
	}
	if a := pm.AlphaAt(0, 0); a != 255 {
		t.Errorf("untouched corner alpha = %d, want 255", a)
	}
}

// TestStampLineCoversEndpoints verifies a stamped line is solid at both ends
// and along the path.
func TestStampLineCoversEndpoints(t *testing.T) {
	pm := NewPixmap(40, 40)
	pm.StampLine(Pt(5, 20), Pt(35, 20), 6, Black, BlendNormal)

	for _, x := range []int{5, 20, 35} {
		if a := pm.AlphaAt(x, 20); a != 255 {
			t.Errorf("alpha at (%d, 20) = %d, want 255", x, a)
		}
	}
	if a := pm.AlphaAt(20, 5); a != 0 {
		t.Errorf("alpha off the path = %d, want 0", a)
	}
}

// TestQuadPoint verifies quadratic evaluation at the parameter extremes and
// the curve midpoint.
func TestQuadPoint(t *testing.T) {
	a, ctrl, b := Pt(0, 0), Pt(10, 20), Pt(20, 0)

	if got := quadPoint(a, ctrl, b, 0); got != a {
		t.Errorf("quadPoint(0) = %v, want %v", got, a)
	}
	if got := quadPoint(a, ctrl, b, 1); got != b {
		t.Errorf("quadPoint(1) = %v, want %v", got, b)
	}
	// At t=0.5 the curve passes through (a + 2*ctrl + b) / 4.
	got := quadPoint(a, ctrl, b, 0.5)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("quadPoint(0.5) = (%v, %v), want (10, 10)", got.X, got.Y)
	}
}

// TestDrawPixmapOpacity verifies half-opacity compositing.
func TestDrawPixmapOpacity(t *testing.T) {
	dst := NewPixmap(4, 4)
	dst.Clear(White)
	src := NewPixmap(4, 4)
	src.Clear(Black)

	dst.DrawPixmap(src, 0.5, BlendNormal)
	c := dst.GetPixel(2, 2)
	if c.R < 0.45 || c.R > 0.55 {
		t.Errorf("half-opacity black over white: R = %v, want about 0.5", c.R)
	}
	if c.A != 1 {
		t.Errorf("alpha = %v, want 1", c.A)
	}
}

// TestResizePreserve verifies content stays at the origin, unscaled, through
// grow and shrink.
func TestResizePreserve(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(2, 3, Red)

	grown := pm.ResizePreserve(20, 15)
	if grown.Width() != 20 || grown.Height() != 15 {
		t.Fatalf("grown dims = %dx%d, want 20x15", grown.Width(), grown.Height())
	}
	if got := grown.GetPixel(2, 3); got != Red {
		t.Errorf("grown pixel (2, 3) = %+v, want red", got)
	}
	if got := grown.GetPixel(15, 12); got != Transparent {
		t.Errorf("new area = %+v, want transparent", got)
	}

	shrunk := grown.ResizePreserve(5, 5)
	if got := shrunk.GetPixel(2, 3); got != Red {
		t.Errorf("shrunk pixel (2, 3) = %+v, want red", got)
	}
}

// TestBlitExact verifies Blit copies bytes without blending.
func TestBlitExact(t *testing.T) {
	src := NewPixmap(6, 6)
	src.SetPixel(1, 1, RGBA{R: 1, G: 0, B: 0, A: 0.5})

	dst := NewPixmap(6, 6)
	dst.Clear(Blue)
	dst.Blit(src)

	if !bytes.Equal(dst.Data(), src.Data()) {
		t.Error("Blit result differs from source bytes")
	}
}

// TestExtractClearPaste verifies the selection region primitives.
func TestExtractClearPaste(t *testing.T) {
	pm := NewPixmap(20, 20)
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			pm.SetPixel(x, y, Red)
		}
	}

	r := Rect{X: 2, Y: 2, W: 4, H: 4}
	patch := pm.ExtractRect(r)
	if got := patch.GetPixel(0, 0); got != Red {
		t.Fatalf("patch origin = %+v, want red", got)
	}

	pm.ClearRect(r)
	if a := pm.AlphaAt(3, 3); a != 0 {
		t.Errorf("cleared region alpha = %d, want 0", a)
	}

	pm.PasteAt(patch, 10, 10)
	if got := pm.GetPixel(11, 11); got != Red {
		t.Errorf("pasted pixel = %+v, want red", got)
	}
}

// TestPixmapImageInterface verifies image.Image round trips through
// FromImage exactly.
func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(4, 4, RGBA{R: 0.5, G: 0.25, B: 0.75, A: 0.5})

	back := FromImage(pm.ToImage())
	if !bytes.Equal(pm.Data(), back.Data()) {
		t.Error("FromImage(ToImage()) changed pixel bytes")
	}
}
