package thicklines

import (
	"bytes"
	"testing"
)

// TestRefreshDeterministic verifies a second refresh with unchanged state
// produces a bit-identical frame.
func TestRefreshDeterministic(t *testing.T) {
	stack := NewStack(32, 32)
	stack.Current().Raster().FillCircle(16, 16, 8, Red, BlendNormal)
	stack.Add("A", 32, 32)
	stack.Current().Raster().StampLine(Pt(4, 4), Pt(28, 28), 3, Blue, BlendNormal)
	stack.Layers()[1].Opacity = 0.6

	vp := NewViewport(32, 32, 1)
	comp := &Compositor{Background: White, ShowRulers: true}

	frame := NewPixmap(32, 32)
	comp.Refresh(frame, stack, vp)
	first := append([]uint8(nil), frame.Data()...)

	comp.Refresh(frame, stack, vp)
	if !bytes.Equal(first, frame.Data()) {
		t.Error("second refresh differs from first with unchanged state")
	}
}

// TestRefreshSkipsHiddenLayers verifies invisible layers contribute nothing.
func TestRefreshSkipsHiddenLayers(t *testing.T) {
	stack := NewStack(8, 8)
	stack.Add("A", 8, 8)
	stack.Current().Raster().Clear(Red)
	stack.Current().Visible = false

	comp := &Compositor{Background: White}
	frame := NewPixmap(8, 8)
	comp.Refresh(frame, stack, NewViewport(8, 8, 1))

	if got := frame.GetPixel(4, 4); got != White {
		t.Errorf("pixel = %v, want white (hidden layer leaked)", got)
	}
}

// TestRefreshLayerOpacity verifies layer opacity attenuates its contribution.
func TestRefreshLayerOpacity(t *testing.T) {
	stack := NewStack(8, 8)
	stack.Current().Raster().Clear(Black)
	stack.Current().Opacity = 0.5

	comp := &Compositor{Background: White}
	frame := NewPixmap(8, 8)
	comp.Refresh(frame, stack, NewViewport(8, 8, 1))

	got := frame.GetPixel(4, 4)
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("R = %v, want about 0.5", got.R)
	}
	if got.A != 1 {
		t.Errorf("A = %v, want 1", got.A)
	}
}

// TestRefreshBottomToTop verifies stacking order: an opaque upper layer
// wins over a lower one.
func TestRefreshBottomToTop(t *testing.T) {
	stack := NewStack(8, 8)
	stack.Current().Raster().Clear(Red)
	stack.Add("A", 8, 8)
	stack.Current().Raster().Clear(Blue)

	comp := &Compositor{Background: White}
	frame := NewPixmap(8, 8)
	comp.Refresh(frame, stack, NewViewport(8, 8, 1))

	if got := frame.GetPixel(4, 4); got != Blue {
		t.Errorf("pixel = %v, want blue on top", got)
	}
}

// TestRefreshOverlaysNeverTouchLayers verifies rulers and the guide draw
// on the frame only.
func TestRefreshOverlaysNeverTouchLayers(t *testing.T) {
	stack := NewStack(64, 64)
	before := append([]uint8(nil), stack.Current().Raster().Data()...)

	guide := Pt(30, 30)
	comp := &Compositor{Background: White, ShowRulers: true, Guide: &guide}
	frame := NewPixmap(64, 64)
	comp.Refresh(frame, stack, NewViewport(64, 64, 1))

	if !bytes.Equal(before, stack.Current().Raster().Data()) {
		t.Error("overlay drawing mutated a layer raster")
	}

	// The guide crosshair must be visible on the frame itself.
	if frame.GetPixel(32, 30) == White {
		t.Error("guide crosshair missing from frame")
	}
}
