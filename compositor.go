package thicklines

import "math"

// rulerSpacing is the gap between ruler ticks in drawing-space CSS pixels.
const rulerSpacing = 50.0

// Compositor reads the layer stack and produces the visible frame.
// Overlay decorations draw last and never mutate any layer, so a refresh
// with unchanged state is bit-identical to the previous one.
type Compositor struct {
	Background RGBA

	// ShowRulers enables measurement ruler ticks along the top and left
	// frame edges.
	ShowRulers bool

	// Guide, when non-nil, draws a cursor crosshair at the given
	// drawing-space position.
	Guide *Point
}

// Refresh composites the stack bottom-to-top into dst: clear to the theme
// background, then draw each visible layer with its opacity and blend mode.
// Hidden layers are skipped outright. Overlays draw last.
func (c *Compositor) Refresh(dst *Pixmap, stack *Stack, vp *Viewport) {
	dst.Clear(c.Background)
	for _, layer := range stack.Layers() {
		if !layer.Visible {
			continue
		}
		dst.DrawPixmap(layer.Raster(), layer.Opacity, layer.Blend)
	}
	c.drawOverlays(dst, vp)
}

func (c *Compositor) drawOverlays(dst *Pixmap, vp *Viewport) {
	if c.ShowRulers {
		c.drawRulers(dst, vp)
	}
	if c.Guide != nil {
		c.drawGuide(dst, *c.Guide)
	}
}

// drawRulers draws tick marks along the top and left edges, spaced by the
// current zoom so ticks track drawing-space distances.
func (c *Compositor) drawRulers(dst *Pixmap, vp *Viewport) {
	tick := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.9}
	spacing := rulerSpacing * vp.Zoom * vp.DPR
	if spacing < 4 {
		return
	}

	// Ticks are anchored to the pan offset so drawing-space zero stays
	// aligned while panning.
	startX := math.Mod(vp.PanX*vp.DPR, spacing)
	if startX < 0 {
		startX += spacing
	}
	for x := startX; x < float64(dst.Width()); x += spacing {
		xi := int(x)
		for y := 0; y < 6; y++ {
			dst.BlendPixel(xi, y, tick, 1, BlendNormal)
		}
	}

	startY := math.Mod(vp.PanY*vp.DPR, spacing)
	if startY < 0 {
		startY += spacing
	}
	for y := startY; y < float64(dst.Height()); y += spacing {
		yi := int(y)
		for x := 0; x < 6; x++ {
			dst.BlendPixel(x, yi, tick, 1, BlendNormal)
		}
	}
}

// drawGuide draws a small crosshair at the cursor's drawing-space position.
func (c *Compositor) drawGuide(dst *Pixmap, at Point) {
	guide := RGBA{R: 0.2, G: 0.5, B: 1, A: 0.8}
	cx, cy := int(at.X), int(at.Y)
	for d := -5; d <= 5; d++ {
		if d == 0 {
			continue
		}
		dst.BlendPixel(cx+d, cy, guide, 1, BlendNormal)
		dst.BlendPixel(cx, cy+d, guide, 1, BlendNormal)
	}
}
