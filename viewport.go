package thicklines

import "math"

// Zoom limits for the viewport.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// Viewport maps between input-device (client) space and drawing space.
// Pan values are in CSS pixels; drawing space is the backing-pixel grid of
// the raster surfaces. Pure coordinate state, no rendering dependencies.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64
	DPR  float64

	// Screen offset of the drawing surface within the client area.
	OffsetX float64
	OffsetY float64

	cssW     float64
	cssH     float64
	backingW int
	backingH int
}

// NewViewport creates a viewport for a surface of the given CSS dimensions
// and device pixel ratio.
func NewViewport(cssW, cssH, dpr float64) *Viewport {
	if dpr < 1 {
		dpr = 1
	}
	v := &Viewport{Zoom: 1, DPR: dpr}
	v.Resize(cssW, cssH, dpr)
	return v
}

// BackingSize returns the backing-pixel dimensions of the surface.
func (v *Viewport) BackingSize() (int, int) {
	return v.backingW, v.backingH
}

// CSSSize returns the CSS-pixel dimensions of the surface.
func (v *Viewport) CSSSize() (float64, float64) {
	return v.cssW, v.cssH
}

// ToDrawingSpace converts client coordinates to backing-pixel drawing space.
// It is the exact inverse of the rendering transform: subtract the surface
// offset, subtract pan, divide by zoom, then scale CSS pixels to backing
// pixels per axis.
func (v *Viewport) ToDrawingSpace(clientX, clientY float64) Point {
	x := (clientX - v.OffsetX - v.PanX) / v.Zoom
	y := (clientY - v.OffsetY - v.PanY) / v.Zoom
	if v.cssW > 0 {
		x *= float64(v.backingW) / v.cssW
	}
	if v.cssH > 0 {
		y *= float64(v.backingH) / v.cssH
	}
	return Point{X: x, Y: y}
}

// ZoomBy adjusts zoom by delta, clamped to [MinZoom, MaxZoom]. When the zoom
// actually changes, pan is recomputed so that the anchor's drawing-space
// coordinate is invariant (zoom toward the anchor, not toward the origin).
// The anchor is in client coordinates.
func (v *Viewport) ZoomBy(delta float64, anchorX, anchorY float64) {
	old := v.Zoom
	next := math.Max(MinZoom, math.Min(MaxZoom, old+delta))
	if next == old {
		return
	}
	// newPan = anchor - (anchor - oldPan) * (newZoom / oldZoom),
	// in surface-local CSS coordinates.
	ax := anchorX - v.OffsetX
	ay := anchorY - v.OffsetY
	ratio := next / old
	v.PanX = ax - (ax-v.PanX)*ratio
	v.PanY = ay - (ay-v.PanY)*ratio
	v.Zoom = next
}

// PanBy accumulates a pan offset. Panning off-canvas is permitted; no
// clamping is applied.
func (v *Viewport) PanBy(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// Resize updates the surface dimensions. Backing pixels are css x dpr per
// axis; zoom and pan are preserved across the resize.
func (v *Viewport) Resize(cssW, cssH, dpr float64) {
	if dpr < 1 {
		dpr = 1
	}
	v.cssW = cssW
	v.cssH = cssH
	v.DPR = dpr
	v.backingW = int(math.Round(cssW * dpr))
	v.backingH = int(math.Round(cssH * dpr))
}
