package thicklines

import "math"

// defaultAnimMs is the duration of an animated transform change.
const defaultAnimMs = 200.0

// transformAnim interpolates the viewport from one zoom/pan state to
// another across animation-frame callbacks. Only one animation exists at a
// time: a newly requested one replaces any in-flight interpolation
// (cancel-on-new-request), so two easing loops can never race.
type transformAnim struct {
	fromZoom, toZoom float64
	fromPanX, toPanX float64
	fromPanY, toPanY float64

	startMs float64
	durMs   float64
	started bool
}

// easeOutCubic maps linear progress to an ease-out curve.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// ZoomByAnimated requests an animated zoom by delta around the anchor. The
// target state obeys the same clamp and anchor-invariance law as SetZoom;
// StepFrame advances the interpolation.
func (s *Session) ZoomByAnimated(delta, anchorX, anchorY float64) {
	defer s.trap("ZoomByAnimated")
	target := *s.vp
	target.ZoomBy(delta, anchorX, anchorY)
	if target.Zoom == s.vp.Zoom {
		return
	}
	s.anim = &transformAnim{
		fromZoom: s.vp.Zoom, toZoom: target.Zoom,
		fromPanX: s.vp.PanX, toPanX: target.PanX,
		fromPanY: s.vp.PanY, toPanY: target.PanY,
		durMs: defaultAnimMs,
	}
}

// PanByAnimated requests an animated pan by (dx, dy).
func (s *Session) PanByAnimated(dx, dy float64) {
	defer s.trap("PanByAnimated")
	s.anim = &transformAnim{
		fromZoom: s.vp.Zoom, toZoom: s.vp.Zoom,
		fromPanX: s.vp.PanX, toPanX: s.vp.PanX + dx,
		fromPanY: s.vp.PanY, toPanY: s.vp.PanY + dy,
		durMs: defaultAnimMs,
	}
}

// Animating reports whether a transform animation is in flight.
func (s *Session) Animating() bool {
	return s.anim != nil
}

// stepAnim advances the in-flight animation to nowMs. Returns true when the
// viewport changed.
func (s *Session) stepAnim(nowMs float64) bool {
	a := s.anim
	if a == nil {
		return false
	}
	if !a.started {
		a.startMs = nowMs
		a.started = true
	}
	t := 1.0
	if a.durMs > 0 {
		t = (nowMs - a.startMs) / a.durMs
	}
	if t >= 1 {
		s.vp.Zoom = a.toZoom
		s.vp.PanX = a.toPanX
		s.vp.PanY = a.toPanY
		s.anim = nil
		return true
	}
	e := easeOutCubic(math.Max(0, t))
	s.vp.Zoom = a.fromZoom + (a.toZoom-a.fromZoom)*e
	s.vp.PanX = a.fromPanX + (a.toPanX-a.fromPanX)*e
	s.vp.PanY = a.fromPanY + (a.toPanY-a.fromPanY)*e
	return true
}
