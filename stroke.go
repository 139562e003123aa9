package thicklines

import (
	"errors"
	"math"
)

// Width-law constants. Pressure maps linearly between the multipliers;
// velocity is normalized against a reference speed in px/ms and damped with
// a single-pole low-pass filter.
const (
	pressureMinMul = 0.1
	pressureMaxMul = 2.0

	refSpeed       = 0.4 // px/ms
	velocityMinMul = 0.35
	velocityMaxMul = 1.25

	widthKeep = 0.7 // low-pass weight on the previous width
	widthTake = 0.3
)

var errNonFinite = errors.New("thicklines: non-finite coordinates")

// PointerSample is one input-device event in client coordinates. HasPressure
// distinguishes a genuine zero-pressure reading from a device that reports
// none; HasTime marks whether T carries a usable timestamp.
type PointerSample struct {
	X, Y     float64
	T        float64
	Pressure float64

	HasPressure bool
	HasTime     bool
}

// stroke is the in-flight gesture. It exists only between pointer-down and
// pointer-up; the point buffer is discarded once the stroke is baked.
type stroke struct {
	tool       Tool
	color      RGBA
	baseSize   float64
	points     []Point
	lastWidth  float64 // runningWidth, persisted across samples for damping
	layerIndex int

	hasPressure bool
	hasTime     bool

	// prevWidth is the width at the previous rendered sample, used to
	// interpolate width along each segment.
	prevWidth float64

	layer *Pixmap
	frame *Pixmap
}

// penWidth implements the pen's width policy: pressure when available,
// otherwise velocity with low-pass damping, otherwise exactly the base size.
func penWidth(s *stroke, prev, curr Point) float64 {
	if s.hasPressure {
		return s.baseSize * (pressureMinMul + (pressureMaxMul-pressureMinMul)*curr.Pressure)
	}
	if !s.hasTime {
		return s.baseSize
	}
	dt := curr.T - prev.T
	if dt < 1 {
		dt = 1
	}
	v := prev.Distance(curr) / dt
	norm := v / refSpeed
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	minWidth := math.Max(0.5, s.baseSize*velocityMinMul)
	maxWidth := s.baseSize * velocityMaxMul
	target := maxWidth - (maxWidth-minWidth)*norm
	eff := widthKeep*s.lastWidth + widthTake*target
	s.lastWidth = eff
	return eff
}

// eraserWidth always returns the configured eraser size. Modulating the
// eraser by pressure or velocity leaves ragged erase edges.
func eraserWidth(s *stroke, _, _ Point) float64 {
	return s.baseSize
}

// quadSegment is one rendered smoothing segment: a quadratic curve from A to
// B with control point Ctrl, and widths W0 at A and W1 at B.
type quadSegment struct {
	A, Ctrl, B Point
	W0, W1     float64
}

// lastSegment computes the segment produced by the newest point of the
// buffer. With fewer than 3 accumulated points the segment is a straight
// line between the two available points. From the third point on, the
// endpoints are the literal midpoints of the two most recent point pairs
// and the control point is the raw sample between them.
func lastSegment(points []Point, w0, w1 float64) (quadSegment, bool) {
	n := len(points)
	switch {
	case n < 2:
		return quadSegment{}, false
	case n == 2:
		mid := points[0].Midpoint(points[1])
		return quadSegment{A: points[0], Ctrl: mid, B: points[1], W0: w0, W1: w1}, true
	default:
		return quadSegment{
			A:    points[n-3].Midpoint(points[n-2]),
			Ctrl: points[n-2],
			B:    points[n-2].Midpoint(points[n-1]),
			W0:   w0,
			W1:   w1,
		}, true
	}
}

// strokeRenderer is the Idle/Active state machine converting pointer samples
// into raster writes. At most one stroke is active at a time.
type strokeRenderer struct {
	active *stroke
}

// Active reports whether a stroke is in flight.
func (r *strokeRenderer) Active() bool {
	return r.active != nil
}

// begin starts a stroke on the given layer, mirroring writes to the frame.
// A locked layer rejects the start; non-finite coordinates abort it silently.
func (r *strokeRenderer) begin(layer *Layer, layerIndex int, frame *Pixmap, tool Tool, color RGBA, size float64, first Point, hasPressure, hasTime bool) error {
	if r.active != nil {
		// A stray down event while active folds into the current gesture.
		return nil
	}
	if !first.Finite() {
		return errNonFinite
	}
	if layer.Locked {
		return ErrLayerLocked
	}
	behavior, ok := toolBehaviors[tool]
	if !ok {
		return errors.New("thicklines: tool cannot stroke")
	}

	s := &stroke{
		tool:        tool,
		color:       color,
		baseSize:    size,
		points:      []Point{first},
		lastWidth:   size,
		prevWidth:   size,
		layerIndex:  layerIndex,
		hasPressure: hasPressure,
		hasTime:     hasTime,
		layer:       layer.Raster(),
		frame:       frame,
	}
	r.active = s

	// Immediate feedback: a filled dot at the first point.
	s.layer.FillCircle(first.X, first.Y, size/2, color, behavior.Blend)
	s.frame.FillCircle(first.X, first.Y, size/2, color, behavior.Blend)
	return nil
}

// move records the next sample and renders its smoothing segment onto the
// layer and the frame. Non-finite samples are dropped without ending the
// stroke: losing one sample is preferable to losing the gesture.
func (r *strokeRenderer) move(p Point) {
	s := r.active
	if s == nil || !p.Finite() {
		return
	}
	prev := s.points[len(s.points)-1]
	s.points = append(s.points, p)

	behavior := toolBehaviors[s.tool]
	width := behavior.Width(s, prev, p)

	seg, ok := lastSegment(s.points, s.prevWidth, width)
	if !ok {
		return
	}
	s.prevWidth = width

	r.renderSegment(s, behavior.Blend, seg)
}

func (r *strokeRenderer) renderSegment(s *stroke, mode BlendMode, seg quadSegment) {
	if len(s.points) == 2 {
		s.layer.StampLine(seg.A, seg.B, seg.W1, s.color, mode)
		s.frame.StampLine(seg.A, seg.B, seg.W1, s.color, mode)
		return
	}
	s.layer.StampQuad(seg.A, seg.Ctrl, seg.B, seg.W0, seg.W1, s.color, mode)
	s.frame.StampQuad(seg.A, seg.Ctrl, seg.B, seg.W0, seg.W1, s.color, mode)
}

// end terminates the stroke. The raster already holds every rendered
// segment, so baking amounts to discarding the point buffer. Returns the
// layer index the stroke drew on, or -1 if no stroke was active.
func (r *strokeRenderer) end() int {
	s := r.active
	if s == nil {
		return -1
	}
	r.active = nil
	s.points = nil
	return s.layerIndex
}

// abort drops the active stroke. Used by the session's boundary recovery so
// a trapped panic can never leave the renderer stuck in Active.
func (r *strokeRenderer) abort() {
	r.active = nil
}
