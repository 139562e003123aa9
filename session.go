package thicklines

import (
	"time"
)

// Session is the single explicitly owned drawing session. It owns the
// viewport, the layer stack, the visible frame, the stroke renderer, and
// both history structures; every public operation goes through it. All
// access happens on one callback-driven thread, so the session holds no
// locks, but each operation leaves the structures balanced even when an
// internal failure is trapped at the boundary.
type Session struct {
	vp    *Viewport
	stack *Stack
	frame *Pixmap
	comp  Compositor
	pen   strokeRenderer
	hist  *History
	log   *CommandLog

	tool       Tool
	color      RGBA
	penSize    float64
	eraserSize float64

	// seq numbers every undoable action; the snapshot and command recorded
	// by one action share it.
	seq uint64

	// restoreGen guards against a snapshot restore resolving after a newer
	// one superseded it.
	restoreGen uint64

	needsPaint bool
	anim       *transformAnim

	notify Notifier

	// clock returns monotonic milliseconds; swappable in tests.
	clock func() float64
}

// NewSession creates a drawing session for a surface of the given CSS-pixel
// dimensions. The stack starts with a single blank background layer and the
// history with the blank-canvas snapshot.
func NewSession(cssW, cssH float64, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vp := NewViewport(cssW, cssH, o.dpr)
	w, h := vp.BackingSize()

	start := time.Now()
	s := &Session{
		vp:         vp,
		stack:      NewStack(w, h),
		frame:      NewPixmap(w, h),
		hist:       NewHistory(o.undoLimit),
		log:        NewCommandLog(o.commandCap, o.coalesceWindow),
		tool:       ToolPen,
		color:      o.color,
		penSize:    o.penSize,
		eraserSize: o.eraserSize,
		notify:     o.notify,
		clock: func() float64 {
			return float64(time.Since(start)) / float64(time.Millisecond)
		},
	}
	s.comp = Compositor{Background: o.background, ShowRulers: o.rulers}

	s.refresh()
	s.pushSnapshot(s.nextSeq()) // entry 0: the blank canvas
	Logger().Info("session created", "cssW", cssW, "cssH", cssH, "dpr", o.dpr)
	return s
}

// Frame returns the visible frame surface.
func (s *Session) Frame() *Pixmap { return s.frame }

// Viewport returns the session's viewport transform.
func (s *Session) Viewport() *Viewport { return s.vp }

// Stack returns the session's layer stack.
func (s *Session) Stack() *Stack { return s.stack }

// History returns the session's snapshot history.
func (s *Session) History() *History { return s.hist }

// CommandLog returns the session's structural command log.
func (s *Session) CommandLog() *CommandLog { return s.log }

// trap is the public-operation boundary: it recovers a panic, logs it, and
// repairs the stroke state machine so a single failure can never leave the
// renderer stuck in Active.
func (s *Session) trap(op string) {
	if r := recover(); r != nil {
		Logger().Warn("recovered internal error", "op", op, "panic", r)
		s.pen.abort()
	}
}

// note surfaces a user-facing notice for a rejected operation.
func (s *Session) note(msg string) {
	Logger().Warn(msg)
	if s.notify != nil {
		s.notify(msg)
	}
}

// nextSeq advances and returns the action sequence.
func (s *Session) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// refresh recomposites the stack into the visible frame, overlays included.
func (s *Session) refresh() {
	s.comp.Refresh(s.frame, s.stack, s.vp)
}

// compositeClean renders the composite without overlay decorations, for
// snapshots and export.
func (s *Session) compositeClean() *Pixmap {
	clean := Compositor{Background: s.comp.Background}
	out := NewPixmap(s.frame.Width(), s.frame.Height())
	clean.Refresh(out, s.stack, s.vp)
	return out
}

// SetTool selects the active tool.
func (s *Session) SetTool(t Tool) {
	s.tool = t
}

// CurrentTool returns the active tool.
func (s *Session) CurrentTool() Tool { return s.tool }

// SetColor sets the active color. The eraser ignores it.
func (s *Session) SetColor(c RGBA) {
	s.color = c
}

// SetBaseSize sets the base size for a tool. The eraser's size is its
// constant stroke width.
func (s *Session) SetBaseSize(tool Tool, size float64) {
	if size <= 0 {
		return
	}
	switch tool {
	case ToolEraser:
		s.eraserSize = size
	default:
		s.penSize = size
	}
}

// toolSize returns the base size the active tool strokes with.
func (s *Session) toolSize() float64 {
	if s.tool == ToolEraser {
		return s.eraserSize
	}
	return s.penSize
}

// PointerDown begins a stroke at the sample's position. Starting on a locked
// layer is rejected with a notice; non-finite coordinates abort silently.
func (s *Session) PointerDown(e PointerSample) {
	defer s.trap("PointerDown")
	if s.tool == ToolSelect {
		return
	}
	p := s.vp.ToDrawingSpace(e.X, e.Y)
	p.T = e.T
	p.Pressure = e.Pressure

	err := s.pen.begin(s.stack.Current(), s.stack.CurrentIndex(), s.frame,
		s.tool, s.color, s.toolSize(), p, e.HasPressure, e.HasTime)
	switch err {
	case nil:
		s.needsPaint = true
	case errNonFinite:
		// Silent: a bogus start is not an error the user caused.
	case ErrLayerLocked:
		s.note("Layer is locked")
	default:
		Logger().Warn("stroke start rejected", "err", err)
	}
}

// PointerMove feeds the next sample to the active stroke and updates the
// cursor guide. Data is never lost to paint coalescing: the stroke buffer
// always records the sample, and StepFrame paints at most once per call.
func (s *Session) PointerMove(e PointerSample) {
	defer s.trap("PointerMove")
	p := s.vp.ToDrawingSpace(e.X, e.Y)
	p.T = e.T
	p.Pressure = e.Pressure

	if p.Finite() {
		guide := p
		s.comp.Guide = &guide
	}
	if !s.pen.Active() {
		return
	}
	s.pen.move(p)
	s.needsPaint = true
}

// PointerUp ends the active stroke, bakes it, and records the draw in both
// histories.
func (s *Session) PointerUp(e PointerSample) {
	defer s.trap("PointerUp")
	layerIndex := s.pen.end()
	if layerIndex < 0 {
		return
	}
	seq := s.nextSeq()
	s.log.Record(Command{Kind: CommandDraw, Seq: seq, T: s.clock(), LayerIndex: layerIndex})
	s.pushSnapshot(seq)
	s.needsPaint = true
}

// SetZoom adjusts zoom by delta around the anchor (client coordinates),
// immediately. The anchor's drawing-space coordinate is invariant.
func (s *Session) SetZoom(delta, anchorX, anchorY float64) {
	defer s.trap("SetZoom")
	s.anim = nil
	s.vp.ZoomBy(delta, anchorX, anchorY)
	s.needsPaint = true
}

// PanBy pans the viewport immediately. Panning off-canvas is permitted.
func (s *Session) PanBy(dx, dy float64) {
	defer s.trap("PanBy")
	s.anim = nil
	s.vp.PanBy(dx, dy)
	s.needsPaint = true
}

// Resize updates the host surface dimensions: the viewport recomputes its
// backing-pixel size, every layer raster is rebuilt with content preserved
// at the origin, and the frame is recomposited. A resize with an unavailable
// host surface is a no-op.
func (s *Session) Resize(cssW, cssH, dpr float64) {
	defer s.trap("Resize")
	if cssW <= 0 || cssH <= 0 {
		return
	}
	s.vp.Resize(cssW, cssH, dpr)
	w, h := s.vp.BackingSize()
	s.stack.ResizeAll(w, h)
	s.frame = NewPixmap(w, h)
	s.refresh()
	Logger().Debug("resized", "backingW", w, "backingH", h)
}

// ClearAll clears every layer to transparent and snapshots the result. An
// active stroke is aborted first.
func (s *Session) ClearAll() {
	defer s.trap("ClearAll")
	s.pen.abort()
	s.stack.ClearAll()
	s.refresh()
	s.pushSnapshot(s.nextSeq())
	s.needsPaint = true
}

// ExportComposite encodes the current composite (without overlay
// decorations) as a self-contained lossless raster blob.
func (s *Session) ExportComposite() ([]byte, error) {
	blob, err := encodeSnapshot(s.compositeClean())
	if err != nil {
		Logger().Warn("export failed", "err", err)
		return nil, err
	}
	return blob, nil
}

// StepFrame is the animation-frame-aligned callback. It advances at most
// one in-flight transform animation and performs at most one composite
// refresh per call, no matter how many input events arrived since the last
// one. Returns true when a paint happened.
func (s *Session) StepFrame(nowMs float64) bool {
	defer s.trap("StepFrame")
	if s.stepAnim(nowMs) {
		s.needsPaint = true
	}
	if !s.needsPaint {
		return false
	}
	s.refresh()
	s.needsPaint = false
	return true
}
