package thicklines

// SessionOption configures a Session during creation.
// Use functional options to customize session behavior.
//
// Example:
//
//	// Default session
//	s := thicklines.NewSession(800, 600)
//
//	// Tighter history bound and a dark background
//	s := thicklines.NewSession(800, 600,
//	    thicklines.WithUndoLimit(10),
//	    thicklines.WithBackground(thicklines.Hex("#1e1e1e")))
type SessionOption func(*sessionOptions)

// Notifier receives user-facing notices for rejected operations (locked
// layer, last layer). The excluded UI layer hooks its toasts in here.
type Notifier func(msg string)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	undoLimit      int
	commandCap     int
	coalesceWindow float64
	background     RGBA
	penSize        float64
	eraserSize     float64
	color          RGBA
	dpr            float64
	rulers         bool
	notify         Notifier
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		undoLimit:      DefaultUndoLimit,
		commandCap:     DefaultCommandCap,
		coalesceWindow: DefaultCoalesceWindow,
		background:     White,
		penSize:        4,
		eraserSize:     24,
		color:          Black,
		dpr:            1,
	}
}

// WithUndoLimit sets the undo stack bound.
func WithUndoLimit(n int) SessionOption {
	return func(o *sessionOptions) { o.undoLimit = n }
}

// WithCommandCap sets the structural command log capacity.
func WithCommandCap(n int) SessionOption {
	return func(o *sessionOptions) { o.commandCap = n }
}

// WithCoalesceWindow sets the Draw coalescing window in milliseconds.
func WithCoalesceWindow(ms float64) SessionOption {
	return func(o *sessionOptions) { o.coalesceWindow = ms }
}

// WithBackground sets the theme background the compositor clears to.
func WithBackground(c RGBA) SessionOption {
	return func(o *sessionOptions) { o.background = c }
}

// WithPenSize sets the pen's base size.
func WithPenSize(size float64) SessionOption {
	return func(o *sessionOptions) { o.penSize = size }
}

// WithEraserSize sets the constant eraser size.
func WithEraserSize(size float64) SessionOption {
	return func(o *sessionOptions) { o.eraserSize = size }
}

// WithColor sets the initial active color.
func WithColor(c RGBA) SessionOption {
	return func(o *sessionOptions) { o.color = c }
}

// WithDPR sets the initial device pixel ratio.
func WithDPR(dpr float64) SessionOption {
	return func(o *sessionOptions) { o.dpr = dpr }
}

// WithRulers enables the measurement ruler overlay.
func WithRulers(on bool) SessionOption {
	return func(o *sessionOptions) { o.rulers = on }
}

// WithNotifier installs the user-facing notice callback.
func WithNotifier(fn Notifier) SessionOption {
	return func(o *sessionOptions) { o.notify = fn }
}
