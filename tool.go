package thicklines

// Tool identifies a drawing tool. The set is closed: behavior is dispatched
// through a lookup table keyed by the tag rather than open-ended interfaces.
type Tool uint8

const (
	// ToolPen paints with the active color using source-over blending.
	ToolPen Tool = iota

	// ToolEraser erases to transparency using destination-out blending,
	// independent of the active color.
	ToolEraser

	// ToolSelect manipulates rectangular selections; it produces
	// SelectionTransform commands rather than strokes.
	ToolSelect
)

// String returns a string representation of the tool.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "Pen"
	case ToolEraser:
		return "Eraser"
	case ToolSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// ParseTool maps a tool name (as used in configs and scripts) to a Tool.
// Unrecognized names map to ToolPen.
func ParseTool(name string) Tool {
	switch name {
	case "eraser", "Eraser":
		return ToolEraser
	case "select", "Select":
		return ToolSelect
	default:
		return ToolPen
	}
}

// widthPolicy computes the effective width for the next stroke sample.
// prev and curr are the previous and current recorded points.
type widthPolicy func(s *stroke, prev, curr Point) float64

// toolBehavior bundles the pure per-tool behavior: how samples map to widths
// and which compositing mode the tool paints with.
type toolBehavior struct {
	Blend BlendMode
	Width widthPolicy
}

// toolBehaviors is the closed dispatch table. Only stroke tools appear;
// ToolSelect never enters the stroke state machine.
var toolBehaviors = map[Tool]toolBehavior{
	ToolPen:    {Blend: BlendNormal, Width: penWidth},
	ToolEraser: {Blend: BlendDestinationOut, Width: eraserWidth},
}
