package thicklines

// Command-log defaults.
const (
	// DefaultCommandCap bounds the structural command log.
	DefaultCommandCap = 50

	// DefaultCoalesceWindow is how close together (in ms) two Draw commands
	// on the same layer must be to merge into one log entry.
	DefaultCoalesceWindow = 1000.0
)

// CommandKind is the closed discriminant of the command variant.
type CommandKind uint8

const (
	// CommandDraw records a completed stroke burst on a layer. Its inverse
	// is the raster snapshot, so it is bookkeeping for coalescing, never a
	// structural undo target.
	CommandDraw CommandKind = iota

	// CommandLayerAdd records a layer insertion.
	CommandLayerAdd

	// CommandLayerDelete records a layer removal, retaining the removed
	// layer for reinsertion.
	CommandLayerDelete

	// CommandLayerReorder records a layer move.
	CommandLayerReorder

	// CommandSelectionTransform records a region move within a layer,
	// retaining before/after layer blobs for inversion.
	CommandSelectionTransform
)

// String returns a string representation of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandDraw:
		return "Draw"
	case CommandLayerAdd:
		return "LayerAdd"
	case CommandLayerDelete:
		return "LayerDelete"
	case CommandLayerReorder:
		return "LayerReorder"
	case CommandSelectionTransform:
		return "SelectionTransform"
	default:
		return "Unknown"
	}
}

// Command is one entry of the structural log. Each variant carries enough
// data to execute and invert itself. Seq is the session-wide action sequence
// shared with the snapshot pushed by the same action; T is the action's
// timestamp in ms, used only for Draw coalescing.
type Command struct {
	Kind CommandKind
	Seq  uint64
	T    float64

	// Draw / SelectionTransform target.
	LayerIndex int

	// LayerAdd: where the layer was inserted and what was current before.
	// LayerDelete: where the layer was removed from.
	Index       int
	PrevCurrent int

	// LayerDelete: the removed layer, kept whole for reinsertion.
	Layer *Layer

	// LayerReorder endpoints.
	From, To int

	// SelectionTransform: encoded layer raster before and after the move.
	Before []byte
	After  []byte
}

// canMerge is the pure merge predicate over command payloads: only
// consecutive Draw commands on the same layer merge, and only when the
// newer one falls within the coalescing window of the older.
func canMerge(older, newer Command, window float64) bool {
	if older.Kind != CommandDraw || newer.Kind != CommandDraw {
		return false
	}
	if older.LayerIndex != newer.LayerIndex {
		return false
	}
	dt := newer.T - older.T
	return dt >= 0 && dt <= window
}

// CommandLog is the bounded structural command log with its own redo branch.
type CommandLog struct {
	entries []Command
	redo    []Command
	cap     int
	window  float64
}

// NewCommandLog creates a log with the given capacity and Draw-coalescing
// window in ms. Non-positive values fall back to the defaults.
func NewCommandLog(capacity int, window float64) *CommandLog {
	if capacity <= 0 {
		capacity = DefaultCommandCap
	}
	if window <= 0 {
		window = DefaultCoalesceWindow
	}
	return &CommandLog{cap: capacity, window: window}
}

// Len returns the number of log entries.
func (l *CommandLog) Len() int { return len(l.entries) }

// Record appends a command, merging it into the previous entry when the
// merge predicate allows, and evicts the oldest entry beyond the bound.
// Any fresh command invalidates the redo branch.
func (l *CommandLog) Record(cmd Command) {
	l.redo = nil
	if n := len(l.entries); n > 0 && canMerge(l.entries[n-1], cmd, l.window) {
		// The merged entry represents the whole burst; it adopts the newest
		// timestamp and sequence so the window slides with the burst.
		l.entries[n-1].T = cmd.T
		l.entries[n-1].Seq = cmd.Seq
		return
	}
	l.entries = append(l.entries, cmd)
	if len(l.entries) > l.cap {
		drop := len(l.entries) - l.cap
		l.entries = append(l.entries[:0], l.entries[drop:]...)
	}
}

// TopStructural returns the newest non-Draw command without removing it.
func (l *CommandLog) TopStructural() (Command, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind != CommandDraw {
			return l.entries[i], true
		}
	}
	return Command{}, false
}

// PopStructural removes and returns the newest non-Draw command. The caller
// inverts it and hands the (possibly augmented) command to PushRedo.
func (l *CommandLog) PopStructural() (Command, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind == CommandDraw {
			continue
		}
		cmd := l.entries[i]
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		return cmd, true
	}
	return Command{}, false
}

// PushRedo places an inverted command on the redo branch.
func (l *CommandLog) PushRedo(cmd Command) {
	l.redo = append(l.redo, cmd)
}

// TopRedo returns the newest command on the redo branch without removing it.
func (l *CommandLog) TopRedo() (Command, bool) {
	if len(l.redo) == 0 {
		return Command{}, false
	}
	return l.redo[len(l.redo)-1], true
}

// PopRedo removes and returns the newest redo-branch command. The caller
// reapplies it and hands it back through PushEntry.
func (l *CommandLog) PopRedo() (Command, bool) {
	if len(l.redo) == 0 {
		return Command{}, false
	}
	cmd := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	return cmd, true
}

// PushEntry appends a command without touching the redo branch, evicting the
// oldest entry beyond the bound. Used when a redo reapplies a command.
func (l *CommandLog) PushEntry(cmd Command) {
	l.entries = append(l.entries, cmd)
	if len(l.entries) > l.cap {
		drop := len(l.entries) - l.cap
		l.entries = append(l.entries[:0], l.entries[drop:]...)
	}
}

// ClearRedo drops the redo branch. Trim uses this alongside the snapshot
// history's unconditional redo clear.
func (l *CommandLog) ClearRedo() {
	l.redo = nil
}
