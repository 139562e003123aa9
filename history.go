package thicklines

// History defaults.
const (
	// DefaultUndoLimit bounds the undo stack under normal pushes.
	DefaultUndoLimit = 30

	// trimKeep is how many recent entries survive a Trim above entry 0.
	trimKeep = 9
)

// HistoryEntry is one recorded snapshot: a lossless raster blob per layer,
// bottom-to-top, tagged with the sequence number of the action that produced
// it. Restoring an entry writes the drawing state itself back, so the frame
// recomposited afterwards agrees with the stack.
type HistoryEntry struct {
	Seq    uint64
	Layers [][]byte
}

// History holds the snapshot stacks: a bounded undo stack and an unbounded
// redo stack. Entry 0 of the undo stack is the blank initial canvas; under
// sustained normal pushes it can be evicted like any other entry, but Trim
// explicitly preserves it.
type History struct {
	undo  []HistoryEntry
	redo  []HistoryEntry
	limit int
}

// NewHistory creates a history with the given undo bound. Bounds below 2
// fall back to the default.
func NewHistory(limit int) *History {
	if limit < 2 {
		limit = DefaultUndoLimit
	}
	return &History{limit: limit}
}

// UndoLen returns the undo stack depth.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the redo stack depth.
func (h *History) RedoLen() int { return len(h.redo) }

// Top returns the current top of the undo stack.
func (h *History) Top() (HistoryEntry, bool) {
	if len(h.undo) == 0 {
		return HistoryEntry{}, false
	}
	return h.undo[len(h.undo)-1], true
}

// TopRedo returns the current top of the redo stack.
func (h *History) TopRedo() (HistoryEntry, bool) {
	if len(h.redo) == 0 {
		return HistoryEntry{}, false
	}
	return h.redo[len(h.redo)-1], true
}

// Bottom returns entry 0 of the undo stack.
func (h *History) Bottom() (HistoryEntry, bool) {
	if len(h.undo) == 0 {
		return HistoryEntry{}, false
	}
	return h.undo[0], true
}

// Push records a new snapshot. Any fresh edit invalidates the redo branch,
// so the redo stack is cleared. Pushes beyond the bound evict the oldest
// entries from the front.
func (h *History) Push(e HistoryEntry) {
	h.undo = append(h.undo, e)
	h.redo = nil
	if len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		h.undo = append(h.undo[:0], h.undo[drop:]...)
	}
}

// Undo pops the top snapshot onto the redo stack and returns the new top to
// be rendered. Entry 0 is never popped this way: with depth <= 1 Undo is a
// no-op and returns false.
func (h *History) Undo() (HistoryEntry, bool) {
	if len(h.undo) <= 1 {
		return HistoryEntry{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	return h.undo[len(h.undo)-1], true
}

// Redo pops from the redo stack back onto the undo stack and returns the
// entry to be rendered. A redo push does not clear the redo stack.
func (h *History) Redo() (HistoryEntry, bool) {
	if len(h.redo) == 0 {
		return HistoryEntry{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	return top, true
}

// Trim is the memory-pressure eviction: it keeps entry 0 plus the trimKeep
// most recent entries above it, and clears the redo stack unconditionally.
func (h *History) Trim() {
	h.redo = nil
	if len(h.undo) <= trimKeep+1 {
		return
	}
	kept := make([]HistoryEntry, 0, trimKeep+1)
	kept = append(kept, h.undo[0])
	kept = append(kept, h.undo[len(h.undo)-trimKeep:]...)
	h.undo = kept
}
