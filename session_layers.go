package thicklines

// Layer operations. Structural edits go through the layer stack and are
// recorded in the command log with explicit inverses, alongside a composite
// snapshot carrying the same action sequence.

// AddLayer inserts a new layer immediately above the current layer and makes
// it current. An empty name gets a generated one.
func (s *Session) AddLayer(name string) {
	defer s.trap("AddLayer")
	w, h := s.vp.BackingSize()
	prev := s.stack.CurrentIndex()
	at := s.stack.Add(name, w, h)

	seq := s.nextSeq()
	s.log.Record(Command{Kind: CommandLayerAdd, Seq: seq, T: s.clock(), Index: at, PrevCurrent: prev})
	s.pushSnapshot(seq)
	s.needsPaint = true
	Logger().Debug("layer added", "index", at)
}

// DeleteLayer removes the layer at index; index -1 means the current layer.
// Deleting the sole remaining layer is rejected with a notice.
func (s *Session) DeleteLayer(index int) error {
	defer s.trap("DeleteLayer")
	if index == -1 {
		index = s.stack.CurrentIndex()
	}
	prev := s.stack.CurrentIndex()
	layer, err := s.stack.Delete(index)
	if err != nil {
		s.note("Cannot delete layer: " + err.Error())
		return err
	}

	seq := s.nextSeq()
	s.log.Record(Command{Kind: CommandLayerDelete, Seq: seq, T: s.clock(), Index: index, PrevCurrent: prev, Layer: layer})
	s.pushSnapshot(seq)
	s.needsPaint = true
	return nil
}

// SwitchLayer makes the layer at index current. Not an undoable action.
func (s *Session) SwitchLayer(index int) error {
	defer s.trap("SwitchLayer")
	if err := s.stack.SetCurrent(index); err != nil {
		s.note("No such layer")
		return err
	}
	return nil
}

// ToggleVisibility flips a layer's visibility. Hidden layers are skipped by
// the compositor outright.
func (s *Session) ToggleVisibility(index int) error {
	defer s.trap("ToggleVisibility")
	layer, err := s.stack.Layer(index)
	if err != nil {
		s.note("No such layer")
		return err
	}
	layer.Visible = !layer.Visible
	s.needsPaint = true
	return nil
}

// ToggleLock flips a layer's lock. A locked layer rejects stroke input but
// stays visible, reorderable, and deletable.
func (s *Session) ToggleLock(index int) error {
	defer s.trap("ToggleLock")
	layer, err := s.stack.Layer(index)
	if err != nil {
		s.note("No such layer")
		return err
	}
	layer.Locked = !layer.Locked
	return nil
}

// ReorderLayer moves the layer at from to position to.
func (s *Session) ReorderLayer(from, to int) error {
	defer s.trap("ReorderLayer")
	if from == to {
		return nil
	}
	if err := s.stack.Move(from, to); err != nil {
		s.note("Cannot reorder layer")
		return err
	}

	seq := s.nextSeq()
	s.log.Record(Command{Kind: CommandLayerReorder, Seq: seq, T: s.clock(), From: from, To: to})
	s.pushSnapshot(seq)
	s.needsPaint = true
	return nil
}

// MoveSelection lifts the rectangular region r of the current layer and
// redraws it offset by (dx, dy), recording an invertible
// SelectionTransform. A locked layer rejects the move.
func (s *Session) MoveSelection(r Rect, dx, dy int) error {
	defer s.trap("MoveSelection")
	layer := s.stack.Current()
	if layer.Locked {
		s.note("Layer is locked")
		return ErrLayerLocked
	}
	if r.W <= 0 || r.H <= 0 {
		return nil
	}

	before, err := encodeSnapshot(layer.Raster())
	if err != nil {
		Logger().Warn("selection move aborted", "err", err)
		return err
	}

	patch := layer.Raster().ExtractRect(r)
	layer.Raster().ClearRect(r)
	layer.Raster().PasteAt(patch, r.X+dx, r.Y+dy)

	after, err := encodeSnapshot(layer.Raster())
	if err != nil {
		// Roll the raster back so a codec failure cannot half-apply.
		if prior, derr := decodeSnapshot(before); derr == nil {
			layer.Raster().Blit(prior)
		}
		Logger().Warn("selection move aborted", "err", err)
		return err
	}

	seq := s.nextSeq()
	s.log.Record(Command{
		Kind:       CommandSelectionTransform,
		Seq:        seq,
		T:          s.clock(),
		LayerIndex: s.stack.CurrentIndex(),
		Before:     before,
		After:      after,
	})
	s.pushSnapshot(seq)
	s.needsPaint = true
	return nil
}

// Thumbnail returns a fixed-size read-only downsample of a layer's raster.
func (s *Session) Thumbnail(index int) ([]byte, error) {
	layer, err := s.stack.Layer(index)
	if err != nil {
		return nil, err
	}
	return encodeSnapshot(FromImage(layer.Thumbnail()))
}
