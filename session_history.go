package thicklines

// Snapshot-based undo/redo plus the structural command path. Drawing
// actions restore by decoding the prior per-layer blobs back into the
// stack's rasters and recompositing; structural actions invert their
// command and recomposite from the stack.

// pushSnapshot encodes every layer raster and records the set under seq.
// A fresh undoable action invalidates both redo branches. On a codec
// failure the action's snapshot simply does not happen; the in-memory
// state stays uncorrupted.
func (s *Session) pushSnapshot(seq uint64) {
	s.log.ClearRedo()
	blobs := make([][]byte, s.stack.Len())
	for i, layer := range s.stack.Layers() {
		blob, err := encodeSnapshot(layer.Raster())
		if err != nil {
			Logger().Warn("snapshot failed", "err", err)
			return
		}
		blobs[i] = blob
	}
	s.hist.Push(HistoryEntry{Seq: seq, Layers: blobs})
}

// Undo reverts the most recent action. When the newest action is structural
// (layer add/delete/reorder, selection transform) its command is inverted
// and the stack recomposited; otherwise the previous snapshot's layer
// rasters are restored and the frame recomposited.
func (s *Session) Undo() {
	defer s.trap("Undo")
	cmd, hasCmd := s.log.TopStructural()
	top, hasSnap := s.hist.Top()

	if hasCmd && (!hasSnap || cmd.Seq >= top.Seq) {
		s.undoStructural()
		return
	}

	entry, ok := s.hist.Undo()
	if !ok {
		return
	}
	if !s.restoreEntry(entry) {
		// Keep the stacks balanced when the restore could not complete.
		s.hist.Redo()
	}
}

// Redo re-applies the most recently undone action. Undone actions replay in
// their original order, so the branch holding the smallest sequence goes
// first, the mirror image of Undo preferring the largest.
func (s *Session) Redo() {
	defer s.trap("Redo")
	cmd, hasCmd := s.log.TopRedo()
	top, hasSnap := s.hist.TopRedo()

	if hasCmd && (!hasSnap || cmd.Seq <= top.Seq) {
		s.redoStructural()
		return
	}

	entry, ok := s.hist.Redo()
	if !ok {
		return
	}
	if !s.restoreEntry(entry) {
		s.hist.Undo()
	}
}

func (s *Session) undoStructural() {
	cmd, ok := s.log.PopStructural()
	if !ok {
		return
	}
	inv := s.invertCommand(cmd)
	s.log.PushRedo(inv)

	// The snapshot pushed by the same action accompanies its command.
	if top, ok := s.hist.Top(); ok && top.Seq == cmd.Seq {
		s.hist.Undo()
	}
	s.refresh()
	s.needsPaint = false
}

func (s *Session) redoStructural() {
	cmd, ok := s.log.PopRedo()
	if !ok {
		return
	}
	s.applyCommand(cmd)
	s.log.PushEntry(cmd)

	if top, ok := s.hist.TopRedo(); ok && top.Seq == cmd.Seq {
		s.hist.Redo()
	}
	s.refresh()
	s.needsPaint = false
}

// invertCommand undoes a structural command against the stack and returns
// the command augmented with whatever the matching redo needs.
func (s *Session) invertCommand(cmd Command) Command {
	switch cmd.Kind {
	case CommandLayerAdd:
		if layer, err := s.stack.removeAt(cmd.Index); err == nil {
			// Retain the removed layer so redo reinserts the same surface.
			cmd.Layer = layer
		}
		if cmd.PrevCurrent < s.stack.Len() {
			s.stack.SetCurrent(cmd.PrevCurrent)
		}

	case CommandLayerDelete:
		if err := s.stack.insertAt(cmd.Index, cmd.Layer); err == nil {
			s.stack.SetCurrent(cmd.PrevCurrent)
		}

	case CommandLayerReorder:
		s.stack.Move(cmd.To, cmd.From)

	case CommandSelectionTransform:
		s.restoreLayerBlob(cmd.LayerIndex, cmd.Before)
	}
	return cmd
}

// applyCommand re-executes a structural command against the stack.
func (s *Session) applyCommand(cmd Command) {
	switch cmd.Kind {
	case CommandLayerAdd:
		layer := cmd.Layer
		if layer == nil {
			w, h := s.vp.BackingSize()
			layer = NewLayer("", w, h)
		}
		if err := s.stack.insertAt(cmd.Index, layer); err == nil {
			s.stack.SetCurrent(cmd.Index)
		}

	case CommandLayerDelete:
		s.stack.Delete(cmd.Index)

	case CommandLayerReorder:
		s.stack.Move(cmd.From, cmd.To)

	case CommandSelectionTransform:
		s.restoreLayerBlob(cmd.LayerIndex, cmd.After)
	}
}

// restoreLayerBlob decodes a retained layer blob back into the target layer.
func (s *Session) restoreLayerBlob(index int, blob []byte) {
	layer, err := s.stack.Layer(index)
	if err != nil {
		Logger().Warn("selection restore skipped", "err", err)
		return
	}
	pm, err := decodeSnapshot(blob)
	if err != nil {
		Logger().Warn("selection restore failed", "err", err)
		return
	}
	layer.Raster().Blit(pm)
}

// restoreEntry decodes a snapshot's layer blobs back into the stack's
// rasters and recomposites the frame, so the drawing state and the frame
// agree after an undo or redo. The decode is a single-shot future; the
// await is serial within this call, which makes the generation check
// unreachable today. It only matters if restores ever overlap. Returns
// false when the restore did not complete.
func (s *Session) restoreEntry(entry HistoryEntry) bool {
	s.restoreGen++
	fut := decodeAsync(entry.Layers, s.restoreGen)
	pms, err := fut.await()
	if err != nil {
		Logger().Warn("snapshot restore failed", "err", err)
		return false
	}
	if fut.gen != s.restoreGen {
		Logger().Debug("stale snapshot restore discarded", "gen", fut.gen)
		return false
	}
	layers := s.stack.Layers()
	if len(pms) != len(layers) {
		Logger().Warn("snapshot layer count mismatch", "have", len(layers), "want", len(pms))
	}
	for i, layer := range layers {
		if i >= len(pms) {
			break
		}
		layer.Raster().Clear(Transparent)
		layer.Raster().Blit(pms[i])
	}
	s.refresh()
	s.needsPaint = false
	return true
}

// Trim is the memory-pressure eviction: entry 0 plus the 9 most recent
// snapshots survive, and both redo branches are cleared unconditionally.
func (s *Session) Trim() {
	defer s.trap("Trim")
	s.hist.Trim()
	s.log.ClearRedo()
}
