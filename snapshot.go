package thicklines

import (
	"bytes"
	"fmt"
	"image/png"
)

// Snapshot blobs are lossless PNG: eraser correctness depends on an exact
// alpha channel, so a lossy encoding would corrupt restored composites.

// encodeSnapshot encodes a pixmap into a self-contained raster blob.
func encodeSnapshot(p *Pixmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.ToImage()); err != nil {
		return nil, fmt.Errorf("thicklines: encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeSnapshot decodes a blob back into a pixmap.
func decodeSnapshot(blob []byte) (*Pixmap, error) {
	img, err := png.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("thicklines: decode snapshot: %w", err)
	}
	return FromImage(img), nil
}

// restoreFuture is a single-shot future for an asynchronous snapshot decode.
// The stroke state machine serializes access, so no cancellation is needed;
// the generation tag lets the session discard a restore that resolves after
// a newer snapshot has superseded it.
type restoreFuture struct {
	gen  uint64
	done chan struct{}
	pms  []*Pixmap
	err  error
}

// decodeAsync starts a single-shot decode of a snapshot's per-layer blobs
// and returns its future.
func decodeAsync(blobs [][]byte, gen uint64) *restoreFuture {
	f := &restoreFuture{gen: gen, done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.pms = make([]*Pixmap, len(blobs))
		for i, blob := range blobs {
			pm, err := decodeSnapshot(blob)
			if err != nil {
				f.err = err
				return
			}
			f.pms[i] = pm
		}
	}()
	return f
}

// await blocks until the decode completes and returns its result.
func (f *restoreFuture) await() ([]*Pixmap, error) {
	<-f.done
	return f.pms, f.err
}
