package thicklines

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Errors returned by layer-stack operations.
var (
	ErrLastLayer     = errors.New("thicklines: cannot delete the last layer")
	ErrLayerLocked   = errors.New("thicklines: layer is locked")
	ErrBadLayerIndex = errors.New("thicklines: layer index out of range")
)

// ThumbnailSize is the fixed edge length of layer thumbnails in pixels.
const ThumbnailSize = 64

// Layer is one drawable raster layer. Each layer exclusively owns its raster
// surface, sized to the current backing-pixel dimensions.
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Opacity float64
	Blend   BlendMode
	Locked  bool

	raster *Pixmap
}

// NewLayer creates a visible, unlocked, fully opaque layer with a
// transparent raster of the given backing-pixel dimensions.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		ID:      uuid.New(),
		Name:    name,
		Visible: true,
		Opacity: 1,
		Blend:   BlendNormal,
		raster:  NewPixmap(width, height),
	}
}

// Raster returns the layer's raster surface.
func (l *Layer) Raster() *Pixmap {
	return l.raster
}

// resize rebuilds the raster at the new backing dimensions, preserving
// content by copying the prior raster at its original origin, unscaled.
func (l *Layer) resize(width, height int) {
	if width == l.raster.Width() && height == l.raster.Height() {
		return
	}
	l.raster = l.raster.ResizePreserve(width, height)
}

// Thumbnail renders a fixed-size read-only downsample of the layer's raster.
// It never writes back to the layer.
func (l *Layer) Thumbnail() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	src := l.raster.ToImage()
	if src.Bounds().Empty() {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Stack owns the ordered layer collection. Invariants: at least one layer at
// all times, and the current index is always valid.
type Stack struct {
	layers  []*Layer
	current int
}

// NewStack creates a stack holding a single background layer of the given
// backing-pixel dimensions.
func NewStack(width, height int) *Stack {
	return &Stack{
		layers: []*Layer{NewLayer("Background", width, height)},
	}
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// CurrentIndex returns the index of the active layer.
func (s *Stack) CurrentIndex() int {
	return s.current
}

// Current returns the active layer.
func (s *Stack) Current() *Layer {
	return s.layers[s.current]
}

// Layer returns the layer at index, or an error if the index is invalid.
func (s *Stack) Layer(index int) (*Layer, error) {
	if index < 0 || index >= len(s.layers) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, index, len(s.layers))
	}
	return s.layers[index], nil
}

// Layers returns the layers in bottom-to-top order. The slice must not be
// mutated by callers.
func (s *Stack) Layers() []*Layer {
	return s.layers
}

// Add inserts a new layer immediately above the current layer and makes it
// current. Returns the index the layer landed at.
func (s *Stack) Add(name string, width, height int) int {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(s.layers)+1)
	}
	layer := NewLayer(name, width, height)
	at := s.current + 1
	s.layers = append(s.layers, nil)
	copy(s.layers[at+1:], s.layers[at:])
	s.layers[at] = layer
	s.current = at
	return at
}

// insertAt reinserts an existing layer at a specific index. Used by the
// structural undo of a delete.
func (s *Stack) insertAt(index int, layer *Layer) error {
	if index < 0 || index > len(s.layers) {
		return fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, index, len(s.layers))
	}
	s.layers = append(s.layers, nil)
	copy(s.layers[index+1:], s.layers[index:])
	s.layers[index] = layer
	if s.current >= index && len(s.layers) > 1 {
		// Keep the previously active layer active.
		s.current++
	}
	return nil
}

// removeAt removes the layer at index without the last-layer guard. Used by
// the structural undo of an add.
func (s *Stack) removeAt(index int) (*Layer, error) {
	if index < 0 || index >= len(s.layers) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, index, len(s.layers))
	}
	layer := s.layers[index]
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
	if s.current > index || s.current >= len(s.layers) {
		s.current--
	}
	if s.current < 0 {
		s.current = 0
	}
	return layer, nil
}

// Delete removes the layer at index. Deleting the sole remaining layer is
// rejected. When the current layer is deleted, the layer below it becomes
// current (or index 0 if it was already at the bottom).
func (s *Stack) Delete(index int) (*Layer, error) {
	if index < 0 || index >= len(s.layers) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, index, len(s.layers))
	}
	if len(s.layers) == 1 {
		return nil, ErrLastLayer
	}
	layer := s.layers[index]
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
	switch {
	case s.current == index && index > 0:
		s.current = index - 1
	case s.current > index:
		s.current--
	case s.current >= len(s.layers):
		s.current = len(s.layers) - 1
	}
	return layer, nil
}

// SetCurrent switches the active layer.
func (s *Stack) SetCurrent(index int) error {
	if index < 0 || index >= len(s.layers) {
		return fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, index, len(s.layers))
	}
	s.current = index
	return nil
}

// Move reorders the layer at from to position to, keeping the moved layer's
// active state intact.
func (s *Stack) Move(from, to int) error {
	if from < 0 || from >= len(s.layers) || to < 0 || to >= len(s.layers) {
		return fmt.Errorf("%w: %d -> %d of %d", ErrBadLayerIndex, from, to, len(s.layers))
	}
	if from == to {
		return nil
	}
	layer := s.layers[from]
	active := s.layers[s.current]
	s.layers = append(s.layers[:from], s.layers[from+1:]...)
	s.layers = append(s.layers, nil)
	copy(s.layers[to+1:], s.layers[to:])
	s.layers[to] = layer
	for i, l := range s.layers {
		if l == active {
			s.current = i
			break
		}
	}
	return nil
}

// ResizeAll resizes every layer's raster to the new backing dimensions,
// preserving content at the origin.
func (s *Stack) ResizeAll(width, height int) {
	for _, l := range s.layers {
		l.resize(width, height)
	}
}

// ClearAll clears every layer's raster to transparent. Structure and layer
// properties survive.
func (s *Stack) ClearAll() {
	for _, l := range s.layers {
		l.raster.Clear(Transparent)
	}
}
