// Package thicklines provides an interactive raster-drawing core.
//
// # Overview
//
// thicklines manages a stack of drawable raster layers composited into one
// visible frame, converts pointer input into drawing-space strokes with
// pressure- or velocity-adaptive width and quadratic curve smoothing,
// maintains a pan/zoom viewport transform, and provides snapshot-based
// undo/redo with a secondary structural command log.
//
// # Quick Start
//
//	s := thicklines.NewSession(800, 600)
//
//	s.SetColor(thicklines.Hex("#1e90ff"))
//	s.PointerDown(thicklines.PointerSample{X: 100, Y: 100})
//	s.PointerMove(thicklines.PointerSample{X: 160, Y: 140})
//	s.PointerUp(thicklines.PointerSample{X: 160, Y: 140})
//
//	blob, _ := s.ExportComposite() // lossless PNG bytes
//
// # Execution Model
//
// The session is single-threaded and callback-driven: all raster mutation
// happens synchronously inside the public operations, and the host calls
// StepFrame once per display refresh to coalesce painting and advance
// transform animations. The model is strictly raster; there is no vector
// path representation.
//
// # Coordinate System
//
// Client (input-device) coordinates pass through the viewport transform into
// backing-pixel drawing space. Origin (0,0) is top-left, X increases right,
// Y increases down. Backing pixels are CSS pixels scaled by the device
// pixel ratio.
package thicklines
