package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ajayparihar/thicklines"
)

// Script is a replayable drawing session: surface dimensions plus an
// ordered list of steps. Point rows are [x, y] or [x, y, t] or
// [x, y, t, pressure], in client coordinates.
type Script struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	DPR    float64 `toml:"dpr"`
	Steps  []Step  `toml:"step"`
}

// Step is one scripted operation.
type Step struct {
	Op string `toml:"op"`

	Tool   string      `toml:"tool"`
	Color  string      `toml:"color"`
	Size   float64     `toml:"size"`
	Points [][]float64 `toml:"points"`
	Name   string      `toml:"name"`
	Index  int         `toml:"index"`
	From   int         `toml:"from"`
	To     int         `toml:"to"`
	Delta  float64     `toml:"delta"`
	Anchor []float64   `toml:"anchor"`
	DX     float64     `toml:"dx"`
	DY     float64     `toml:"dy"`
}

// LoadScript reads a stroke script from a TOML file.
func LoadScript(path string) (Script, error) {
	var sc Script
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return sc, fmt.Errorf("script: decode %s: %w", path, err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return sc, fmt.Errorf("script: %s: width and height must be positive", path)
	}
	if sc.DPR == 0 {
		sc.DPR = 1
	}
	return sc, nil
}

// sample converts a script point row into a pointer sample.
func sample(row []float64) thicklines.PointerSample {
	e := thicklines.PointerSample{}
	if len(row) > 0 {
		e.X = row[0]
	}
	if len(row) > 1 {
		e.Y = row[1]
	}
	if len(row) > 2 {
		e.T = row[2]
		e.HasTime = true
	}
	if len(row) > 3 {
		e.Pressure = row[3]
		e.HasPressure = true
	}
	return e
}

// Replay drives every step of the script into the session, in order.
func (sc Script) Replay(s *thicklines.Session) error {
	for i, step := range sc.Steps {
		if err := applyStep(s, step); err != nil {
			return fmt.Errorf("script: step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func applyStep(s *thicklines.Session, step Step) error {
	switch step.Op {
	case "tool":
		s.SetTool(thicklines.ParseTool(step.Tool))

	case "color":
		s.SetColor(thicklines.Hex(step.Color))

	case "size":
		s.SetBaseSize(thicklines.ParseTool(step.Tool), step.Size)

	case "stroke":
		if len(step.Points) == 0 {
			return fmt.Errorf("stroke step has no points")
		}
		s.PointerDown(sample(step.Points[0]))
		for _, row := range step.Points[1:] {
			s.PointerMove(sample(row))
		}
		s.PointerUp(sample(step.Points[len(step.Points)-1]))

	case "layer_add":
		s.AddLayer(step.Name)

	case "layer_delete":
		return s.DeleteLayer(step.Index)

	case "switch":
		return s.SwitchLayer(step.Index)

	case "toggle_visibility":
		return s.ToggleVisibility(step.Index)

	case "toggle_lock":
		return s.ToggleLock(step.Index)

	case "reorder":
		return s.ReorderLayer(step.From, step.To)

	case "zoom":
		var ax, ay float64
		if len(step.Anchor) > 1 {
			ax, ay = step.Anchor[0], step.Anchor[1]
		}
		s.SetZoom(step.Delta, ax, ay)

	case "pan":
		s.PanBy(step.DX, step.DY)

	case "undo":
		s.Undo()

	case "redo":
		s.Redo()

	case "clear":
		s.ClearAll()

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}
