package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajayparihar/thicklines"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	path := writeScript(t, `
width = 200
height = 100

[[step]]
op = "tool"
tool = "pen"

[[step]]
op = "stroke"
points = [[10, 10], [40, 40, 16], [80, 50, 32, 0.7]]
`)
	sc, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 200 || sc.Height != 100 {
		t.Errorf("dimensions = %vx%v, want 200x100", sc.Width, sc.Height)
	}
	if sc.DPR != 1 {
		t.Errorf("dpr = %v, want defaulted 1", sc.DPR)
	}
	if len(sc.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(sc.Steps))
	}
	if len(sc.Steps[1].Points) != 3 {
		t.Errorf("stroke points = %d, want 3", len(sc.Steps[1].Points))
	}
}

func TestLoadScriptRequiresDimensions(t *testing.T) {
	path := writeScript(t, `width = 0
height = 100
`)
	if _, err := LoadScript(path); err == nil {
		t.Error("zero width accepted")
	}
}

func TestSampleRowForms(t *testing.T) {
	e := sample([]float64{10, 20})
	if e.X != 10 || e.Y != 20 || e.HasTime || e.HasPressure {
		t.Errorf("2-row sample = %+v", e)
	}

	e = sample([]float64{10, 20, 33})
	if !e.HasTime || e.T != 33 || e.HasPressure {
		t.Errorf("3-row sample = %+v", e)
	}

	e = sample([]float64{10, 20, 33, 0.5})
	if !e.HasTime || !e.HasPressure || e.Pressure != 0.5 {
		t.Errorf("4-row sample = %+v", e)
	}
}

// TestReplay drives a small scripted session end to end and checks the
// resulting state.
func TestReplay(t *testing.T) {
	path := writeScript(t, `
width = 64
height = 64

[[step]]
op = "color"
color = "#ff0000"

[[step]]
op = "size"
tool = "pen"
size = 8

[[step]]
op = "stroke"
points = [[20, 20], [40, 40]]

[[step]]
op = "layer_add"
name = "Sketch"

[[step]]
op = "undo"
`)
	sc, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}

	s := thicklines.NewSession(sc.Width, sc.Height, thicklines.WithDPR(sc.DPR))
	if err := sc.Replay(s); err != nil {
		t.Fatal(err)
	}

	// The layer add was undone; the stroke survives.
	if s.Stack().Len() != 1 {
		t.Errorf("layers = %d, want 1 after undone add", s.Stack().Len())
	}
	if got := s.Frame().GetPixel(20, 20); got != thicklines.Red {
		t.Errorf("frame pixel = %v, want red ink", got)
	}
}

func TestReplayUnknownOp(t *testing.T) {
	sc := Script{Steps: []Step{{Op: "teleport"}}}
	err := sc.Replay(thicklines.NewSession(32, 32))
	if err == nil || !strings.Contains(err.Error(), "teleport") {
		t.Errorf("err = %v, want unknown-op failure naming the op", err)
	}
}

func TestReplayStrokeNeedsPoints(t *testing.T) {
	sc := Script{Steps: []Step{{Op: "stroke"}}}
	if err := sc.Replay(thicklines.NewSession(32, 32)); err == nil {
		t.Error("empty stroke step accepted")
	}
}
