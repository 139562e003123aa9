package thicklines

import "testing"

// TestBlendModeString tests the blend mode names.
func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendNormal, "Normal"},
		{BlendMultiply, "Multiply"},
		{BlendScreen, "Screen"},
		{BlendOverlay, "Overlay"},
		{BlendDestinationOut, "DestinationOut"},
		{BlendMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// TestParseBlendMode maps names to modes, defaulting to Normal.
func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		name string
		want BlendMode
	}{
		{"multiply", BlendMultiply},
		{"Screen", BlendScreen},
		{"overlay", BlendOverlay},
		{"destination-out", BlendDestinationOut},
		{"nonsense", BlendNormal},
		{"", BlendNormal},
	}
	for _, tt := range tests {
		if got := ParseBlendMode(tt.name); got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestBlendNormalOpaque verifies an opaque source replaces the destination.
func TestBlendNormalOpaque(t *testing.T) {
	r, g, b, a := blend(10, 20, 30, 255, 200, 200, 200, 255, BlendNormal)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("opaque source-over = (%d, %d, %d, %d), want (10, 20, 30, 255)", r, g, b, a)
	}
}

// TestBlendNormalTransparentSource verifies a fully transparent source
// leaves the destination untouched.
func TestBlendNormalTransparentSource(t *testing.T) {
	r, g, b, a := blend(99, 99, 99, 0, 10, 20, 30, 40, BlendNormal)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("transparent source = (%d, %d, %d, %d), want destination (10, 20, 30, 40)", r, g, b, a)
	}
}

// TestBlendDestinationOut verifies the eraser mode: full source coverage
// zeroes destination alpha, half coverage halves it, and the source color
// never matters.
func TestBlendDestinationOut(t *testing.T) {
	// Full coverage erases completely, whatever the source color.
	_, _, _, a := blend(0, 255, 0, 255, 255, 0, 0, 255, BlendDestinationOut)
	if a != 0 {
		t.Errorf("full-coverage erase alpha = %d, want 0", a)
	}

	// Half coverage halves destination alpha and keeps its color.
	r, g, b, a := blend(0, 0, 0, 128, 255, 0, 0, 255, BlendDestinationOut)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("destination-out color = (%d, %d, %d), want (255, 0, 0)", r, g, b)
	}
	if a < 120 || a > 135 {
		t.Errorf("half-coverage erase alpha = %d, want about 127", a)
	}

	// Zero coverage is a no-op.
	r, g, b, a = blend(0, 0, 0, 0, 255, 0, 0, 200, BlendDestinationOut)
	if r != 255 || a != 200 {
		t.Errorf("zero-coverage erase = (%d, %d, %d, %d), want (255, 0, 0, 200)", r, g, b, a)
	}
}

// TestBlendMultiplyDarkens verifies multiply never brightens.
func TestBlendMultiplyDarkens(t *testing.T) {
	r, g, b, _ := blend(128, 128, 128, 255, 128, 64, 255, 255, BlendMultiply)
	if r != 64 || g != 32 || b != 128 {
		t.Errorf("multiply = (%d, %d, %d), want (64, 32, 128)", r, g, b)
	}
}

// TestBlendScreenLightens verifies screen never darkens.
func TestBlendScreenLightens(t *testing.T) {
	r, _, _, _ := blend(128, 0, 0, 255, 128, 0, 0, 255, BlendScreen)
	if r <= 128 {
		t.Errorf("screen red = %d, want > 128", r)
	}
}
