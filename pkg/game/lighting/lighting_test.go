package lighting

import (
	"math"
	"testing"

	"torchmaze/pkg/engine/style"
)

func newModel(t *testing.T, cols, rows int) *Model {
	t.Helper()
	m := NewModel(DefaultParams())
	m.Resize(cols, rows)
	return m
}

var fullTorch = Light{Enabled: true, Battery: 1, Flicker: 1}

func TestField_PeakAndFalloff(t *testing.T) {
	f := NewField(81, 25, DefaultParams())
	if v := f.At(40, 12); math.Abs(v-1) > 1e-9 {
		t.Errorf("At(centre) = %v, want 1", v)
	}
	prev := f.At(40, 12)
	for col := 42; col <= 80; col += 2 {
		v := f.At(col, 12)
		if v >= prev {
			t.Fatalf("At(%d, 12) = %v, want < %v", col, v, prev)
		}
		prev = v
	}
	if v := f.At(80, 12); v > 0.5 {
		t.Errorf("At(edge) = %v, want a narrow beam (< 0.5)", v)
	}
	if v := f.At(-1, 0); v != 0 {
		t.Errorf("At(-1, 0) = %v, want 0", v)
	}
}

func TestField_Parity(t *testing.T) {
	p := DefaultParams()
	p.BeamWidth = 1000 // flat beam isolates the parity term
	f := NewField(9, 9, p)
	even, odd := f.At(4, 4), f.At(5, 4)
	if math.Abs(odd/even-p.ParityDim) > 1e-3 {
		t.Errorf("odd/even = %v, want %v", odd/even, p.ParityDim)
	}
}

func TestModel_ResizeCaches(t *testing.T) {
	m := NewModel(DefaultParams())
	a := m.Resize(80, 24)
	if b := m.Resize(80, 24); a != b {
		t.Error("Resize with the same size rebuilt the field")
	}
	if c := m.Resize(100, 30); c == a {
		t.Error("Resize with a new size kept the old field")
	}
}

func TestBrightness_TorchOff(t *testing.T) {
	m := newModel(t, 81, 25)
	off := Light{Enabled: false, Battery: 1, Flicker: 1}
	for _, s := range []Sample{
		{Surface: SurfaceWall, Vertical: true, WallHeight: 25, ScreenHeight: 25},
		{Surface: SurfaceSprite, Distance: 1},
		{Surface: SurfaceFloor},
		{Surface: SurfaceCeiling},
	} {
		if b := m.Brightness(40, 12, off, s); b != 0 {
			t.Errorf("Brightness(torch off, %+v) = %v, want 0", s, b)
		}
	}
}

func TestBrightness_MonotonicInBattery(t *testing.T) {
	m := newModel(t, 81, 25)
	s := Sample{Surface: SurfaceSprite, Distance: 4}
	prev := -1.0
	for _, battery := range []float64{0, 0.1, 0.3, 0.5, 0.9, 1} {
		b := m.Brightness(40, 12, Light{Enabled: true, Battery: battery, Flicker: 1}, s)
		if b < prev {
			t.Errorf("Brightness(battery %v) = %v, want >= %v", battery, b, prev)
		}
		prev = b
	}
}

func TestBrightness_Surfaces(t *testing.T) {
	m := newModel(t, 81, 25)
	p := m.Params

	vertical := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceWall, Vertical: true, WallHeight: 10, ScreenHeight: 25})
	horizontal := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceWall, Vertical: false, WallHeight: 10, ScreenHeight: 25})
	if want := 2.0 * 10 / 25; math.Abs(vertical-want) > 1e-9 {
		t.Errorf("vertical wall = %v, want %v", vertical, want)
	}
	if math.Abs(horizontal-vertical*p.HorizontalFactor) > 1e-9 {
		t.Errorf("horizontal wall = %v, want %v", horizontal, vertical*p.HorizontalFactor)
	}

	near := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceSprite, Distance: 2})
	far := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceSprite, Distance: 8})
	if near <= far {
		t.Errorf("sprite at 2 = %v, at 8 = %v, want nearer brighter", near, far)
	}

	floor := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceFloor, Distance: 100})
	if want := 2.0 * p.FloorFactor; math.Abs(floor-want) > 1e-9 {
		t.Errorf("floor = %v, want %v (no distance term)", floor, want)
	}

	if b := m.Brightness(40, 12, fullTorch, Sample{Surface: SurfaceSprite, Distance: 0}); b > p.MaxBrightness {
		t.Errorf("sprite at 0 = %v, want clamped to %v", b, p.MaxBrightness)
	}
}

func TestParams_Tier(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		b    float64
		want style.Tier
	}{
		{0, style.NearBlack},
		{0.11, style.NearBlack},
		{0.2, style.Dim},
		{0.5, style.Normal},
		{0.8, style.Bold},
		{2, style.Bold},
	}
	for _, tt := range tests {
		if got := p.Tier(tt.b); got != tt.want {
			t.Errorf("Tier(%v) = %v, want %v", tt.b, got, tt.want)
		}
	}
	if p.Visible(p.VisibilityFloor) {
		t.Error("Visible(floor) = true, want false")
	}
}
