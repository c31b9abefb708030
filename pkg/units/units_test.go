package units

import (
	"math"
	"testing"
)

func TestConvertLinear(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1000, "m", "ft", 3280.839895013123},
		{1, "kft", "ft", 1000},
		{10, "kN", "lbf", 2248.089430997105},
		{1, "lbm/s", "lbm/h", 3600},
		{1, "kg/s", "kg/h", 3600},
		{1, "MW", "hp", 1341.022089595028},
		{745.6998715822702, "W", "hp", 1},
		{0.8, "unitless", "unitless", 0.8},
	}
	for _, tt := range tests {
		got, err := Convert(tt.value, tt.from, tt.to)
		if err != nil {
			t.Fatalf("Convert(%g, %q, %q): %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-9*math.Abs(tt.want) {
			t.Errorf("Convert(%g, %q, %q) = %g, want %g", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{288.15, "K", "degR", 518.67},
		{518.67, "degR", "K", 288.15},
		{15, "degC", "degF", 59},
		{59, "degF", "degR", 518.67},
		{0, "degC", "K", 273.15},
	}
	for _, tt := range tests {
		got, err := Convert(tt.value, tt.from, tt.to)
		if err != nil {
			t.Fatalf("Convert(%g, %q, %q): %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Convert(%g, %q, %q) = %g, want %g", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConvertIncompatible(t *testing.T) {
	if _, err := Convert(1, "ft", "lbf"); err == nil {
		t.Error("expected error converting ft to lbf")
	}
	if _, err := Convert(1, "degR", "ft"); err == nil {
		t.Error("expected error converting degR to ft")
	}
	if _, err := Convert(1, "furlong", "ft"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"ft", "m", true},
		{"ft", "ft", true},
		{"lbf", "kN", true},
		{"K", "degF", true},
		{"ft", "lbf", false},
		{"K", "ft", false},
		{"ft", "K", false},
		{"bogus", "ft", false},
	}
	for _, tt := range tests {
		if got := Compatible(tt.from, tt.to); got != tt.want {
			t.Errorf("Compatible(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConvertSlicePreservesInput(t *testing.T) {
	in := []float64{0, 1000, 2000}
	out, err := ConvertSlice(in, "m", "ft")
	if err != nil {
		t.Fatalf("ConvertSlice: %v", err)
	}
	if in[1] != 1000 {
		t.Errorf("input slice was modified: %v", in)
	}
	if math.Abs(out[1]-3280.839895013123) > 1e-9 {
		t.Errorf("out[1] = %g, want 3280.84", out[1])
	}
}
