package units

import (
	"math"
	"testing"
)

func TestEnergyConversionRoundTrip(t *testing.T) {
	ev := 13.6
	back := JoulesToEV(EVToJoules(ev))
	// The factors are exact inverses; only two multiplications round.
	if math.Abs(back-ev)/ev > 1e-12 {
		t.Errorf("expected %.15f after round trip, got %.15f", ev, back)
	}
}

func TestMassConversionRoundTrip(t *testing.T) {
	amu := 235.0439299
	back := KgToAMU(AMUToKg(amu))
	if math.Abs(back-amu)/amu > 1e-6 {
		t.Errorf("expected %f after round trip, got %f", amu, back)
	}
}

func TestEVToJoules(t *testing.T) {
	j := EVToJoules(1.0)
	if math.Abs(j-ElementaryCharge) > 1e-30 {
		t.Errorf("1 eV should equal the elementary charge in joules, got %e", j)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tt.value, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("expected 5, got %f", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("expected 2, got %f", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("expected 4, got %f", got)
	}
}
