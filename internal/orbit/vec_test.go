package orbit

import (
	"math"
	"testing"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := Vector2{1, 2}
	b := Vector2{4, 6}

	if got := a.Add(b); got != (Vector2{5, 8}) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != (Vector2{3, 4}) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(2); got != (Vector2{2, 4}) {
		t.Errorf("Scale failed: got %v", got)
	}
}

func TestVector2_Mag(t *testing.T) {
	tests := []struct {
		v        Vector2
		expected float64
	}{
		{Vector2{3, 4}, 5.0},
		{Vector2{1, 0}, 1.0},
		{Vector2{0, 0}, 0.0},
		{Vector2{-3, -4}, 5.0},
	}

	for _, tt := range tests {
		if got := tt.v.Mag(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Mag(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got := tt.v.MagSq(); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("MagSq(%v) = %v, want %v", tt.v, got, tt.expected*tt.expected)
		}
	}
}

func TestVector2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want Vector2
	}{
		{"unit x", Vector2{5, 0}, Vector2{1, 0}},
		{"unit y", Vector2{0, -2}, Vector2{0, -1}},
		{"diagonal", Vector2{3, 4}, Vector2{0.6, 0.8}},
		{"zero stays zero", Vector2{0, 0}, Vector2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFromPolar(t *testing.T) {
	tests := []struct {
		angleDeg  float64
		magnitude float64
		want      Vector2
	}{
		{0, 2, Vector2{2, 0}},
		{90, 3, Vector2{0, 3}},
		{180, 1, Vector2{-1, 0}},
		{270, 1, Vector2{0, -1}},
		{45, math.Sqrt2, Vector2{1, 1}},
	}

	for _, tt := range tests {
		got := FromPolar(tt.angleDeg, tt.magnitude)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("FromPolar(%v, %v) = %v, want %v", tt.angleDeg, tt.magnitude, got, tt.want)
		}
	}
}

func TestVector2_IsValid(t *testing.T) {
	if !(Vector2{1, -2}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vector2{math.NaN(), 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vector2{0, math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}
