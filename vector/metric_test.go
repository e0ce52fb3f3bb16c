package vector

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-5

func approx(a, b float32) bool { return math.Abs(float64(a)-float64(b)) <= tolerance }

func TestDot_IgnoresTail(t *testing.T) {
	if got := Dot(New(1, 2, 3, 20), New(1, 2)); got != 5 {
		t.Fatalf("Dot = %v, want 5", got)
	}
	if got := New(1, 2, 3).Dot(New(4, 5, 6)); got != 32 {
		t.Fatalf("Dot = %v, want 32", got)
	}
}

func TestNorm(t *testing.T) {
	if got := Norm(New(3, 4)); !approx(got, 5) {
		t.Fatalf("Norm(3,4) = %v, want 5", got)
	}
	if got := Norm(New()); got != 0 {
		t.Fatalf("Norm(empty) = %v, want 0", got)
	}
	if got := New(0, 0, 2).Norm(); !approx(got, 2) {
		t.Fatalf("Norm(0,0,2) = %v, want 2", got)
	}
}

func TestDistance_ZeroPadsShorter(t *testing.T) {
	if got := Distance(New(0, 0), New(3, 4)); !approx(got, 5) {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := Distance(New(1), New(1, 2)); !approx(got, 2) {
		t.Fatalf("Distance = %v, want 2", got)
	}
}

func TestAngleBetween(t *testing.T) {
	testCases := []struct {
		description string
		a, b        Vector
		want        float32
	}{
		{description: "opposite", a: New(1, 0, 0), b: New(-1, 0, 0), want: math.Pi},
		{description: "orthogonal", a: New(1, 0), b: New(0, 1), want: math.Pi / 2},
		{description: "same direction", a: New(1, 0), b: New(3, 0), want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := AngleBetween(tc.a, tc.b)
			if err != nil {
				t.Fatalf("AngleBetween failed: %v", err)
			}
			if !approx(got, tc.want) {
				t.Fatalf("AngleBetween = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAngleBetween_ZeroNorm(t *testing.T) {
	_, err := AngleBetween(New(0, 0, 0), New(1, 0, 0))
	if !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(New(3, 0, 4))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !approx(n.At(0), 0.6) || n.At(1) != 0 || !approx(n.At(2), 0.8) {
		t.Fatalf("Normalize = [%v], want [0.6, 0, 0.8]", n)
	}
	if _, err := Normalize(New(0, 0)); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

func TestNorm_LargeComponents(t *testing.T) {
	got := Norm(New(3e19, 4e19))
	if math.IsInf(float64(got), 0) || math.Abs(float64(got)/5e19-1) > tolerance {
		t.Fatalf("Norm(3e19, 4e19) = %v, want 5e19", got)
	}
	if got := Norm(New(float32(math.Inf(1)), 1)); !math.IsInf(float64(got), 1) {
		t.Fatalf("Norm(+Inf, 1) = %v, want +Inf", got)
	}
}

func TestNormalize_LargeComponents(t *testing.T) {
	n, err := Normalize(New(3e19, 4e19))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !approx(n.At(0), 0.6) || !approx(n.At(1), 0.8) {
		t.Fatalf("Normalize = [%v], want [0.6, 0.8]", n)
	}
}

func TestNormalize_NonFinite(t *testing.T) {
	for _, v := range []Vector{
		New(float32(math.Inf(1)), 0),
		New(1, float32(math.NaN())),
	} {
		if _, err := Normalize(v); !errors.Is(err, ErrDegenerateVector) {
			t.Fatalf("Normalize(%v): expected ErrDegenerateVector, got %v", v, err)
		}
	}
}

func TestAngleBetween_LargeComponents(t *testing.T) {
	got, err := AngleBetween(New(3e19, 0), New(3e19, 0))
	if err != nil {
		t.Fatalf("AngleBetween failed: %v", err)
	}
	if !approx(got, 0) {
		t.Fatalf("AngleBetween = %v, want 0", got)
	}
}

func TestAngleBetween_AntiParallel(t *testing.T) {
	a := New(0.1, 0.2, 0.3)
	got, err := AngleBetween(a, ScalarMul(a, -1))
	if err != nil {
		t.Fatalf("AngleBetween failed: %v", err)
	}
	if !approx(got, math.Pi) {
		t.Fatalf("AngleBetween = %v, want π", got)
	}
}

func TestAngleBetween_NonFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	if _, err := AngleBetween(New(inf, 0), New(1, 0)); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
	if _, err := AngleBetween(New(1, 0), New(float32(math.NaN()))); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}
