package vector

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/viant/vec/search"
)

// fastNormLimit bounds the largest |component| for which squares summed in
// float32 cannot overflow at the dimensions this package targets.
const fastNormLimit = 1e17

// Dot returns the sum of a[i]*b[i] over the common prefix of both vectors.
// Components past the shorter vector are ignored.
func Dot(a, b Vector) float32 { return float32(dot64(a, b)) }

// Norm returns the Euclidean (L2) norm of v. The result is +Inf only when
// the true norm exceeds the float32 range.
func Norm(v Vector) float32 {
	if len(v.data) == 0 {
		return 0
	}
	if v.IsFinite() && maxAbs(v) <= fastNormLimit {
		return search.Float32s(v.data).Magnitude()
	}
	return float32(norm64(v))
}

// Distance returns the Euclidean distance between a and b, zero-padding the
// shorter vector as Sub does.
func Distance(a, b Vector) float32 { return Norm(Sub(a, b)) }

// AngleBetween returns the angle between a and b in radians, within [0, π].
// It returns ErrDegenerateVector when either vector has zero norm or a
// non-finite component.
func AngleBetween(a, b Vector) (float32, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return 0, fmt.Errorf("%w: angle with non-finite vector", ErrDegenerateVector)
	}
	na, nb := norm64(a), norm64(b)
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("%w: angle with zero-magnitude vector", ErrDegenerateVector)
	}
	cos := dot64(a, b) / (na * nb)
	if math.IsNaN(cos) {
		return 0, fmt.Errorf("%w: undefined angle", ErrDegenerateVector)
	}
	// rounding can push |cos| slightly past 1
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos)), nil
}

// Normalize returns v scaled to unit length. It returns ErrDegenerateVector
// when the norm of v is exactly zero or v has a non-finite component.
func Normalize(v Vector) (Vector, error) {
	if !v.IsFinite() {
		return Vector{}, fmt.Errorf("%w: non-finite component", ErrDegenerateVector)
	}
	n := norm64(v)
	if n == 0 {
		return Vector{}, ErrDegenerateVector
	}
	out := make([]float32, len(v.data))
	for i, c := range v.data {
		out[i] = float32(float64(c) / n)
	}
	return Vector{data: out}, nil
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector) IsFinite() bool {
	for _, c := range v.data {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dot is the method form of Dot(v, o).
func (v Vector) Dot(o Vector) float32 { return Dot(v, o) }

// Norm is the method form of Norm(v).
func (v Vector) Norm() float32 { return Norm(v) }

func dot64(a, b Vector) float64 {
	n := min(len(a.data), len(b.data))
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a.data[i]) * float64(b.data[i])
	}
	return sum
}

func norm64(v Vector) float64 { return math.Sqrt(dot64(v, v)) }

func maxAbs(v Vector) float32 {
	var m float32
	for _, c := range v.data {
		if a := math32.Abs(c); a > m {
			m = a
		}
	}
	return m
}
