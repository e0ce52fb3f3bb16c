package vector

import (
	"strconv"
	"strings"
)

// Vector is an ordered, fixed-length sequence of float32 components. The zero
// value is an empty vector. Vectors are never mutated after construction;
// every operation returns a freshly allocated result.
type Vector struct {
	data []float32
}

// New creates a vector holding a copy of the given components.
func New(components ...float32) Vector {
	if len(components) == 0 {
		return Vector{}
	}
	return Vector{data: append([]float32(nil), components...)}
}

// Len returns the dimension of the vector.
func (v Vector) Len() int { return len(v.data) }

// At returns the i-th component. It panics when i is out of range, like a
// slice index.
func (v Vector) At(i int) float32 { return v.data[i] }

// Components returns a copy of the vector components.
func (v Vector) Components() []float32 {
	return append([]float32(nil), v.data...)
}

// Equal reports whether both vectors have the same dimension and identical
// components.
func (v Vector) Equal(o Vector) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String formats the components in their shortest decimal form, separated
// by ", ".
func (v Vector) String() string {
	parts := make([]string, len(v.data))
	for i, c := range v.data {
		parts[i] = strconv.FormatFloat(float64(c), 'f', -1, 32)
	}
	return strings.Join(parts, ", ")
}

// Basis is a frame of three vectors returned by BasisFromOne and BasisFromTwo.
type Basis [3]Vector

// String prints one vector per line.
func (b Basis) String() string {
	return b[0].String() + "\n" + b[1].String() + "\n" + b[2].String()
}
