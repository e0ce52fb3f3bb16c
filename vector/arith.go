package vector

// Add returns a + b. When the dimensions differ the shorter operand is
// treated as zero-padded, so the result has the dimension of the longer one
// and its tail is copied from the longer operand.
func Add(a, b Vector) Vector {
	n := max(len(a.data), len(b.data))
	out := make([]float32, n)
	for i := range out {
		out[i] = component(a, i) + component(b, i)
	}
	return Vector{data: out}
}

// Sub returns a - b with the same zero-padding rule as Add: a longer a keeps
// its tail, a longer b contributes its tail negated.
func Sub(a, b Vector) Vector {
	n := max(len(a.data), len(b.data))
	out := make([]float32, n)
	for i := range out {
		out[i] = component(a, i) - component(b, i)
	}
	return Vector{data: out}
}

// ScalarMul multiplies every component of v by k.
func ScalarMul(v Vector, k float32) Vector {
	out := make([]float32, len(v.data))
	for i, c := range v.data {
		out[i] = c * k
	}
	return Vector{data: out}
}

// Add is the method form of Add(v, o).
func (v Vector) Add(o Vector) Vector { return Add(v, o) }

// Sub is the method form of Sub(v, o).
func (v Vector) Sub(o Vector) Vector { return Sub(v, o) }

// Scale is the method form of ScalarMul(v, k).
func (v Vector) Scale(k float32) Vector { return ScalarMul(v, k) }

// component returns v[i], or 0 past the end of v.
func component(v Vector, i int) float32 {
	if i < len(v.data) {
		return v.data[i]
	}
	return 0
}
