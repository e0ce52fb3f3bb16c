package vector

import "fmt"

// unit is the auxiliary offset BasisFromOne adds to its input to obtain a
// second, generally non-parallel, direction.
var unit = Vector{data: []float32{1, 1, 1}}

// Cross returns the 3D cross product a × b. Operands shorter than three
// components are zero-padded; operands longer than three are rejected with
// ErrDimensionTooLarge.
func Cross(a, b Vector) (Vector, error) {
	if a.Len() > 3 {
		return Vector{}, fmt.Errorf("%w: first operand has %d components", ErrDimensionTooLarge, a.Len())
	}
	if b.Len() > 3 {
		return Vector{}, fmt.Errorf("%w: second operand has %d components", ErrDimensionTooLarge, b.Len())
	}
	a0, a1, a2 := component(a, 0), component(a, 1), component(a, 2)
	b0, b1, b2 := component(b, 0), component(b, 1), component(b, 2)
	return Vector{data: []float32{
		a1*b2 - a2*b1,
		a2*b0 - a0*b2,
		a0*b1 - a1*b0,
	}}, nil
}

// BasisFromOne builds an orthonormal frame whose first axis is v. The second
// axis is v × (v + (1,1,1)) and the third is the second crossed with v.
//
// Inputs shorter than three components are zero-padded, so every axis of the
// frame has three components. It returns ErrDegenerateVector when v is zero
// or parallel to (1,1,1).
func BasisFromOne(v Vector) (Basis, error) {
	v = pad3(v)
	b, err := Cross(v, Add(v, unit))
	if err != nil {
		return Basis{}, err
	}
	c, err := Cross(b, v)
	if err != nil {
		return Basis{}, err
	}
	return normalizeAll(v, b, c)
}

// BasisFromTwo builds an orthonormal frame from v1 and v2: v1, v1 × v2 and
// v1 × (v1 × v2). When Dot(v1, v2) is exactly 1 the vectors are taken as
// parallel and the frame is derived from v1 alone via BasisFromOne.
//
// The parallel test only recognises identical unit vectors; other parallel
// pairs yield a zero cross product and fail with ErrDegenerateVector. As in
// BasisFromOne, a short v1 is zero-padded to three components.
func BasisFromTwo(v1, v2 Vector) (Basis, error) {
	v1 = pad3(v1)
	if Dot(v1, v2) == 1.0 {
		return BasisFromOne(v1)
	}
	a, err := Cross(v1, v2)
	if err != nil {
		return Basis{}, err
	}
	b, err := Cross(v1, a)
	if err != nil {
		return Basis{}, err
	}
	return normalizeAll(v1, a, b)
}

// pad3 zero-pads v to three components; longer vectors are returned as is.
func pad3(v Vector) Vector {
	if len(v.data) >= 3 {
		return v
	}
	return Add(v, Vector{data: make([]float32, 3)})
}

func normalizeAll(x, y, z Vector) (Basis, error) {
	var out Basis
	for i, v := range [3]Vector{x, y, z} {
		n, err := Normalize(v)
		if err != nil {
			return Basis{}, fmt.Errorf("%w: basis axis %d", err, i)
		}
		out[i] = n
	}
	return out, nil
}

// Cross is the method form of Cross(v, o).
func (v Vector) Cross(o Vector) (Vector, error) { return Cross(v, o) }
