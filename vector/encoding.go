package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode encodes v into a BLOB representation suitable for storage in
// SQLite: a little-endian sequence of IEEE 754 float32 values without a
// length prefix. The dimension is derived from the BLOB size on decode.
func Encode(v Vector) []byte {
	if len(v.data) == 0 {
		return nil
	}
	b := make([]byte, len(v.data)*4)
	for i, c := range v.data {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(c))
	}
	return b
}

// Decode decodes a BLOB produced by Encode back into a Vector.
func Decode(b []byte) (Vector, error) {
	if len(b) == 0 {
		return Vector{}, nil
	}
	if len(b)%4 != 0 {
		return Vector{}, fmt.Errorf("vector: invalid blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	data := make([]float32, n)
	for i := 0; i < n; i++ {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return Vector{data: data}, nil
}
