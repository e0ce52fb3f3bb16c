// Package vector implements small-dimension vector algebra over float32
// components. It includes:
//   - Vector value type and display formatting
//   - Arithmetic with zero-padding of the shorter operand (Add, Sub, ScalarMul)
//   - Metric helpers (Dot, Norm, AngleBetween, Normalize, Distance)
//   - 3D cross product and orthonormal basis construction
//   - Binary encoding (BLOB) used by the SQLite engine and store
//
// All operations are pure; operands are never modified.
package vector
