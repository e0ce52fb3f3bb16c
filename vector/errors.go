package vector

import "errors"

var (
	// ErrDimensionTooLarge is returned by 3D-only operations when an operand
	// has more than three components.
	ErrDimensionTooLarge = errors.New("vector: dimension exceeds 3")

	// ErrDegenerateVector is returned when a normalization divisor is zero.
	ErrDegenerateVector = errors.New("vector: degenerate vector (zero norm)")
)
