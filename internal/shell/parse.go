package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/victor/vector"
)

// ParseVector converts whitespace-separated numbers into a Vector. Blank
// input yields an empty vector.
func ParseVector(text string) (vector.Vector, error) {
	fields := strings.Fields(text)
	components := make([]float32, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("invalid number %q", field)
		}
		components[i] = float32(f)
	}
	return vector.New(components...), nil
}

// ParseScalar converts a single number.
func ParseScalar(text string) (float32, error) {
	text = strings.TrimSpace(text)
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid scalar %q", text)
	}
	return float32(f), nil
}

func formatScalar(x float32) string {
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}
