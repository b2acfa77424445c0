// File: errors.go
// Summary: The small set of fallible constructors' error values.
// Usage: Returned by NewScreen, NewHistoryScreen and Resize.
// Notes: Plain fmt.Errorf, no sentinel/code type — matches the teacher's own error style.

package vtcore

import "fmt"

func errInvalidDimensions(columns, lines int) error {
	return fmt.Errorf("vtcore: columns and lines must be positive, got %d x %d", columns, lines)
}

func errInvalidRatio(ratio float64) error {
	return fmt.Errorf("vtcore: history ratio must be in (0, 1], got %v", ratio)
}
