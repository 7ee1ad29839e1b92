package workledger

import "fmt"

// Percent is a ratio expressed in hundredths.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String returns the percentage rounded to a whole number, e.g. "43%".
func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}
