package key

import "fmt"

// Degree is a diatonic scale degree, I through VII.
type Degree uint8

const (
	I Degree = iota + 1
	II
	III
	IV
	V
	VI
	VII
)

func DegreeFromNumber(n int) (Degree, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("scale degree must be 1 through 7, got %d", n)
	}
	return Degree(n), nil
}

func (d Degree) Number() int {
	return int(d)
}

func (d Degree) String() string {
	return [8]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}[d]
}
