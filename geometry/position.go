package geometry

import (
	"fmt"
	"math"
)

// DirectPosition is a position with three ordinates. The library does not
// interpret the coordinate reference system; ordinates are carried as given.
type DirectPosition struct {
	X float64
	Y float64
	Z float64
}

// NewDirectPosition validates that every ordinate is finite.
func NewDirectPosition(x, y, z float64) (DirectPosition, error) {
	for _, v := range [3]float64{x, y, z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return DirectPosition{}, fmt.Errorf("(%v %v %v): %w", x, y, z, ErrNonFiniteOrdinate)
		}
	}
	return DirectPosition{X: x, Y: y, Z: z}, nil
}

func (p DirectPosition) String() string {
	return fmt.Sprintf("%v %v %v", p.X, p.Y, p.Z)
}
