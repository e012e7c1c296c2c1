package geometry

import "fmt"

// minRingPoints is the smallest closed ring: a triangle plus the repeated
// closing point.
const minRingPoints = 4

// LinearRing is a closed, ordered sequence of positions bounding a polygon or
// a hole within one. The first and last position are equal.
type LinearRing struct {
	points []DirectPosition
}

// NewLinearRing validates and takes ownership of points. Consecutive
// duplicate positions, which real-world GML sources frequently carry, are
// collapsed before the topological checks: after collapsing the ring must
// still hold at least four positions and be closed.
func NewLinearRing(points []DirectPosition) (LinearRing, error) {
	pts := collapseConsecutive(points)
	for _, p := range pts {
		if _, err := NewDirectPosition(p.X, p.Y, p.Z); err != nil {
			return LinearRing{}, err
		}
	}
	if len(pts) < minRingPoints {
		return LinearRing{}, fmt.Errorf("%d distinct of %d given, need %d: %w",
			len(pts), len(points), minRingPoints, ErrTooFewPoints)
	}
	if pts[0] != pts[len(pts)-1] {
		return LinearRing{}, fmt.Errorf("first %v != last %v: %w",
			pts[0], pts[len(pts)-1], ErrRingNotClosed)
	}
	return LinearRing{points: pts}, nil
}

// Points returns the ring's positions, closing point included. The slice is
// owned by the ring and must not be mutated.
func (r LinearRing) Points() []DirectPosition { return r.points }

// Len returns the number of positions, closing point included.
func (r LinearRing) Len() int { return len(r.points) }

func collapseConsecutive(points []DirectPosition) []DirectPosition {
	out := make([]DirectPosition, 0, len(points))
	for i, p := range points {
		if i > 0 && p == points[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
