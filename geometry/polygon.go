package geometry

// Polygon is a planar surface patch: one exterior boundary and zero or more
// interior boundaries (holes).
type Polygon struct {
	id        Id
	exterior  LinearRing
	interiors []LinearRing
}

// NewPolygon validates and takes ownership of the rings. The exterior ring is
// required; interiors may be empty.
func NewPolygon(id Id, exterior LinearRing, interiors []LinearRing) (Polygon, error) {
	if exterior.Len() == 0 {
		return Polygon{}, ErrMissingExterior
	}
	return Polygon{id: id, exterior: exterior, interiors: interiors}, nil
}

// Id returns the polygon's identifier.
func (p Polygon) Id() Id { return p.id }

// Exterior returns the outer boundary ring.
func (p Polygon) Exterior() LinearRing { return p.exterior }

// Interiors returns the hole rings in source order. The slice is owned by the
// polygon and must not be mutated.
func (p Polygon) Interiors() []LinearRing { return p.interiors }
