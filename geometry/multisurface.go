package geometry

// MultiSurface is a named, ordered collection of polygon patches. It is
// immutable after construction and owned by the caller.
type MultiSurface struct {
	id      Id
	members []Polygon
}

// NewMultiSurface validates and takes ownership of members. An empty member
// sequence is accepted: source documents may consist entirely of by-reference
// members, which parsing drops.
func NewMultiSurface(id Id, members []Polygon) (MultiSurface, error) {
	return MultiSurface{id: id, members: members}, nil
}

// Id returns the multi surface's identifier.
func (m MultiSurface) Id() Id { return m.id }

// SurfaceMembers returns the polygons in source order. The slice is owned by
// the multi surface and must not be mutated.
func (m MultiSurface) SurfaceMembers() []Polygon { return m.members }

// Len returns the number of surface members.
func (m MultiSurface) Len() int { return len(m.members) }
