package gmlxml

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Structural hashing backs fallback identity: when an element carries no
// usable gml:id, its Id derives from a digest of the entire mapped structure.
// The digest must be stable across processes and library versions, so the
// algorithm is pinned to xxhash64 and every field is fed in declaration
// order with length prefixes (two structures differing in any field, member
// order included, digest apart except by genuine collision).

type structHasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newStructHasher() *structHasher {
	return &structHasher{d: xxhash.New()}
}

func (h *structHasher) num(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *structHasher) str(s string) {
	h.num(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

// HashMultiSurface digests the full mapped structure, the id attribute
// included even when empty.
func HashMultiSurface(ms *MultiSurface) uint64 {
	h := newStructHasher()
	h.str(ms.Id)
	h.num(uint64(len(ms.Members)))
	for i := range ms.Members {
		h.member(&ms.Members[i])
	}
	return h.d.Sum64()
}

// HashPolygon digests a mapped polygon, for fallback identity of standalone
// polygon elements.
func HashPolygon(p *Polygon) uint64 {
	h := newStructHasher()
	h.polygon(p)
	return h.d.Sum64()
}

func (h *structHasher) member(m *SurfaceMember) {
	h.str(m.Href)
	if m.Polygon == nil {
		h.num(0)
		return
	}
	h.num(1)
	h.polygon(m.Polygon)
}

func (h *structHasher) polygon(p *Polygon) {
	h.str(p.Id)
	h.ringProperty(p.Exterior)
	h.num(uint64(len(p.Interiors)))
	for i := range p.Interiors {
		h.ringProperty(&p.Interiors[i])
	}
}

func (h *structHasher) ringProperty(rp *RingProperty) {
	if rp == nil || rp.LinearRing == nil {
		h.num(0)
		return
	}
	h.num(1)
	h.str(rp.LinearRing.Id)
	h.str(rp.LinearRing.PosList.SrsDimension)
	h.str(rp.LinearRing.PosList.Value)
}
