package egml

import (
	"github.com/envis-space/egml/geometry"
	"github.com/envis-space/egml/internal/gmlxml"
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// MaxMembers caps the number of surfaceMember elements accepted before
	// conversion starts. 0 means no cap.
	MaxMembers int
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

// ParseMultiSurface converts the markup of one gml:MultiSurface element into
// validated domain geometry. Identity comes from the gml:id attribute when it
// parses, otherwise deterministically from a digest of the whole mapped
// structure. Members that only reference external geometry via xlink:href are
// dropped. The first failure aborts the parse; there is never a partial
// result.
//
// The call is a pure function of its input and is safe for concurrent use.
func ParseMultiSurface(text string, opts ...ParseOpt) (geometry.MultiSurface, error) {
	var zero geometry.MultiSurface
	raw, err := gmlxml.DecodeMultiSurface(text)
	if err != nil {
		return zero, deserializationIssue(err)
	}
	return resolveMultiSurface(raw, lastOpt(opts))
}

// ParsePolygon converts the markup of one gml:Polygon element, with the same
// identity and error semantics as ParseMultiSurface.
func ParsePolygon(text string) (geometry.Polygon, error) {
	var zero geometry.Polygon
	raw, err := gmlxml.DecodePolygon(text)
	if err != nil {
		return zero, deserializationIssue(err)
	}
	return resolvePolygon(raw, Root())
}

// ParseLinearRing converts the markup of one gml:LinearRing element.
func ParseLinearRing(text string) (geometry.LinearRing, error) {
	var zero geometry.LinearRing
	raw, err := gmlxml.DecodeLinearRing(text)
	if err != nil {
		return zero, deserializationIssue(err)
	}
	return resolveRing(raw, Root())
}

// WriteMultiSurface serializes domain geometry back into GML markup. The
// output round-trips through ParseMultiSurface.
func WriteMultiSurface(ms geometry.MultiSurface) ([]byte, error) {
	return gmlxml.EncodeMultiSurface(ms)
}

// WritePolygon serializes a standalone polygon into GML markup.
func WritePolygon(p geometry.Polygon) ([]byte, error) {
	return gmlxml.EncodePolygon(p)
}
