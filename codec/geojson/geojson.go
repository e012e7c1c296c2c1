// Package geojson encodes domain geometry as GeoJSON. A MultiSurface maps to
// a Feature carrying a MultiPolygon; z ordinates travel as the third position
// element. Decoding is not offered: GeoJSON carries neither GML identity
// semantics nor the exterior/interior ring typing needed to rebuild the
// domain value losslessly.
package geojson

import (
	"math"

	j "github.com/goccy/go-json"

	"github.com/envis-space/egml/geometry"
)

// Feature is the GeoJSON feature wrapper written for a MultiSurface.
type Feature struct {
	Type       string         `json:"type"`
	Id         string         `json:"id,omitempty"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry is a GeoJSON geometry object. Coordinates nesting depends on Type:
// MultiPolygon is [polygon][ring][position][ordinate], Polygon one level less.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// Precision rounds ordinates to the given number of decimal places.
	// 0 means no rounding.
	Precision int
	// Indent pretty-prints the output.
	Indent bool
}

func lastOpt(opts []EncodeOpt) EncodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return EncodeOpt{}
}

// Encode writes a MultiSurface as a GeoJSON Feature with MultiPolygon
// geometry.
func Encode(ms geometry.MultiSurface, opts ...EncodeOpt) ([]byte, error) {
	opt := lastOpt(opts)
	coords := make([][][][3]float64, 0, ms.Len())
	for _, p := range ms.SurfaceMembers() {
		coords = append(coords, polygonCoords(p, opt))
	}
	f := Feature{
		Type: "Feature",
		Id:   ms.Id().String(),
		Geometry: Geometry{
			Type:        "MultiPolygon",
			Coordinates: coords,
		},
		Properties: map[string]any{},
	}
	return marshal(f, opt)
}

// EncodePolygon writes a single polygon as a GeoJSON Feature with Polygon
// geometry.
func EncodePolygon(p geometry.Polygon, opts ...EncodeOpt) ([]byte, error) {
	opt := lastOpt(opts)
	f := Feature{
		Type: "Feature",
		Id:   p.Id().String(),
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: polygonCoords(p, opt),
		},
		Properties: map[string]any{},
	}
	return marshal(f, opt)
}

func marshal(f Feature, opt EncodeOpt) ([]byte, error) {
	if opt.Indent {
		return j.MarshalIndent(f, "", "  ")
	}
	return j.Marshal(f)
}

func polygonCoords(p geometry.Polygon, opt EncodeOpt) [][][3]float64 {
	rings := make([][][3]float64, 0, 1+len(p.Interiors()))
	rings = append(rings, ringCoords(p.Exterior(), opt))
	for _, r := range p.Interiors() {
		rings = append(rings, ringCoords(r, opt))
	}
	return rings
}

func ringCoords(r geometry.LinearRing, opt EncodeOpt) [][3]float64 {
	out := make([][3]float64, 0, r.Len())
	for _, pt := range r.Points() {
		out = append(out, [3]float64{
			round(pt.X, opt.Precision),
			round(pt.Y, opt.Precision),
			round(pt.Z, opt.Precision),
		})
	}
	return out
}

func round(v float64, precision int) float64 {
	if precision <= 0 {
		return v
	}
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}
