// Package gmlxml declares the structural shape of GML geometry markup as seen
// by encoding/xml, plus the helpers that operate on the mapped structures
// (coordinate text parsing, structural hashing, serialization).
//
// The mapped types are purely structural: optional attributes default to the
// empty string, optional payloads to nil, and no semantic checks happen here.
// Element tags carry no namespace so gml:-prefixed documents decode whether or
// not the prefix is bound to a declared namespace.
package gmlxml

import "encoding/xml"

// MultiSurface mirrors a gml:MultiSurface element: an optional gml:id
// attribute and an ordered sequence of surfaceMember children. Order is
// preserved and duplicates are kept; srsName/srsDimension and other foreign
// attributes are tolerated and ignored.
type MultiSurface struct {
	XMLName xml.Name        `xml:"MultiSurface"`
	Id      string          `xml:"id,attr"`
	Members []SurfaceMember `xml:"surfaceMember"`
}

// SurfaceMember mirrors a gml:surfaceMember element. Exactly one of the
// xlink:href attribute and the inline polygon is meaningful per the GML
// schema, but both are structurally always present here.
type SurfaceMember struct {
	Href    string   `xml:"href,attr"`
	Polygon *Polygon `xml:"Polygon"`
}

// Polygon mirrors a gml:Polygon element with one exterior and any number of
// interior ring properties.
type Polygon struct {
	XMLName   xml.Name       `xml:"Polygon"`
	Id        string         `xml:"id,attr"`
	Exterior  *RingProperty  `xml:"exterior"`
	Interiors []RingProperty `xml:"interior"`
}

// RingProperty mirrors a gml:exterior or gml:interior wrapper element.
type RingProperty struct {
	LinearRing *LinearRing `xml:"LinearRing"`
}

// LinearRing mirrors a gml:LinearRing element carrying a posList.
type LinearRing struct {
	XMLName xml.Name `xml:"LinearRing"`
	Id      string   `xml:"id,attr"`
	PosList PosList  `xml:"posList"`
}

// PosList mirrors a gml:posList element: whitespace-separated ordinate text.
type PosList struct {
	SrsDimension string `xml:"srsDimension,attr"`
	Value        string `xml:",chardata"`
}

// DecodeMultiSurface maps markup text onto the MultiSurface shape. Failures
// are the deserializer's verbatim diagnostics.
func DecodeMultiSurface(text string) (*MultiSurface, error) {
	var ms MultiSurface
	if err := xml.Unmarshal([]byte(text), &ms); err != nil {
		return nil, err
	}
	return &ms, nil
}

// DecodePolygon maps markup text with a top-level gml:Polygon element.
func DecodePolygon(text string) (*Polygon, error) {
	var p Polygon
	if err := xml.Unmarshal([]byte(text), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeLinearRing maps markup text with a top-level gml:LinearRing element.
func DecodeLinearRing(text string) (*LinearRing, error) {
	var r LinearRing
	if err := xml.Unmarshal([]byte(text), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
