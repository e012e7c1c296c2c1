package gmlxml

import (
	"encoding/xml"
	"strconv"

	"github.com/envis-space/egml/geometry"
)

// gmlNamespace is declared on written root elements so the output also parses
// in namespace-aware tooling.
const gmlNamespace = "http://www.opengis.net/gml"

// The output shapes carry literal gml: prefixes; encoding/xml emits them
// verbatim, which keeps the markup in the form the decode side and external
// GML consumers expect.

type multiSurfaceOut struct {
	XMLName xml.Name    `xml:"gml:MultiSurface"`
	Xmlns   string      `xml:"xmlns:gml,attr"`
	Id      string      `xml:"gml:id,attr,omitempty"`
	Members []memberOut `xml:"gml:surfaceMember"`
}

type memberOut struct {
	Polygon polygonOut `xml:"gml:Polygon"`
}

type polygonOut struct {
	XMLName   xml.Name          `xml:"gml:Polygon"`
	Xmlns     string            `xml:"xmlns:gml,attr,omitempty"`
	Id        string            `xml:"gml:id,attr,omitempty"`
	Exterior  ringPropertyOut   `xml:"gml:exterior"`
	Interiors []ringPropertyOut `xml:"gml:interior"`
}

type ringPropertyOut struct {
	LinearRing linearRingOut `xml:"gml:LinearRing"`
}

type linearRingOut struct {
	PosList posListOut `xml:"gml:posList"`
}

type posListOut struct {
	SrsDimension string `xml:"srsDimension,attr"`
	Value        string `xml:",chardata"`
}

// EncodeMultiSurface serializes domain geometry back into GML markup. The
// output round-trips through DecodeMultiSurface.
func EncodeMultiSurface(ms geometry.MultiSurface) ([]byte, error) {
	out := multiSurfaceOut{
		Xmlns: gmlNamespace,
		Id:    ms.Id().String(),
	}
	for _, p := range ms.SurfaceMembers() {
		out.Members = append(out.Members, memberOut{Polygon: polygonToOut(p)})
	}
	return xml.MarshalIndent(out, "", "  ")
}

// EncodePolygon serializes a standalone polygon into GML markup.
func EncodePolygon(p geometry.Polygon) ([]byte, error) {
	out := polygonToOut(p)
	out.Xmlns = gmlNamespace
	return xml.MarshalIndent(out, "", "  ")
}

func polygonToOut(p geometry.Polygon) polygonOut {
	out := polygonOut{
		Id:       p.Id().String(),
		Exterior: ringToOut(p.Exterior()),
	}
	for _, r := range p.Interiors() {
		out.Interiors = append(out.Interiors, ringToOut(r))
	}
	return out
}

func ringToOut(r geometry.LinearRing) ringPropertyOut {
	return ringPropertyOut{
		LinearRing: linearRingOut{
			PosList: posListOut{
				SrsDimension: strconv.Itoa(ordinatesPerPosition),
				Value:        FormatPosList(r.Points()),
			},
		},
	}
}
