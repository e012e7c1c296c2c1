package egml

// Package egml converts GML (Geography Markup Language) markup of composite
// surface features into validated, strongly typed in-memory geometry, and
// back:
//
// - Parse entry points for MultiSurface, Polygon, and LinearRing elements
// - A domain model with fallible constructors owning the geometric invariants
// - Stable identity resolution: explicit gml:id, or a pinned content hash
// - A structured error model via Issues (element path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the markup shape and its
//   helpers under internal/gmlxml and the domain model under geometry/.
// - Place codecs under codec/ and the CLI under cmd/egml.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ms, err := egml.ParseMultiSurface(text)
//	if iss, ok := egml.AsIssues(err); ok { ... }
//
//	out, err := egml.WriteMultiSurface(ms)
