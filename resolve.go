package egml

import (
	"errors"

	"github.com/envis-space/egml/geometry"
	"github.com/envis-space/egml/i18n"
	"github.com/envis-space/egml/internal/gmlxml"
)

// deserializationIssue wraps the deserializer's verbatim diagnostic.
func deserializationIssue(cause error) Issues {
	iss := Root().Issue(CodeMalformedMarkup, i18n.T(CodeMalformedMarkup, nil))
	iss.Cause = cause
	return Issues{iss}
}

// domainIssues translates a domain constructor rejection into the issue model.
func domainIssues(at PathRef, err error) Issues {
	code := CodeInvalidGeometry
	switch {
	case errors.Is(err, geometry.ErrTooFewPoints):
		code = CodeTooFewPoints
	case errors.Is(err, geometry.ErrRingNotClosed):
		code = CodeRingNotClosed
	case errors.Is(err, geometry.ErrMissingExterior):
		code = CodeMissingExterior
	case errors.Is(err, geometry.ErrNonFiniteOrdinate):
		code = CodeNonFiniteOrdinate
	}
	iss := at.Issue(code, i18n.T(code, nil))
	iss.Cause = err
	return Issues{iss}
}

// resolveId runs the two identity paths: the fallible parse of the explicit
// attribute, then the total hash fallback. Resolution never fails.
func resolveId(attr string, digest func() uint64) geometry.Id {
	if id, ok := geometry.ParseId(attr); ok {
		return id
	}
	return geometry.IdFromHash(digest())
}

func resolveMultiSurface(raw *gmlxml.MultiSurface, opt ParseOpt) (geometry.MultiSurface, error) {
	var zero geometry.MultiSurface
	if opt.MaxMembers > 0 && len(raw.Members) > opt.MaxMembers {
		iss := Root().Child("surfaceMember").Index(opt.MaxMembers).
			Issue(CodeTruncated, i18n.T(CodeTruncated, nil), "max", opt.MaxMembers, "got", len(raw.Members))
		return zero, Issues{iss}
	}

	id := resolveId(raw.Id, func() uint64 { return gmlxml.HashMultiSurface(raw) })

	// Members without an inline polygon are by-reference; they are recognized
	// and intentionally dropped, never resolved and never an error.
	var members []geometry.Polygon
	for i := range raw.Members {
		member := &raw.Members[i]
		if member.Polygon == nil {
			continue
		}
		at := Root().Child("surfaceMember").Index(i).Child("Polygon")
		p, err := resolvePolygon(member.Polygon, at)
		if err != nil {
			return zero, err
		}
		members = append(members, p)
	}

	ms, err := geometry.NewMultiSurface(id, members)
	if err != nil {
		return zero, domainIssues(Root(), err)
	}
	return ms, nil
}

func resolvePolygon(raw *gmlxml.Polygon, at PathRef) (geometry.Polygon, error) {
	var zero geometry.Polygon
	id := resolveId(raw.Id, func() uint64 { return gmlxml.HashPolygon(raw) })

	if raw.Exterior == nil || raw.Exterior.LinearRing == nil {
		return zero, domainIssues(at.Child("exterior"), geometry.ErrMissingExterior)
	}
	exterior, err := resolveRing(raw.Exterior.LinearRing, at.Child("exterior").Child("LinearRing"))
	if err != nil {
		return zero, err
	}

	var interiors []geometry.LinearRing
	for i := range raw.Interiors {
		// An interior wrapper without a ring child contributes nothing,
		// mirroring the by-reference member policy.
		if raw.Interiors[i].LinearRing == nil {
			continue
		}
		ring, err := resolveRing(raw.Interiors[i].LinearRing, at.Child("interior").Index(i).Child("LinearRing"))
		if err != nil {
			return zero, err
		}
		interiors = append(interiors, ring)
	}

	p, err := geometry.NewPolygon(id, exterior, interiors)
	if err != nil {
		return zero, domainIssues(at, err)
	}
	return p, nil
}

func resolveRing(raw *gmlxml.LinearRing, at PathRef) (geometry.LinearRing, error) {
	var zero geometry.LinearRing
	points, err := gmlxml.ParsePosList(raw.PosList.Value)
	if err != nil {
		at = at.Child("posList")
		var oe *gmlxml.OrdinateError
		switch {
		case errors.Is(err, gmlxml.ErrIncompleteTuple):
			iss := at.Issue(CodeIncompleteTuple, i18n.T(CodeIncompleteTuple, nil))
			iss.Cause = err
			return zero, Issues{iss}
		case errors.As(err, &oe):
			iss := at.Issue(CodeInvalidOrdinate, i18n.T(CodeInvalidOrdinate, map[string]string{"token": oe.Token}),
				"index", oe.Index, "token", oe.Token)
			iss.Cause = err
			return zero, Issues{iss}
		default:
			return zero, deserializationIssue(err)
		}
	}

	ring, err := geometry.NewLinearRing(points)
	if err != nil {
		return zero, domainIssues(at, err)
	}
	return ring, nil
}
