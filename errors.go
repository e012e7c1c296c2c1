package egml

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Deserialization class: the markup text or its coordinate payload does
	// not match the declared shape.
	CodeMalformedMarkup = "malformed_markup"
	CodeInvalidOrdinate = "invalid_ordinate"
	CodeIncompleteTuple = "incomplete_tuple"
	CodeTruncated       = "truncated"
	// Domain-rejection class: the mapped structure violates a geometric
	// invariant owned by the geometry package.
	CodeTooFewPoints      = "too_few_points"
	CodeRingNotClosed     = "ring_not_closed"
	CodeMissingExterior   = "missing_exterior"
	CodeNonFiniteOrdinate = "non_finite_ordinate"
	CodeInvalidGeometry   = "invalid_geometry"
)

var deserializationCodes = map[string]bool{
	CodeMalformedMarkup: true,
	CodeInvalidOrdinate: true,
	CodeIncompleteTuple: true,
	CodeTruncated:       true,
}

// Issue represents a single parse failure entry.
type Issue struct {
	Path    string // element path (for example: /surfaceMember/2/Polygon/exterior)
	Code    string // one of the codes listed above
	Message string
	Cause   error // optional: underlying error
	// Params carries structured parameters (e.g., {"got": 3, "min": 4})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of parse failures that implements error. A parse
// aborts on the first failure, so usually one entry is carried, but the
// collection shape keeps call sites uniform.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. ring_not_closed at /surfaceMember/0/Polygon/exterior
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the first issue's cause to errors.Is/As chains.
func (iss Issues) Unwrap() error {
	if len(iss) == 0 {
		return nil
	}
	return iss[0].Cause
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsDeserialization reports whether err stems from markup that does not match
// the declared shape (as opposed to geometry the domain model rejected).
func IsDeserialization(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if deserializationCodes[it.Code] {
			return true
		}
	}
	return false
}

// IsDomainRejection reports whether err stems from a geometric invariant
// violation reported by the domain constructors.
func IsDomainRejection(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if !deserializationCodes[it.Code] {
			return true
		}
	}
	return false
}
