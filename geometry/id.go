package geometry

import (
	"fmt"
	"unicode"

	"github.com/google/uuid"
)

// Id identifies a GML object. Ids are unique per processing run: they are
// either taken verbatim from a gml:id attribute, derived from a content hash
// when no usable attribute exists, or freshly generated for authoring.
type Id struct {
	value string
}

// ParseId interprets s as an explicit gml:id value. It reports ok=false when
// s is empty or not a valid XML NCName; callers are expected to fall back to
// IdFromHash in that case.
func ParseId(s string) (Id, bool) {
	if !isNCName(s) {
		return Id{}, false
	}
	return Id{value: s}, true
}

// IdFromHash derives an Id from a structural hash value. It is total: every
// input maps to a valid Id, so identity resolution cannot fail.
func IdFromHash(h uint64) Id {
	return Id{value: fmt.Sprintf("hash-%016x", h)}
}

// NewId returns a fresh random Id for authoring workflows.
func NewId() Id {
	return Id{value: "UUID_" + uuid.NewString()}
}

// String returns the identifier text as it would appear in a gml:id attribute.
func (id Id) String() string { return id.value }

// IsZero reports whether id is the uninitialized zero value.
func (id Id) IsZero() bool { return id.value == "" }

// isNCName checks the XML NCName production: a name with no colon, starting
// with a letter or underscore.
func isNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		switch {
		case r == '_' || r == '-' || r == '.' || r == 0xB7:
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
