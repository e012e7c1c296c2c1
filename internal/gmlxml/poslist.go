package gmlxml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/envis-space/egml/geometry"
)

// ordinatesPerPosition pins the dimensionality this library handles.
const ordinatesPerPosition = 3

// ErrIncompleteTuple reports a posList whose ordinate count is not a multiple
// of three.
var ErrIncompleteTuple = errors.New("gmlxml: ordinate count is not a multiple of 3")

// OrdinateError reports a posList token that does not parse as a number.
type OrdinateError struct {
	Index int    // token position within the posList
	Token string // the offending token
	Err   error
}

func (e *OrdinateError) Error() string {
	return fmt.Sprintf("gmlxml: ordinate %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *OrdinateError) Unwrap() error { return e.Err }

// ParsePosList splits whitespace-separated ordinate text into positions,
// three ordinates per position. No geometric validation happens here: values
// such as NaN parse successfully and are left for the domain constructors to
// reject, and duplicate consecutive positions pass through untouched.
func ParsePosList(text string) ([]geometry.DirectPosition, error) {
	fields := strings.Fields(text)
	if len(fields)%ordinatesPerPosition != 0 {
		return nil, fmt.Errorf("%d ordinates: %w", len(fields), ErrIncompleteTuple)
	}
	positions := make([]geometry.DirectPosition, 0, len(fields)/ordinatesPerPosition)
	for i := 0; i < len(fields); i += ordinatesPerPosition {
		var ordinates [ordinatesPerPosition]float64
		for j := range ordinates {
			v, err := strconv.ParseFloat(fields[i+j], 64)
			if err != nil {
				return nil, &OrdinateError{Index: i + j, Token: fields[i+j], Err: err}
			}
			ordinates[j] = v
		}
		positions = append(positions, geometry.DirectPosition{
			X: ordinates[0],
			Y: ordinates[1],
			Z: ordinates[2],
		})
	}
	return positions, nil
}

// FormatPosList renders positions back into posList text. The shortest
// decimal representation that round-trips each ordinate is used.
func FormatPosList(positions []geometry.DirectPosition) string {
	b := &strings.Builder{}
	for i, p := range positions {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Z, 'f', -1, 64))
	}
	return b.String()
}
