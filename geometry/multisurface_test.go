package geometry_test

import (
	"errors"
	"testing"

	"github.com/envis-space/egml/geometry"
)

func TestNewPolygon_RequiresExterior(t *testing.T) {
	_, err := geometry.NewPolygon(geometry.NewId(), geometry.LinearRing{}, nil)
	if !errors.Is(err, geometry.ErrMissingExterior) {
		t.Fatalf("expected ErrMissingExterior, got %v", err)
	}
}

func TestNewMultiSurface_EmptyMembersAllowed(t *testing.T) {
	ms, err := geometry.NewMultiSurface(geometry.NewId(), nil)
	if err != nil {
		t.Fatalf("empty multi surface must construct, got %v", err)
	}
	if ms.Len() != 0 {
		t.Fatalf("expected 0 members, got %d", ms.Len())
	}
}

func TestNewMultiSurface_PreservesOrder(t *testing.T) {
	ext, err := geometry.NewLinearRing(square(t))
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	var members []geometry.Polygon
	ids := []geometry.Id{geometry.NewId(), geometry.NewId(), geometry.NewId()}
	for _, id := range ids {
		p, err := geometry.NewPolygon(id, ext, nil)
		if err != nil {
			t.Fatalf("polygon: %v", err)
		}
		members = append(members, p)
	}
	ms, err := geometry.NewMultiSurface(geometry.NewId(), members)
	if err != nil {
		t.Fatalf("multi surface: %v", err)
	}
	for i, p := range ms.SurfaceMembers() {
		if p.Id() != ids[i] {
			t.Fatalf("member %d out of order: got %v want %v", i, p.Id(), ids[i])
		}
	}
}
