package overlay

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Engine computes the intersection of geometries with rectangular cells. Implementations must treat every call
// independently, i.e. a failure for one geometry must not affect later calls.
type Engine interface {
	// Clip returns the part of the given geometry that lies within the given cell. A nil result without an error
	// means the geometry does not overlap the cell at all. The given geometry is not modified.
	Clip(geometry orb.Geometry, cell orb.Bound) (orb.Geometry, error)
}

// GeomEngine implements Engine using the polygon overlay operations of the geom library.
type GeomEngine struct{}

func NewGeomEngine() *GeomEngine {
	return &GeomEngine{}
}

func (e *GeomEngine) Clip(geometry orb.Geometry, cell orb.Bound) (result orb.Geometry, err error) {
	if geometry == nil {
		return nil, nil
	}

	// The overlay code escalates degenerate input by panicking. One broken geometry must not take down a whole grid
	// cell, so panics turn into errors here.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Errorf("Overlay operation failed for %s geometry: %v", geometry.GeoJSONType(), r)
		}
	}()

	if collection, ok := geometry.(orb.Collection); ok {
		var clippedMembers orb.Collection
		for _, member := range collection {
			clippedMember, memberErr := e.Clip(member, cell)
			if memberErr != nil {
				return nil, memberErr
			}
			if clippedMember != nil {
				clippedMembers = append(clippedMembers, clippedMember)
			}
		}
		if len(clippedMembers) == 0 {
			return nil, nil
		}
		return clippedMembers, nil
	}

	subject, err := toGeom(geometry)
	if err != nil {
		return nil, err
	}

	cellPolygon := cellToGeom(cell)

	switch subject := subject.(type) {
	case geom.Point:
		if subject.Within(cellPolygon) == geom.Outside {
			return nil, nil
		}
		return geometry, nil
	case geom.MultiPoint:
		var containedPoints orb.MultiPoint
		for _, point := range subject {
			if point.Within(cellPolygon) != geom.Outside {
				containedPoints = append(containedPoints, orb.Point{point.X, point.Y})
			}
		}
		if len(containedPoints) == 0 {
			return nil, nil
		}
		return containedPoints, nil
	case geom.Polygonal:
		intersection := subject.Intersection(cellPolygon)
		if intersection == nil {
			return nil, nil
		}
		return fromGeom(intersection)
	case geom.Linear:
		intersection, constructErr := op.Construct(subject, cellPolygon, op.INTERSECTION)
		if constructErr != nil {
			return nil, errors.Wrapf(constructErr, "Unable to clip %s geometry", geometry.GeoJSONType())
		}
		if intersection == nil {
			return nil, nil
		}
		return fromGeom(intersection)
	}

	return nil, errors.Errorf("Unsupported geometry type %s", geometry.GeoJSONType())
}

// cellToGeom builds the closed four-vertex polygon of the given cell rectangle.
func cellToGeom(cell orb.Bound) geom.Polygon {
	return geom.Polygon{{
		geom.Point{X: cell.Min.X(), Y: cell.Min.Y()},
		geom.Point{X: cell.Max.X(), Y: cell.Min.Y()},
		geom.Point{X: cell.Max.X(), Y: cell.Max.Y()},
		geom.Point{X: cell.Min.X(), Y: cell.Max.Y()},
		geom.Point{X: cell.Min.X(), Y: cell.Min.Y()},
	}}
}

// Valid reports whether the given geometry is structurally usable, i.e. non-empty and with enough points for its
// type. Culling drops clip results that fail this check.
func Valid(geometry orb.Geometry) bool {
	switch g := geometry.(type) {
	case nil:
		return false
	case orb.Point:
		return true
	case orb.MultiPoint:
		return len(g) > 0
	case orb.LineString:
		return len(g) >= 2
	case orb.MultiLineString:
		if len(g) == 0 {
			return false
		}
		for _, lineString := range g {
			if len(lineString) < 2 {
				return false
			}
		}
		return true
	case orb.Ring:
		return len(g) >= 4
	case orb.Polygon:
		if len(g) == 0 {
			return false
		}
		for _, ring := range g {
			if len(ring) < 4 {
				return false
			}
		}
		return true
	case orb.MultiPolygon:
		if len(g) == 0 {
			return false
		}
		for _, polygon := range g {
			if !Valid(polygon) {
				return false
			}
		}
		return true
	case orb.Collection:
		if len(g) == 0 {
			return false
		}
		for _, member := range g {
			if !Valid(member) {
				return false
			}
		}
		return true
	case orb.Bound:
		return true
	}
	return false
}
