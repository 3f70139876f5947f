package overlay

import (
	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// toGeom converts the given geometry into its counterpart of the geom library. Collections are handled by the engine
// itself and are therefore not supported here.
func toGeom(geometry orb.Geometry) (geom.Geom, error) {
	switch g := geometry.(type) {
	case orb.Point:
		return geom.Point{X: g.X(), Y: g.Y()}, nil
	case orb.MultiPoint:
		points := make(geom.MultiPoint, 0, len(g))
		for _, point := range g {
			points = append(points, geom.Point{X: point.X(), Y: point.Y()})
		}
		return points, nil
	case orb.LineString:
		return lineStringToGeom(g), nil
	case orb.MultiLineString:
		lineStrings := make(geom.MultiLineString, 0, len(g))
		for _, lineString := range g {
			lineStrings = append(lineStrings, lineStringToGeom(lineString))
		}
		return lineStrings, nil
	case orb.Ring:
		return geom.Polygon{ringToGeom(g)}, nil
	case orb.Polygon:
		return polygonToGeom(g), nil
	case orb.MultiPolygon:
		polygons := make(geom.MultiPolygon, 0, len(g))
		for _, polygon := range g {
			polygons = append(polygons, polygonToGeom(polygon))
		}
		return polygons, nil
	case orb.Bound:
		return polygonToGeom(orb.Polygon{g.ToRing()}), nil
	}

	return nil, errors.Errorf("Unsupported geometry type %s", geometry.GeoJSONType())
}

func lineStringToGeom(lineString orb.LineString) geom.LineString {
	points := make(geom.LineString, 0, len(lineString))
	for _, point := range lineString {
		points = append(points, geom.Point{X: point.X(), Y: point.Y()})
	}
	return points
}

func ringToGeom(ring orb.Ring) geom.Path {
	points := make(geom.Path, 0, len(ring))
	for _, point := range ring {
		points = append(points, geom.Point{X: point.X(), Y: point.Y()})
	}
	return points
}

func polygonToGeom(polygon orb.Polygon) geom.Polygon {
	paths := make(geom.Polygon, 0, len(polygon))
	for _, ring := range polygon {
		paths = append(paths, ringToGeom(ring))
	}
	return paths
}

// fromGeom converts a result of an overlay operation back. Empty geometries become nil, the culling code treats them
// as "no overlap".
func fromGeom(geometry geom.Geom) (orb.Geometry, error) {
	if geometry == nil {
		return nil, nil
	}

	switch g := geometry.(type) {
	case geom.Point:
		return orb.Point{g.X, g.Y}, nil
	case geom.MultiPoint:
		if len(g) == 0 {
			return nil, nil
		}
		points := make(orb.MultiPoint, 0, len(g))
		for _, point := range g {
			points = append(points, orb.Point{point.X, point.Y})
		}
		return points, nil
	case geom.LineString:
		if len(g) < 2 {
			return nil, nil
		}
		return lineStringFromGeom(g), nil
	case geom.MultiLineString:
		lineStrings := make(orb.MultiLineString, 0, len(g))
		for _, lineString := range g {
			if len(lineString) < 2 {
				continue
			}
			lineStrings = append(lineStrings, lineStringFromGeom(lineString))
		}
		if len(lineStrings) == 0 {
			return nil, nil
		}
		return lineStrings, nil
	case geom.Polygon:
		polygon := polygonFromGeom(g)
		if len(polygon) == 0 {
			return nil, nil
		}
		return polygon, nil
	case geom.MultiPolygon:
		polygons := make(orb.MultiPolygon, 0, len(g))
		for _, geomPolygon := range g {
			polygon := polygonFromGeom(geomPolygon)
			if len(polygon) == 0 {
				continue
			}
			polygons = append(polygons, polygon)
		}
		if len(polygons) == 0 {
			return nil, nil
		}
		return polygons, nil
	case geom.GeometryCollection:
		var geometries orb.Collection
		for _, member := range g {
			converted, err := fromGeom(member)
			if err != nil {
				return nil, err
			}
			if converted != nil {
				geometries = append(geometries, converted)
			}
		}
		if len(geometries) == 0 {
			return nil, nil
		}
		return geometries, nil
	}

	return nil, errors.Errorf("Unsupported result geometry type %T", geometry)
}

func lineStringFromGeom(lineString geom.LineString) orb.LineString {
	points := make(orb.LineString, 0, len(lineString))
	for _, point := range lineString {
		points = append(points, orb.Point{point.X, point.Y})
	}
	return points
}

func polygonFromGeom(polygon geom.Polygon) orb.Polygon {
	rings := make(orb.Polygon, 0, len(polygon))
	for _, path := range polygon {
		if len(path) < 3 {
			continue
		}
		ring := make(orb.Ring, 0, len(path)+1)
		for _, point := range path {
			ring = append(ring, orb.Point{point.X, point.Y})
		}
		// Overlay results do not repeat the first vertex, rings are expected to be closed though.
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	return rings
}
