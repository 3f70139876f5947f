package feature

import (
	"fgrid/util"
	"github.com/paulmach/orb"
	"testing"
)

func TestFeature_copy(t *testing.T) {
	// Arrange
	original := &Feature{
		ID:       123,
		Geometry: orb.LineString{{0, 0}, {10, 5}},
		Tags:     map[string]string{"highway": "path"},
	}

	// Act
	copied := original.Copy()
	copied.Geometry.(orb.LineString)[0] = orb.Point{99, 99}
	copied.Tags["highway"] = "primary"

	// Assert
	util.AssertEqual(t, uint64(123), copied.ID)
	util.AssertEqual(t, orb.Point{0, 0}, original.Geometry.(orb.LineString)[0])
	util.AssertEqual(t, "path", original.Tags["highway"])
}

func TestFeature_copyWithoutGeometry(t *testing.T) {
	// Arrange
	original := &Feature{
		ID:   1,
		Tags: map[string]string{},
	}

	// Act
	copied := original.Copy()

	// Assert
	util.AssertNil(t, copied.Geometry)
}

func TestSet_bound(t *testing.T) {
	// Arrange
	features := Set{
		{ID: 1, Geometry: orb.Point{10, 10}},
		{ID: 2, Geometry: orb.LineString{{20, 5}, {30, 15}}},
		{ID: 3, Geometry: nil},
	}

	// Act
	bound, ok := features.Bound()

	// Assert
	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Bound{Min: orb.Point{10, 5}, Max: orb.Point{30, 15}}, bound)
}

func TestSet_boundWithoutGeometries(t *testing.T) {
	// Arrange
	features := Set{
		{ID: 1, Geometry: nil},
	}

	// Act
	_, ok := features.Bound()

	// Assert
	util.AssertFalse(t, ok)
}
