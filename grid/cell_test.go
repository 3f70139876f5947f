package grid

import (
	"fgrid/common"
	"fgrid/util"
	"github.com/paulmach/orb"
	pierregeohash "github.com/pierrre/geohash"
	"testing"
)

func TestCell_id(t *testing.T) {
	// Arrange
	cell := Cell{
		Index:  common.CellIndex{0, 0},
		Bounds: orb.Bound{Min: orb.Point{9.0, 53.0}, Max: orb.Point{9.5, 53.5}},
	}

	// Act
	id := cell.Id()

	// Assert: decoding the geohash again must yield a box containing the cell center
	util.AssertEqual(t, cellIdPrecision, len(id))

	box, err := pierregeohash.Decode(id)
	util.AssertNil(t, err)
	util.AssertTrue(t, box.Lon.Min <= 9.25 && 9.25 <= box.Lon.Max)
	util.AssertTrue(t, box.Lat.Min <= 53.25 && 53.25 <= box.Lat.Max)
}

func TestCell_idIsStable(t *testing.T) {
	// Arrange
	cell := Cell{
		Index:  common.CellIndex{1, 2},
		Bounds: orb.Bound{Min: orb.Point{9.0, 53.0}, Max: orb.Point{9.5, 53.5}},
	}

	// Act & Assert
	util.AssertEqual(t, cell.Id(), cell.Id())
}

func TestCell_idForNonGeographicCoordinates(t *testing.T) {
	// Arrange: UTM-like coordinates that cannot be geohashed
	cell := Cell{
		Index:  common.CellIndex{3, 7},
		Bounds: orb.Bound{Min: orb.Point{500000, 5000000}, Max: orb.Point{510000, 5010000}},
	}

	// Act
	id := cell.Id()

	// Assert
	util.AssertEqual(t, "x3-y7", id)
}

func TestCell_polygon(t *testing.T) {
	// Arrange
	cell := Cell{
		Index:  common.CellIndex{0, 0},
		Bounds: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{50, 50}},
	}

	// Act
	polygon := cell.Polygon()

	// Assert
	util.AssertEqual(t, 1, len(polygon))
	util.AssertEqual(t, 5, len(polygon[0]))
	util.AssertEqual(t, polygon[0][0], polygon[0][4])
	util.AssertEqual(t, cell.Bounds, polygon.Bound())
}
