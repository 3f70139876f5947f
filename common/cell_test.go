package common

import (
	"fgrid/util"
	"testing"
)

func TestCellIndex_isBelowOrLeftOf(t *testing.T) {
	cell := CellIndex{10, 10}
	/*
		[ 9,11]   [10,11]   [11,11]

		[ 9,10]   [10,10]   [11,10]

		[ 9, 9]   [10, 9]   [11, 9]
	*/

	// First column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{9, 11}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{9, 10}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{9, 9}))

	// Second column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{10, 11}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{10, 10}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{10, 9}))

	// Third column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 11}))
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 10}))
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 9}))
}

func TestCellIndex_isAboveOrRightOf(t *testing.T) {
	cell := CellIndex{10, 10}
	/*
		[ 9,11]   [10,11]   [11,11]

		[ 9,10]   [10,10]   [11,10]

		[ 9, 9]   [10, 9]   [11, 9]
	*/

	// First column
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 11}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 9}))

	// Second column
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{10, 11}))
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{10, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{10, 9}))

	// Third column
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{11, 11}))
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{11, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{11, 9}))
}

func TestGetCellIndexForCoordinate(t *testing.T) {
	util.AssertEqual(t, CellIndex{0, 0}, GetCellIndexForCoordinate(0, 0, 10, 10))
	util.AssertEqual(t, CellIndex{0, 0}, GetCellIndexForCoordinate(9.999, 9.999, 10, 10))
	util.AssertEqual(t, CellIndex{1, 0}, GetCellIndexForCoordinate(10, 0, 10, 10))
	util.AssertEqual(t, CellIndex{0, 1}, GetCellIndexForCoordinate(0, 10, 10, 10))
	util.AssertEqual(t, CellIndex{2, 4}, GetCellIndexForCoordinate(25, 45, 10, 10))
	util.AssertEqual(t, CellIndex{5, 2}, GetCellIndexForCoordinate(2.75, 1.25, 0.5, 0.5))
}

func TestCellExtent_expand(t *testing.T) {
	extent := CellExtent{CellIndex{10, 10}, CellIndex{20, 20}}

	util.AssertEqual(t, extent, extent.Expand(CellIndex{10, 10}))
	util.AssertEqual(t, extent, extent.Expand(CellIndex{15, 15}))
	util.AssertEqual(t, extent, extent.Expand(CellIndex{20, 20}))

	util.AssertEqual(t, CellExtent{CellIndex{9, 9}, CellIndex{20, 20}}, extent.Expand(CellIndex{9, 9}))
	util.AssertEqual(t, CellExtent{CellIndex{10, 10}, CellIndex{21, 21}}, extent.Expand(CellIndex{21, 21}))
	util.AssertEqual(t, CellExtent{CellIndex{9, 10}, CellIndex{20, 21}}, extent.Expand(CellIndex{9, 21}))
	util.AssertEqual(t, CellExtent{CellIndex{10, 9}, CellIndex{21, 20}}, extent.Expand(CellIndex{21, 9}))
}

func TestCellExtent_contains(t *testing.T) {
	extent := CellExtent{
		CellIndex{10, 10},
		CellIndex{20, 20},
	}

	// Lower-left corner
	util.AssertFalse(t, extent.Contains(CellIndex{9, 11}))
	util.AssertFalse(t, extent.Contains(CellIndex{9, 10}))
	util.AssertFalse(t, extent.Contains(CellIndex{9, 9}))
	util.AssertTrue(t, extent.Contains(CellIndex{10, 11}))
	util.AssertTrue(t, extent.Contains(CellIndex{10, 10}))
	util.AssertFalse(t, extent.Contains(CellIndex{10, 9}))

	// Upper-right corner
	util.AssertTrue(t, extent.Contains(CellIndex{20, 19}))
	util.AssertTrue(t, extent.Contains(CellIndex{20, 20}))
	util.AssertFalse(t, extent.Contains(CellIndex{20, 21}))
	util.AssertFalse(t, extent.Contains(CellIndex{21, 20}))
	util.AssertFalse(t, extent.Contains(CellIndex{21, 21}))
}
