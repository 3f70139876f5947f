package common

// CellIndex is the position of a cell within a regular grid. The first entry is the column (x), the second one the
// row (y).
type CellIndex [2]int

func (c CellIndex) X() int { return c[0] }

func (c CellIndex) Y() int { return c[1] }

func (c CellIndex) isBelowOrLeftOf(other CellIndex) bool {
	return other.X() > c.X() || other.Y() > c.Y()
}

func (c CellIndex) isAboveOrRightOf(other CellIndex) bool {
	return other.X() < c.X() || other.Y() < c.Y()
}

// GetCellIndexForCoordinate returns the index of the cell containing the given coordinate for a grid with the given
// cell size. Coordinates are expected to be relative to the grid origin.
func GetCellIndexForCoordinate(x float64, y float64, cellWidth float64, cellHeight float64) CellIndex {
	return CellIndex{int(x / cellWidth), int(y / cellHeight)}
}

// CellExtent is a rectangular range of cells. The first index is the lower-left cell, the second one the upper-right
// cell. Both are inclusive.
type CellExtent [2]CellIndex

func (c CellExtent) LowerLeftCell() CellIndex { return c[0] }

func (c CellExtent) UpperRightCell() CellIndex { return c[1] }

// Expand returns a new extent that additionally covers the given cell.
func (c CellExtent) Expand(cell CellIndex) CellExtent {
	minX := min(cell.X(), c[0].X())
	minY := min(cell.Y(), c[0].Y())
	maxX := max(cell.X(), c[1].X())
	maxY := max(cell.Y(), c[1].Y())
	return CellExtent{CellIndex{minX, minY}, CellIndex{maxX, maxY}}
}

func (c CellExtent) Contains(cell CellIndex) bool {
	return !c[0].isAboveOrRightOf(cell) && !c[1].isBelowOrLeftOf(cell)
}
