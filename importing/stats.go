package importing

import (
	"fgrid/common"
	"fgrid/feature"
	"fgrid/grid"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// CountPerCell determines how many features have their bound center in each grid cell. The features themselves stay
// untouched, so this is a cheap way to preview how a policy would distribute the data.
func CountPerCell(features feature.Set, gridder *grid.Gridder) map[common.CellIndex]int {
	cellToFeatureCount := map[common.CellIndex]int{}

	for _, f := range features {
		if f.Geometry == nil {
			continue
		}

		cell, ok := gridder.CellIndexForCoordinate(f.Geometry.Bound().Center())
		if !ok {
			continue
		}

		if _, hasCount := cellToFeatureCount[cell]; !hasCount {
			cellToFeatureCount[cell] = 1
		} else {
			cellToFeatureCount[cell] = cellToFeatureCount[cell] + 1
		}
	}

	return cellToFeatureCount
}

// Stats reads the given input file and counts the features per grid cell without writing any output.
func Stats(inputFile string, policy grid.Policy) (map[common.CellIndex]int, *grid.Gridder, error) {
	features, err := readInputFile(inputFile)
	if err != nil {
		return nil, nil, err
	}

	bounds, ok := features.Bound()
	if !ok {
		return nil, nil, errors.Errorf("Input file %s contains no feature with a geometry", inputFile)
	}

	gridder := grid.NewGridder(bounds, policy, nil)
	return CountPerCell(features, gridder), gridder, nil
}

// FormatCellCounts renders the cell counts as a text grid with the northern row first. Empty cells show a dot.
func FormatCellCounts(cellToFeatureCount map[common.CellIndex]int) string {
	if len(cellToFeatureCount) == 0 {
		return "no occupied cells"
	}

	var extent *common.CellExtent
	for cell := range cellToFeatureCount {
		if extent == nil {
			extent = &common.CellExtent{cell, cell}
		} else {
			newExtent := extent.Expand(cell)
			extent = &newExtent
		}
	}

	builder := strings.Builder{}
	for y := extent.UpperRightCell().Y(); y >= extent.LowerLeftCell().Y(); y-- {
		for x := extent.LowerLeftCell().X(); x <= extent.UpperRightCell().X(); x++ {
			count, hasCount := cellToFeatureCount[common.CellIndex{x, y}]
			if hasCount {
				builder.WriteString(fmt.Sprintf("%7d", count))
			} else {
				builder.WriteString("      .")
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
