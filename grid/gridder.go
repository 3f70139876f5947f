package grid

import (
	"fgrid/common"
	"fgrid/feature"
	"fgrid/overlay"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"math"
)

// Gridder derives a regular rectangular grid from an input extent and assigns features to the grid cells. Cells are
// addressed by their row-major index: cell 0 is the lower-left one, the x-direction varies fastest. A Gridder is
// immutable after construction and safe for concurrent use, only CullToCell modifies caller data (the feature set
// passed to it).
type Gridder struct {
	bounds orb.Bound
	policy Policy
	engine overlay.Engine
	cellsX int
	cellsY int
}

// NewGridder computes the grid dimensions for the given extent and policy. Without a positive cell size the grid is a
// single cell covering the whole extent. When the policy requests the cropping technique but no overlay engine is
// given, the gridder falls back to centroid culling. Construction itself never fails.
func NewGridder(bounds orb.Bound, policy Policy, engine overlay.Engine) *Gridder {
	cellsX := 1
	cellsY := 1
	if cellSize, ok := policy.CellSize(); ok && cellSize > 0 {
		width := bounds.Max.X() - bounds.Min.X()
		height := bounds.Max.Y() - bounds.Min.Y()

		cellsX = int(math.Ceil(width / cellSize))
		cellsY = int(math.Ceil(height / cellSize))

		// Degenerate extents (zero width or height) still get one cell
		if cellsX < 1 {
			cellsX = 1
		}
		if cellsY < 1 {
			cellsY = 1
		}
	}

	if policy.CullingTechnique() == CullByCropping && engine == nil {
		sigolo.Warnf("Culling technique '%s' requires an overlay engine but none is available. Falling back to '%s'.", cullingTechniqueCrop, cullingTechniqueCentroid)
		policy.SetCullingTechnique(CullByCentroid)
	}

	return &Gridder{
		bounds: bounds,
		policy: policy,
		engine: engine,
		cellsX: cellsX,
		cellsY: cellsY,
	}
}

func (g *Gridder) Bounds() orb.Bound {
	return g.bounds
}

// Policy returns the effective policy of this gridder, including a possible fallback of the culling technique.
func (g *Gridder) Policy() Policy {
	return g.policy
}

func (g *Gridder) NumCells() int {
	return g.cellsX * g.cellsY
}

// CellBounds returns the rectangle of the cell with the given row-major index. The cells of the last column and row
// are clamped to the input extent, they may therefore be smaller than the configured cell size.
func (g *Gridder) CellBounds(index int) (orb.Bound, error) {
	if index < 0 || index >= g.NumCells() {
		return orb.Bound{}, errors.Errorf("Cell index %d is out of range [0, %d)", index, g.NumCells())
	}

	cellSize, ok := g.policy.CellSize()
	if !ok || cellSize <= 0 {
		// Single-cell grid, the cell is the input extent itself
		return g.bounds, nil
	}

	x := index % g.cellsX
	y := index / g.cellsX

	return orb.Bound{
		Min: orb.Point{
			g.bounds.Min.X() + cellSize*float64(x),
			g.bounds.Min.Y() + cellSize*float64(y),
		},
		Max: orb.Point{
			math.Min(g.bounds.Min.X()+cellSize*float64(x+1), g.bounds.Max.X()),
			math.Min(g.bounds.Min.Y()+cellSize*float64(y+1), g.bounds.Max.Y()),
		},
	}, nil
}

func (g *Gridder) Cell(index int) (Cell, error) {
	bounds, err := g.CellBounds(index)
	if err != nil {
		return Cell{}, err
	}

	return Cell{
		Index:  common.CellIndex{index % g.cellsX, index / g.cellsX},
		Bounds: bounds,
	}, nil
}

// CellIndexForCoordinate returns the index of the cell owning the given point. Cells own their min edges, max edges
// belong to the neighboring cell, except on the outer border of the grid where the max edges belong to the last cell.
// The second return value is false for points outside the grid extent.
func (g *Gridder) CellIndexForCoordinate(point orb.Point) (common.CellIndex, bool) {
	if point.X() < g.bounds.Min.X() || point.X() > g.bounds.Max.X() ||
		point.Y() < g.bounds.Min.Y() || point.Y() > g.bounds.Max.Y() {
		return common.CellIndex{}, false
	}

	cellSize, ok := g.policy.CellSize()
	if !ok || cellSize <= 0 {
		return common.CellIndex{0, 0}, true
	}

	cell := common.GetCellIndexForCoordinate(point.X()-g.bounds.Min.X(), point.Y()-g.bounds.Min.Y(), cellSize, cellSize)

	// Points on the outer max border stay within the grid
	if cell.X() >= g.cellsX {
		cell = common.CellIndex{g.cellsX - 1, cell.Y()}
	}
	if cell.Y() >= g.cellsY {
		cell = common.CellIndex{cell.X(), g.cellsY - 1}
	}

	return cell, true
}

// CellResult describes the outcome of culling a feature set to one cell.
type CellResult struct {
	Cell     Cell
	Features feature.Set
	InCount  int
	OutCount int
}

// CullToCell filters the given features down to the ones belonging to the cell with the given index. The passed set
// is reused destructively, pass a working copy when the original must stay intact. With CullByCropping the surviving
// features carry their clipped geometries afterwards. Features without a geometry never survive.
func (g *Gridder) CullToCell(index int, features feature.Set) (*CellResult, error) {
	cell, err := g.Cell(index)
	if err != nil {
		return nil, err
	}

	inCount := len(features)

	var surviving feature.Set
	switch g.policy.CullingTechnique() {
	case CullByCropping:
		surviving = g.cullByCropping(cell, features)
	default:
		surviving = g.cullByCentroid(cell, features)
	}

	sigolo.Infof("Grid cell %d: bounds=%v; in=%d; out=%d", index, cell.Bounds, inCount, len(surviving))

	return &CellResult{
		Cell:     cell,
		Features: surviving,
		InCount:  inCount,
		OutCount: len(surviving),
	}, nil
}

func (g *Gridder) cullByCentroid(cell Cell, features feature.Set) feature.Set {
	surviving := features[:0]

	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		if g.ownsPoint(cell, f.Geometry.Bound().Center()) {
			surviving = append(surviving, f)
		}
	}

	return surviving
}

func (g *Gridder) cullByCropping(cell Cell, features feature.Set) feature.Set {
	surviving := features[:0]

	for _, f := range features {
		if f.Geometry == nil {
			continue
		}

		clippedGeometry, err := g.engine.Clip(f.Geometry, cell.Bounds)
		if err != nil {
			sigolo.Warnf("Unable to clip feature %d to cell %v, skipping it: %s", f.ID, cell.Index, err.Error())
			continue
		}
		if clippedGeometry == nil || !overlay.Valid(clippedGeometry) {
			continue
		}

		f.Geometry = clippedGeometry
		surviving = append(surviving, f)
	}

	return surviving
}

// ownsPoint applies the cell ownership rule described on CellIndexForCoordinate.
func (g *Gridder) ownsPoint(cell Cell, point orb.Point) bool {
	if point.X() < cell.Bounds.Min.X() || point.Y() < cell.Bounds.Min.Y() ||
		point.X() > cell.Bounds.Max.X() || point.Y() > cell.Bounds.Max.Y() {
		return false
	}
	if point.X() == cell.Bounds.Max.X() && cell.Index.X() < g.cellsX-1 {
		return false
	}
	if point.Y() == cell.Bounds.Max.Y() && cell.Index.Y() < g.cellsY-1 {
		return false
	}
	return true
}
