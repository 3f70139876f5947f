package grid

import (
	"fgrid/common"
	"fmt"
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
)

const cellIdPrecision = 12

// Cell is one rectangle of the grid of a Gridder.
type Cell struct {
	Index  common.CellIndex
	Bounds orb.Bound
}

// Id returns a stable identifier for the cell. For lon/lat input data this is the geohash of the center of the cell
// bounds. Coordinates of other planar coordinate systems cannot be geohashed, such cells get a plain index label.
func (c Cell) Id() string {
	center := c.Bounds.Center()
	if center.Lon() < -180 || center.Lon() > 180 || center.Lat() < -90 || center.Lat() > 90 {
		return fmt.Sprintf("x%d-y%d", c.Index.X(), c.Index.Y())
	}
	return geohash.EncodeWithPrecision(center.Lat(), center.Lon(), cellIdPrecision)
}

func (c Cell) Polygon() orb.Polygon {
	return c.Bounds.ToPolygon()
}
