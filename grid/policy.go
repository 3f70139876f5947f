package grid

import (
	"fgrid/config"
	"fmt"
)

// CullingTechnique selects how features are assigned to grid cells.
type CullingTechnique int

const (
	// CullByCentroid keeps a feature in a cell when the center of its bounding box lies within the cell. This
	// technique is always available and never changes geometries.
	CullByCentroid CullingTechnique = iota
	// CullByCropping clips each feature geometry to the cell rectangle and keeps the non-empty results. Requires an
	// overlay engine.
	CullByCropping
)

var (
	cellSizeKey         = "cell_size"
	cullingTechniqueKey = "culling_technique"
	spatializeGroupsKey = "spatialize_groups"
	clusterCullingKey   = "cluster_culling"

	cullingTechniqueCentroid = "centroid"
	cullingTechniqueCrop     = "crop"
)

func (t CullingTechnique) String() string {
	switch t {
	case CullByCentroid:
		return cullingTechniqueCentroid
	case CullByCropping:
		return cullingTechniqueCrop
	}
	return fmt.Sprintf("!! INVALID CULLING TECHNIQUE %d !!", t)
}

// Policy describes how gridding should behave. All fields are optional and the zero value is the default policy.
// Explicitly set fields are tracked separately from their values, so that serialization only emits what was actually
// chosen.
type Policy struct {
	cellSize            float64
	cellSizeSet         bool
	technique           CullingTechnique
	techniqueSet        bool
	spatializeGroups    bool
	spatializeGroupsSet bool
	clusterCulling      bool
	clusterCullingSet   bool
}

// CellSize returns the configured cell size in the units of the input extent. The second return value is false when
// no size was set, the grid then consists of one single cell.
func (p Policy) CellSize() (float64, bool) {
	return p.cellSize, p.cellSizeSet
}

func (p *Policy) SetCellSize(cellSize float64) {
	p.cellSize = cellSize
	p.cellSizeSet = true
}

func (p Policy) CullingTechnique() CullingTechnique {
	if !p.techniqueSet {
		return CullByCentroid
	}
	return p.technique
}

func (p *Policy) SetCullingTechnique(technique CullingTechnique) {
	p.technique = technique
	p.techniqueSet = true
}

// SpatializeGroups tells downstream consumers whether per-cell output should be organized spatially. Gridding itself
// ignores this value, it is only carried along. Defaults to true.
func (p Policy) SpatializeGroups() bool {
	if !p.spatializeGroupsSet {
		return true
	}
	return p.spatializeGroups
}

func (p *Policy) SetSpatializeGroups(spatializeGroups bool) {
	p.spatializeGroups = spatializeGroups
	p.spatializeGroupsSet = true
}

// ClusterCulling tells downstream consumers whether cluster culling should be applied to per-cell output. Gridding
// itself ignores this value, it is only carried along. Defaults to false.
func (p Policy) ClusterCulling() bool {
	if !p.clusterCullingSet {
		return false
	}
	return p.clusterCulling
}

func (p *Policy) SetClusterCulling(clusterCulling bool) {
	p.clusterCulling = clusterCulling
	p.clusterCullingSet = true
}

// PolicyFromConfig reads the recognized keys from the given config. Missing keys leave the corresponding field unset,
// malformed or unrecognized values are ignored.
func PolicyFromConfig(conf *config.Config) Policy {
	policy := Policy{}

	if cellSize, err := conf.Float64E(cellSizeKey); err == nil {
		policy.SetCellSize(cellSize)
	}

	switch conf.Get(cullingTechniqueKey, "") {
	case cullingTechniqueCentroid:
		policy.SetCullingTechnique(CullByCentroid)
	case cullingTechniqueCrop:
		policy.SetCullingTechnique(CullByCropping)
	}

	if spatializeGroups, err := conf.BoolE(spatializeGroupsKey); err == nil {
		policy.SetSpatializeGroups(spatializeGroups)
	}

	if clusterCulling, err := conf.BoolE(clusterCullingKey); err == nil {
		policy.SetClusterCulling(clusterCulling)
	}

	return policy
}

// ToConfig serializes the policy. Only explicitly set fields are emitted, so a round trip through PolicyFromConfig
// and back reproduces exactly the recognized entries of the original config.
func (p Policy) ToConfig() *config.Config {
	conf := config.New()

	if p.cellSizeSet {
		conf.Set(cellSizeKey, p.cellSize)
	}
	if p.techniqueSet {
		conf.Set(cullingTechniqueKey, p.technique.String())
	}
	if p.spatializeGroupsSet {
		conf.Set(spatializeGroupsKey, p.spatializeGroups)
	}
	if p.clusterCullingSet {
		conf.Set(clusterCullingKey, p.clusterCulling)
	}

	return conf
}
