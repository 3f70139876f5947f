package feature

import (
	"github.com/paulmach/orb"
)

// Feature is one unit of 2D vector data: a geometry with arbitrary string tags. The geometry may be nil, such
// features are carried along but dropped by every culling operation.
type Feature struct {
	ID       uint64
	Geometry orb.Geometry
	Tags     map[string]string
}

// Copy returns a deep copy of the feature. Changing the geometry or tags of the copy does not affect the original.
func (f *Feature) Copy() *Feature {
	copiedTags := make(map[string]string, len(f.Tags))
	for key, value := range f.Tags {
		copiedTags[key] = value
	}

	var copiedGeometry orb.Geometry
	if f.Geometry != nil {
		copiedGeometry = orb.Clone(f.Geometry)
	}

	return &Feature{
		ID:       f.ID,
		Geometry: copiedGeometry,
		Tags:     copiedTags,
	}
}

type Set []*Feature

func (s Set) Copy() Set {
	copiedSet := make(Set, len(s))
	for i, f := range s {
		copiedSet[i] = f.Copy()
	}
	return copiedSet
}

// Bound returns the union of the bounding boxes of all feature geometries. The second return value is false when no
// feature has a geometry.
func (s Set) Bound() (orb.Bound, bool) {
	var bound *orb.Bound

	for _, f := range s {
		if f.Geometry == nil {
			continue
		}

		geometryBound := f.Geometry.Bound()
		if bound == nil {
			bound = &geometryBound
		} else {
			newBound := bound.Union(geometryBound)
			bound = &newBound
		}
	}

	if bound == nil {
		return orb.Bound{}, false
	}
	return *bound, true
}
