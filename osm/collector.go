package osm

import (
	"fgrid/feature"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// FeatureCollector turns OSM objects into plain features. Node locations are remembered so that way geometries can be
// resolved even when the input data carries no locations on the way nodes themselves.
type FeatureCollector struct {
	nodeLocations map[osm.NodeID]orb.Point
	features      feature.Set
}

func NewFeatureCollector() *FeatureCollector {
	return &FeatureCollector{
		nodeLocations: map[osm.NodeID]orb.Point{},
	}
}

func (c *FeatureCollector) Name() string {
	return "FeatureCollector"
}

func (c *FeatureCollector) Init() error {
	return nil
}

func (c *FeatureCollector) HandleNode(node *osm.Node) error {
	c.nodeLocations[node.ID] = orb.Point{node.Lon, node.Lat}

	// Untagged nodes only carry geometry for ways and are no features of their own
	if len(node.Tags) == 0 {
		return nil
	}

	c.features = append(c.features, &feature.Feature{
		ID:       uint64(node.ID),
		Geometry: node.Point(),
		Tags:     tagsToMap(node.Tags),
	})

	return nil
}

func (c *FeatureCollector) HandleWay(way *osm.Way) error {
	for i, wayNode := range way.Nodes {
		if location, ok := c.nodeLocations[wayNode.ID]; ok {
			wayNode.Lon = location.Lon()
			wayNode.Lat = location.Lat()
			way.Nodes[i] = wayNode
		}
	}

	lineString := way.LineString()
	if len(lineString) < 2 {
		return nil
	}

	var geometry orb.Geometry = lineString
	if len(lineString) >= 4 && lineString[0] == lineString[len(lineString)-1] {
		geometry = orb.Polygon{orb.Ring(lineString)}
	}

	c.features = append(c.features, &feature.Feature{
		ID:       uint64(way.ID),
		Geometry: geometry,
		Tags:     tagsToMap(way.Tags),
	})

	return nil
}

func (c *FeatureCollector) HandleRelation(relation *osm.Relation) error {
	// TODO Resolve multipolygon relations into polygon features
	return nil
}

func (c *FeatureCollector) Done() error {
	return nil
}

func (c *FeatureCollector) Features() feature.Set {
	return c.features
}

func tagsToMap(tags osm.Tags) map[string]string {
	tagMap := make(map[string]string, len(tags))
	for _, tag := range tags {
		tagMap[tag.Key] = tag.Value
	}
	return tagMap
}
