package osm

import (
	"fgrid/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"os"
	"path"
	"testing"
)

func TestFeatureCollector_taggedNodeBecomesFeature(t *testing.T) {
	// Arrange
	collector := NewFeatureCollector()

	// Act
	err := collector.HandleNode(&osm.Node{ID: 1, Lon: 9.0, Lat: 53.0, Tags: osm.Tags{{Key: "amenity", Value: "bench"}}})
	util.AssertNil(t, err)
	err = collector.HandleNode(&osm.Node{ID: 2, Lon: 9.1, Lat: 53.1})
	util.AssertNil(t, err)

	// Assert: the untagged node carries no feature
	features := collector.Features()
	util.AssertEqual(t, 1, len(features))
	util.AssertEqual(t, uint64(1), features[0].ID)
	util.AssertEqual(t, orb.Point{9.0, 53.0}, features[0].Geometry)
	util.AssertEqual(t, map[string]string{"amenity": "bench"}, features[0].Tags)
}

func TestFeatureCollector_wayGeometryFromNodeLocations(t *testing.T) {
	// Arrange
	collector := NewFeatureCollector()
	util.AssertNil(t, collector.HandleNode(&osm.Node{ID: 1, Lon: 9.1, Lat: 53.1}))
	util.AssertNil(t, collector.HandleNode(&osm.Node{ID: 2, Lon: 9.2, Lat: 53.2}))

	way := &osm.Way{
		ID:    10,
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
		Tags:  osm.Tags{{Key: "highway", Value: "path"}},
	}

	// Act
	err := collector.HandleWay(way)

	// Assert
	util.AssertNil(t, err)
	features := collector.Features()
	util.AssertEqual(t, 1, len(features))
	util.AssertEqual(t, uint64(10), features[0].ID)
	util.AssertEqual(t, orb.LineString{{9.1, 53.1}, {9.2, 53.2}}, features[0].Geometry)
	util.AssertEqual(t, map[string]string{"highway": "path"}, features[0].Tags)
}

func TestFeatureCollector_closedWayBecomesPolygon(t *testing.T) {
	// Arrange
	collector := NewFeatureCollector()
	way := &osm.Way{
		ID: 20,
		Nodes: osm.WayNodes{
			{ID: 1, Lon: 5, Lat: 5},
			{ID: 2, Lon: 15, Lat: 5},
			{ID: 3, Lon: 15, Lat: 15},
			{ID: 4, Lon: 5, Lat: 15},
			{ID: 1, Lon: 5, Lat: 5},
		},
		Tags: osm.Tags{{Key: "building", Value: "yes"}},
	}

	// Act
	err := collector.HandleWay(way)

	// Assert
	util.AssertNil(t, err)
	features := collector.Features()
	util.AssertEqual(t, 1, len(features))
	expectedGeometry := orb.Polygon{{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5}}}
	util.AssertEqual(t, expectedGeometry, features[0].Geometry)
}

func TestFeatureCollector_tooShortWayIsIgnored(t *testing.T) {
	// Arrange
	collector := NewFeatureCollector()

	// Act
	err := collector.HandleWay(&osm.Way{ID: 30, Nodes: osm.WayNodes{{ID: 1, Lon: 9, Lat: 53}}})

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 0, len(collector.Features()))
}

func TestOsmReader_readXmlFile(t *testing.T) {
	// Arrange
	osmXmlData := `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="53.0" lon="9.0">
    <tag k="amenity" v="bench"/>
  </node>
  <node id="2" lat="53.1" lon="9.1"/>
  <node id="3" lat="53.2" lon="9.2"/>
  <way id="10">
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="path"/>
  </way>
</osm>`
	filename := path.Join(t.TempDir(), "test.osm")
	err := os.WriteFile(filename, []byte(osmXmlData), 0644)
	util.AssertNil(t, err)

	collector := NewFeatureCollector()

	// Act
	err = NewOsmReader().Read(filename, collector)

	// Assert
	util.AssertNil(t, err)
	features := collector.Features()
	util.AssertEqual(t, 2, len(features))

	util.AssertEqual(t, uint64(1), features[0].ID)
	util.AssertEqual(t, orb.Point{9.0, 53.0}, features[0].Geometry)
	util.AssertEqual(t, map[string]string{"amenity": "bench"}, features[0].Tags)

	util.AssertEqual(t, uint64(10), features[1].ID)
	util.AssertEqual(t, orb.LineString{{9.1, 53.1}, {9.2, 53.2}}, features[1].Geometry)
	util.AssertEqual(t, map[string]string{"highway": "path"}, features[1].Tags)
}

func TestOsmReader_rejectsUnknownFileType(t *testing.T) {
	// Act
	err := NewOsmReader().Read("some-file.txt", NewFeatureCollector())

	// Assert
	util.AssertError(t, "Input file some-file.txt must be an .osm or .pbf file", err)
}
