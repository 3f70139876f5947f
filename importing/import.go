package importing

import (
	"fgrid/feature"
	"fgrid/grid"
	ownIo "fgrid/io"
	ownOsm "fgrid/osm"
	"fgrid/overlay"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"os"
	"path"
	"strings"
	"time"
)

// ImportFile reads all features from the given input file, distributes them over a grid and writes one GeoJSON file
// per non-empty grid cell into the output folder. The grid extent is the bounding box of all input geometries.
func ImportFile(inputFile string, outputFolder string, policy grid.Policy, engine overlay.Engine) error {
	features, err := readInputFile(inputFile)
	if err != nil {
		return err
	}
	if len(features) == 0 {
		return errors.Errorf("Input file %s contains no features", inputFile)
	}

	bounds, ok := features.Bound()
	if !ok {
		return errors.Errorf("Input file %s contains no feature with a geometry", inputFile)
	}

	err = os.MkdirAll(outputFolder, os.ModePerm)
	if err != nil {
		return errors.Wrapf(err, "Unable to create output folder %s", outputFolder)
	}

	sigolo.Infof("Start gridding %d features from %s", len(features), inputFile)
	importStartTime := time.Now()

	gridder := grid.NewGridder(bounds, policy, engine)
	sigolo.Infof("Grid covers %v using %d cells", gridder.Bounds(), gridder.NumCells())

	writtenCells := 0
	for i := 0; i < gridder.NumCells(); i++ {
		result, err := gridder.CullToCell(i, features.Copy())
		if err != nil {
			return errors.Wrapf(err, "Unable to cull features to cell %d", i)
		}

		if result.OutCount == 0 {
			continue
		}

		outputFile := path.Join(outputFolder, result.Cell.Id()+".geojson")
		err = ownIo.WriteFeaturesAsGeoJsonFile(result.Features, outputFile)
		if err != nil {
			return errors.Wrapf(err, "Unable to write cell %d to %s", i, outputFile)
		}
		writtenCells++
	}

	importDuration := time.Since(importStartTime)
	sigolo.Infof("Wrote %d of %d cells to %s in %s", writtenCells, gridder.NumCells(), outputFolder, importDuration)

	return nil
}

func readInputFile(inputFile string) (feature.Set, error) {
	if strings.HasSuffix(inputFile, ".geojson") || strings.HasSuffix(inputFile, ".json") {
		return ownIo.ReadFeaturesFromGeoJsonFile(inputFile)
	}

	if strings.HasSuffix(inputFile, ".osm") || strings.HasSuffix(inputFile, ".pbf") {
		collector := ownOsm.NewFeatureCollector()
		err := ownOsm.NewOsmReader().Read(inputFile, collector)
		if err != nil {
			return nil, err
		}
		return collector.Features(), nil
	}

	return nil, errors.Errorf("Input file %s must be a .geojson, .json, .osm or .pbf file", inputFile)
}
