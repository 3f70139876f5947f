package io

import (
	"fgrid/feature"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"io"
	"os"
	"time"
)

func ReadFeaturesFromGeoJsonFile(filename string) (feature.Set, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read GeoJSON file %s", filename)
	}

	return ReadFeaturesFromGeoJson(data)
}

func ReadFeaturesFromGeoJson(data []byte) (feature.Set, error) {
	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to unmarshal GeoJSON feature collection")
	}

	features := make(feature.Set, 0, len(featureCollection.Features))
	for i, geojsonFeature := range featureCollection.Features {
		tags := map[string]string{}
		for key, rawValue := range geojsonFeature.Properties {
			value, err := cast.ToStringE(rawValue)
			if err != nil {
				// Non-scalar properties have no tag representation
				continue
			}
			tags[key] = value
		}

		// Features without an "id" member get their position as ID
		id := uint64(i)
		if geojsonFeature.ID != nil {
			if parsedId, err := cast.ToInt64E(geojsonFeature.ID); err == nil && parsedId >= 0 {
				id = uint64(parsedId)
			}
		}

		features = append(features, &feature.Feature{
			ID:       id,
			Geometry: geojsonFeature.Geometry,
			Tags:     tags,
		})
	}

	sigolo.Debugf("Read %d features from GeoJSON", len(features))

	return features, nil
}

func WriteFeaturesAsGeoJsonFile(features feature.Set, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	defer func() {
		err = file.Close()
		sigolo.FatalCheck(errors.Wrapf(err, "Unable to close file handle for GeoJSON file %s", file.Name()))
	}()

	return WriteFeaturesAsGeoJson(features, file)
}

func WriteFeaturesAsGeoJson(features feature.Set, writer io.Writer) error {
	sigolo.Debugf("Write %d features to GeoJSON", len(features))
	writeStartTime := time.Now()

	featureCollection := FeaturesToCollection(features)

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal feature collection")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON output")
	}

	writeDuration := time.Since(writeStartTime)
	sigolo.Debugf("Finished writing in %s", writeDuration)

	return nil
}

// FeaturesToCollection turns the given features into a GeoJSON feature collection. Features without geometry are left
// out since GeoJSON cannot represent them.
func FeaturesToCollection(features feature.Set) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}

		geojsonFeature := geojson.NewFeature(f.Geometry)
		geojsonFeature.ID = f.ID
		for key, value := range f.Tags {
			geojsonFeature.Properties[key] = value
		}

		featureCollection.Features = append(featureCollection.Features, geojsonFeature)
	}

	return featureCollection
}
