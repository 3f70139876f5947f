package web

import (
	"encoding/json"
	"fgrid/config"
	"fgrid/grid"
	ownIo "fgrid/io"
	"fgrid/overlay"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

type GridCellResponse struct {
	Id       string                     `json:"id"`
	X        int                        `json:"x"`
	Y        int                        `json:"y"`
	Index    int                        `json:"index"`
	Bounds   [4]float64                 `json:"bounds"`
	InCount  int                        `json:"inCount"`
	OutCount int                        `json:"outCount"`
	Features *geojson.FeatureCollection `json:"features,omitempty"`
}

type GridResponse struct {
	Bounds   [4]float64         `json:"bounds"`
	Policy   string             `json:"policy"`
	NumCells int                `json:"numCells"`
	Cells    []GridCellResponse `json:"cells"`
}

func StartServer(port string, engine overlay.Engine) {
	r := initRouter(engine)
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string, engine overlay.Engine) {
	r := initRouter(engine)
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

func initRouter(engine overlay.Engine) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/grid", func(writer http.ResponseWriter, request *http.Request) {
		handleGridRequest(writer, request, engine)
	}).Methods(http.MethodPost)
	r.HandleFunc("/cells", func(writer http.ResponseWriter, request *http.Request) {
		handleCellsRequest(writer, request, engine)
	}).Methods(http.MethodGet)

	return r
}

// handleGridRequest distributes the posted GeoJSON features over a grid and responds with one entry per cell. The
// grid extent is the bounding box of the posted geometries.
func handleGridRequest(writer http.ResponseWriter, request *http.Request, engine overlay.Engine) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")

	policy, err := policyFromRequest(request)
	if err != nil {
		sigolo.Errorf("Error parsing policy: %+v", err)
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte(fmt.Sprintf("Error parsing policy: %+v", err)))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	bodyBytes, err := io.ReadAll(request.Body)
	if err != nil {
		sigolo.Errorf("Error reading HTTP body of request to '/grid': %+v", err)
		writer.WriteHeader(http.StatusInternalServerError)
		_, err = writer.Write([]byte("Error reading HTTP body."))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	features, err := ownIo.ReadFeaturesFromGeoJson(bodyBytes)
	if err != nil {
		sigolo.Errorf("Error parsing feature collection: %+v", err)
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte(fmt.Sprintf("Error parsing feature collection: %+v", err)))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	bounds, ok := features.Bound()
	if !ok {
		sigolo.Error("Feature collection contains no geometries")
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte("Feature collection contains no geometries."))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	gridder := grid.NewGridder(bounds, policy, engine)
	sigolo.Debugf("Grid request covers %v using %d cells", gridder.Bounds(), gridder.NumCells())

	response := GridResponse{
		Bounds:   boundsToArray(gridder.Bounds()),
		Policy:   gridder.Policy().ToConfig().String(),
		NumCells: gridder.NumCells(),
	}
	for i := 0; i < gridder.NumCells(); i++ {
		result, err := gridder.CullToCell(i, features.Copy())
		if err != nil {
			sigolo.Errorf("Error culling features to cell %d: %+v", i, err)
			writer.WriteHeader(http.StatusInternalServerError)
			_, err = writer.Write([]byte(fmt.Sprintf("Error culling features to cell %d: %+v", i, err)))
			if err != nil {
				sigolo.Errorf("Error writing error response: %+v", err)
			}
			return
		}

		cellResponse := GridCellResponse{
			Id:       result.Cell.Id(),
			X:        result.Cell.Index.X(),
			Y:        result.Cell.Index.Y(),
			Index:    i,
			Bounds:   boundsToArray(result.Cell.Bounds),
			InCount:  result.InCount,
			OutCount: result.OutCount,
		}
		if result.OutCount > 0 {
			cellResponse.Features = ownIo.FeaturesToCollection(result.Features)
		}
		response.Cells = append(response.Cells, cellResponse)
	}

	writeJson(writer, response)
}

// handleCellsRequest responds with the cell outlines of the grid over the given bbox as a GeoJSON feature collection.
func handleCellsRequest(writer http.ResponseWriter, request *http.Request, engine overlay.Engine) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")

	bounds, err := parseBboxParameter(request.URL.Query().Get("bbox"))
	if err != nil {
		sigolo.Errorf("Error parsing bbox: %+v", err)
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte(fmt.Sprintf("Error parsing bbox: %+v", err)))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	policy, err := policyFromRequest(request)
	if err != nil {
		sigolo.Errorf("Error parsing policy: %+v", err)
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte(fmt.Sprintf("Error parsing policy: %+v", err)))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	gridder := grid.NewGridder(bounds, policy, engine)

	collection := geojson.NewFeatureCollection()
	for i := 0; i < gridder.NumCells(); i++ {
		cell, err := gridder.Cell(i)
		if err != nil {
			sigolo.Errorf("Error getting cell %d: %+v", i, err)
			writer.WriteHeader(http.StatusInternalServerError)
			_, err = writer.Write([]byte(fmt.Sprintf("Error getting cell %d: %+v", i, err)))
			if err != nil {
				sigolo.Errorf("Error writing error response: %+v", err)
			}
			return
		}

		cellFeature := geojson.NewFeature(cell.Polygon())
		cellFeature.Properties["id"] = cell.Id()
		cellFeature.Properties["x"] = cell.Index.X()
		cellFeature.Properties["y"] = cell.Index.Y()
		cellFeature.Properties["index"] = i
		collection.Append(cellFeature)
	}

	writeJson(writer, collection)
}

func policyFromRequest(request *http.Request) (grid.Policy, error) {
	fragment := request.URL.Query().Get("policy")
	if strings.TrimSpace(fragment) == "" {
		return grid.Policy{}, nil
	}

	conf, err := config.Parse(fragment)
	if err != nil {
		return grid.Policy{}, err
	}

	return grid.PolicyFromConfig(conf), nil
}

func parseBboxParameter(raw string) (orb.Bound, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return orb.Bound{}, errors.Errorf("Expected bbox as 'minLon,minLat,maxLon,maxLat' but got '%s'", raw)
	}

	var values [4]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrapf(err, "Unable to parse bbox value '%s'", part)
		}
		values[i] = value
	}

	if values[0] > values[2] || values[1] > values[3] {
		return orb.Bound{}, errors.Errorf("Bbox min must not exceed max in '%s'", raw)
	}

	return orb.Bound{Min: orb.Point{values[0], values[1]}, Max: orb.Point{values[2], values[3]}}, nil
}

func boundsToArray(bounds orb.Bound) [4]float64 {
	return [4]float64{bounds.Min.X(), bounds.Min.Y(), bounds.Max.X(), bounds.Max.Y()}
}

func writeJson(writer http.ResponseWriter, data interface{}) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		sigolo.Errorf("Error marshalling response: %+v", err)
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	_, err = writer.Write(jsonBytes)
	if err != nil {
		sigolo.Errorf("Error writing response: %+v", err)
	}
}
