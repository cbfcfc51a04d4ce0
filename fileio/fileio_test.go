package fileio_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/fileio"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
	"github.com/katalvlaran/gridplan/raster"
)

func sampleSpace(t *testing.T) *cspace.View {
	t.Helper()
	s, err := cspace.New(6, 5, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddObstacles(raster.NewCircle(3, 2, 1)))

	return s.Freeze()
}

func TestWriteSpaceFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fileio.WriteSpace(&buf, sampleSpace(t)))
	want := "1\n6\n5\n" +
		"2 2 2 2 2 2\n" +
		"2 0 2 2 2 2\n" +
		"2 0 2 1 2 2\n" +
		"2 0 2 2 2 2\n" +
		"2 2 2 2 2 2\n"
	assert.Equal(t, want, buf.String())
}

func TestSpaceRoundTrip(t *testing.T) {
	v := sampleSpace(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "config-space.txt")
	require.NoError(t, fileio.SaveSpace(path, v))

	s, err := fileio.LoadSpace(path)
	require.NoError(t, err)
	assert.False(t, s.Frozen())
	assert.Equal(t, v.AgentRadius(), s.AgentRadius())
	assert.Equal(t, v.String(), s.String())
}

func TestReadSpaceErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		extra error
	}{
		{"empty", "", nil},
		{"bad radius", "x\n2\n2\n0 0\n0 0\n", nil},
		{"missing height", "0\n2\n", nil},
		{"zero width", "0\n0\n2\n", grid.ErrBadShape},
		{"too few cells", "0\n2\n2\n0 0\n0\n", grid.ErrSizeMismatch},
		{"too many cells", "0\n2\n2\n0 0\n0 0\n0\n", grid.ErrSizeMismatch},
		{"bad value", "0\n2\n2\n0 0\n0 z\n", nil},
		{"unknown state", "0\n2\n2\n0 0\n0 3\n", cspace.ErrUnknownState},
		{"ragged rows", "0\n3\n2\n0 0\n0 0 0 0\n", grid.ErrSizeMismatch},
		{"too few rows", "0\n3\n3\n0 0 0\n0 0 0\n", grid.ErrSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fileio.ReadSpace(strings.NewReader(tt.input))
			require.ErrorIs(t, err, fileio.ErrCorrupt)
			if tt.extra != nil {
				assert.ErrorIs(t, err, tt.extra)
			}
		})
	}
}

// TestReadSpaceRowWidth rejects rows of the wrong width even when the total
// cell count matches, and names the offending line.
func TestReadSpaceRowWidth(t *testing.T) {
	_, err := fileio.ReadSpace(strings.NewReader("0\n3\n2\n0 0\n0 0 0 0\n"))
	require.ErrorIs(t, err, fileio.ErrCorrupt)
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), "2 values in a row of width 3")

	s, err := fileio.ReadSpace(strings.NewReader("0\n3\n2\n\n0 1 0\n\n0 0 0\n\n"))
	require.NoError(t, err)
	assert.Equal(t, cspace.Object, s.State(grid.C(1, 0)))
}

func TestReadSpaceRepadsBoundary(t *testing.T) {
	s, err := fileio.ReadSpace(strings.NewReader("1\n3\n3\n0 0 0\n0 0 0\n0 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "2 2 2\n2 0 2\n2 2 2\n", s.String())
}

func TestLoadSpaceMissingFile(t *testing.T) {
	_, err := fileio.LoadSpace(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestRouteRoundTrip(t *testing.T) {
	route := planner.Route{grid.C(1, 1), grid.C(2, 2), grid.C(3, 3)}
	var buf bytes.Buffer
	require.NoError(t, fileio.WriteRoute(&buf, route))
	assert.Equal(t, "1 1\n2 2\n3 3\n", buf.String())

	path := filepath.Join(t.TempDir(), "out", "solution-path.txt")
	require.NoError(t, fileio.SaveRoute(path, route))
	got, err := fileio.LoadRoute(path)
	require.NoError(t, err)
	assert.Equal(t, route, got)
}

func TestEmptyRouteIsEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fileio.WriteRoute(&buf, nil))
	assert.Zero(t, buf.Len())

	got, err := fileio.ReadRoute(&buf)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestReadRouteErrors(t *testing.T) {
	for _, input := range []string{"1\n", "1 2 3\n", "a b\n", "-1 2\n"} {
		_, err := fileio.ReadRoute(strings.NewReader(input))
		assert.ErrorIs(t, err, fileio.ErrCorrupt, "input %q", input)
	}
}

func TestReadObstacles(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[10,20]},"properties":{"radius":5}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"radius":0}}
	]}`
	got, err := fileio.ReadObstacles(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []raster.Circle{raster.NewCircle(10, 20, 5), raster.NewCircle(0, 0, 0)}, got)
}

func TestReadObstaclesErrors(t *testing.T) {
	tests := map[string]struct {
		input string
		want  error
	}{
		"not json": {`{`, fileio.ErrCorrupt},
		"line": {`{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{"radius":1}}]}`,
			fileio.ErrBadObstacle},
		"no radius": {`{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]},"properties":{}}]}`,
			fileio.ErrBadObstacle},
		"fractional": {`{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Point","coordinates":[1.5,1]},"properties":{"radius":1}}]}`,
			fileio.ErrBadObstacle},
		"negative radius": {`{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]},"properties":{"radius":-2}}]}`,
			fileio.ErrBadObstacle},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fileio.ReadObstacles(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRouteFeature(t *testing.T) {
	assert.Nil(t, fileio.RouteFeature(nil))

	single := fileio.RouteFeature(planner.Route{grid.C(4, 5)})
	require.NotNil(t, single)
	assert.Equal(t, "Point", single.Geometry.GeoJSONType())

	line := fileio.RouteFeature(planner.Route{grid.C(0, 0), grid.C(1, 1)})
	require.NotNil(t, line)
	assert.Equal(t, "LineString", line.Geometry.GeoJSONType())
	assert.Equal(t, 2, line.Properties["cells"])
}

func TestWriteRouteGeoJSON(t *testing.T) {
	route := planner.Route{grid.C(1, 1), grid.C(2, 2)}
	obstacles := []raster.Circle{raster.NewCircle(5, 5, 2)}

	var buf bytes.Buffer
	require.NoError(t, fileio.WriteRouteGeoJSON(&buf, route, obstacles))

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 2)
	assert.Equal(t, "LineString", doc.Features[0].Geometry.Type)
	assert.JSONEq(t, `[[1,1],[2,2]]`, string(doc.Features[0].Geometry.Coordinates))
	assert.Equal(t, "Point", doc.Features[1].Geometry.Type)
	assert.Equal(t, float64(2), doc.Features[1].Properties["radius"])

	// the obstacle part reads back through ReadObstacles
	got, err := fileio.ReadObstacles(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err, "route feature is not an obstacle")
	assert.Nil(t, got)
}
