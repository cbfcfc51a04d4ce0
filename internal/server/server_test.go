package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/internal/config"
	"github.com/katalvlaran/gridplan/internal/server"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type spaceBody struct {
	ID           uuid.UUID     `json:"id"`
	Width        uint          `json:"width"`
	Height       uint          `json:"height"`
	AgentRadius  uint          `json:"agentRadius"`
	Counts       cspace.Counts `json:"counts"`
	Regions      int           `json:"regions"`
	DefaultStart grid.Cell     `json:"defaultStart"`
	DefaultGoal  grid.Cell     `json:"defaultGoal"`
}

type routeBody struct {
	Planner    string            `json:"planner"`
	Found      bool              `json:"found"`
	Route      []grid.Cell       `json:"route"`
	Moves      int               `json:"moves"`
	Expanded   int               `json:"expanded"`
	Cost       float64           `json:"cost"`
	Message    string            `json:"message"`
	Violations []json.RawMessage `json:"violations"`
}

func newRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	return server.New(cfg, server.WithLogger(nil)).Router()
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func create(t *testing.T, r http.Handler, body interface{}) spaceBody {
	t.Helper()
	w := do(t, r, http.MethodPost, "/spaces", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sp spaceBody
	decode(t, w, &sp)

	return sp
}

func TestHealth(t *testing.T) {
	r := newRouter(t, config.Default())
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","spaces":0}`, w.Body.String())
}

func TestCreateAndGetSpace(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{
		"width": 9, "height": 7, "agentRadius": 1,
		"obstacles": []map[string]uint{{"x": 4, "y": 3, "radius": 1}},
	})
	assert.NotEqual(t, uuid.Nil, sp.ID)
	assert.Equal(t, cspace.Counts{Free: 26, Object: 1, Padded: 36}, sp.Counts)
	assert.Equal(t, 1, sp.Regions)
	assert.Equal(t, grid.C(2, 2), sp.DefaultStart)
	assert.Equal(t, grid.C(7, 5), sp.DefaultGoal)

	w := do(t, r, http.MethodGet, "/spaces/"+sp.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got spaceBody
	decode(t, w, &got)
	assert.Equal(t, sp, got)

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"status":"healthy","spaces":1}`, w.Body.String())
}

func TestCreateSpaceRejects(t *testing.T) {
	cfg := config.Default()
	cfg.MaxCells = 100
	r := newRouter(t, cfg)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"zero width", map[string]interface{}{"width": 0, "height": 5}, http.StatusBadRequest},
		{"negative", map[string]interface{}{"width": -3, "height": 5}, http.StatusBadRequest},
		{"unknown scenario", map[string]interface{}{"width": 5, "height": 5, "scenario": "spiral"}, http.StatusBadRequest},
		{"too large", map[string]interface{}{"width": 20, "height": 20}, http.StatusRequestEntityTooLarge},
		{"agent radius over cap", map[string]interface{}{"width": 5, "height": 5, "agentRadius": uint64(1) << 32}, http.StatusBadRequest},
		{"obstacle radius over cap", map[string]interface{}{
			"width": 5, "height": 5,
			"obstacles": []map[string]uint64{{"x": 2, "y": 2, "radius": 1 << 32}},
		}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/spaces", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

// TestCreateSpaceLargestRadii accepts radii at the cap and still builds
// the padding around the obstacle.
func TestCreateSpaceLargestRadii(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{
		"width": 5, "height": 5, "agentRadius": 2,
		"obstacles": []map[string]uint64{{"x": 2, "y": 2, "radius": 1<<32 - 1}},
	})
	assert.Equal(t, cspace.Counts{Object: 1, Padded: 24}, sp.Counts)

	sp = create(t, r, map[string]interface{}{"width": 4, "height": 3, "agentRadius": 1<<32 - 1})
	assert.Equal(t, cspace.Counts{Padded: 12}, sp.Counts)
}

func TestUnknownAndMalformedIDs(t *testing.T) {
	r := newRouter(t, config.Default())
	w := do(t, r, http.MethodGet, "/spaces/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/spaces/not-a-uuid/grid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGrid(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 3, "height": 3, "agentRadius": 1})

	w := do(t, r, http.MethodGet, "/spaces/"+sp.ID.String()+"/grid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1\n3\n3\n2 2 2\n2 0 2\n2 2 2\n", w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
}

func TestPlanRoute(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 12, "height": 12, "agentRadius": 1})
	path := "/spaces/" + sp.ID.String() + "/route"

	for _, name := range []string{"", "astar", "dijkstra", "bfs"} {
		t.Run("planner="+name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, path, map[string]interface{}{
				"start": grid.C(1, 1), "goal": grid.C(10, 10), "planner": name,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var got routeBody
			decode(t, w, &got)
			assert.True(t, got.Found)
			assert.Equal(t, 9, got.Moves)
			assert.Len(t, got.Route, 10)
			assert.Equal(t, grid.C(1, 1), got.Route[0])
			assert.Equal(t, grid.C(10, 10), got.Route[9])
			assert.Empty(t, got.Violations)
			assert.Positive(t, got.Expanded)
			if name == "" {
				assert.Equal(t, "astar", got.Planner)
			} else {
				assert.Equal(t, name, got.Planner)
			}
		})
	}
}

func TestPlanRouteDiagnostics(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{
		"width": 9, "height": 9, "agentRadius": 1,
		"obstacles": []map[string]uint{{"x": 4, "y": 4, "radius": 2}},
	})
	path := "/spaces/" + sp.ID.String() + "/route"

	w := do(t, r, http.MethodPost, path, map[string]interface{}{"start": grid.C(1, 1), "goal": grid.C(4, 4)})
	require.Equal(t, http.StatusOK, w.Code)
	var got routeBody
	decode(t, w, &got)
	assert.False(t, got.Found)
	assert.Equal(t, "planner: goal is not accessible: (4, 4) is object", got.Message)
	assert.NotNil(t, got.Route)
	assert.Empty(t, got.Route)
	assert.Contains(t, w.Body.String(), `"route":[]`)

	w = do(t, r, http.MethodPost, path, map[string]interface{}{"start": grid.C(1, 1)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, path, map[string]interface{}{
		"start": grid.C(1, 1), "goal": grid.C(7, 7), "planner": "greedy",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScenarioSpace(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 100, "height": 100, "agentRadius": 1, "scenario": "maze"})

	w := do(t, r, http.MethodPost, "/spaces/"+sp.ID.String()+"/route", map[string]interface{}{
		"start": sp.DefaultStart, "goal": sp.DefaultGoal,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var got routeBody
	decode(t, w, &got)
	assert.True(t, got.Found, got.Message)
	assert.Empty(t, got.Violations)
}

func TestRouteGeoJSON(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{
		"width": 20, "height": 20, "agentRadius": 1,
		"obstacles": []map[string]uint{{"x": 10, "y": 10, "radius": 2}},
	})
	base := "/spaces/" + sp.ID.String() + "/route.geojson"

	w := do(t, r, http.MethodGet, base+"?sx=2&sy=2&gx=17&gy=17", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	ls, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2, 2}, ls[0])
	assert.Equal(t, orb.Point{17, 17}, ls[len(ls)-1])
	assert.Equal(t, "obstacle", fc.Features[1].Properties.MustString("kind"))

	w = do(t, r, http.MethodGet, base+"?sx=2&sy=2&gx=10&gy=10", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodGet, base+"?sx=2&sy=2&gx=17", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSpace(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 5, "height": 5})
	path := "/spaces/" + sp.ID.String()

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, nil).Code)
}
