package server_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/internal/config"
)

type frame struct {
	T      string     `json:"t"`
	C      [2]uint    `json:"c"`
	Result *routeBody `json:"result"`
	Error  string     `json:"error"`
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

// collect reads frames until a result or error frame arrives.
func collect(t *testing.T, ws *websocket.Conn) (expanded []grid.Cell, last frame) {
	t.Helper()
	for {
		var f frame
		require.NoError(t, ws.ReadJSON(&f))
		if f.T != "x" {
			return expanded, f
		}
		expanded = append(expanded, grid.C(f.C[0], f.C[1]))
	}
}

func TestStream(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 16, "height": 16, "agentRadius": 1})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ws := dial(t, srv.URL+"/spaces/"+sp.ID.String()+"/stream")

	for _, name := range []string{"astar", "bfs"} {
		require.NoError(t, ws.WriteJSON(map[string]interface{}{
			"start": grid.C(1, 1), "goal": grid.C(14, 14), "planner": name,
		}))
		expanded, last := collect(t, ws)
		require.Equal(t, "r", last.T, last.Error)
		require.NotNil(t, last.Result)
		assert.True(t, last.Result.Found)
		assert.Equal(t, name, last.Result.Planner)
		assert.Len(t, expanded, last.Result.Expanded)
		assert.Equal(t, grid.C(1, 1), expanded[0])
	}

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"start":{"x":1,"y":1}}`)))
	_, last := collect(t, ws)
	assert.Equal(t, "e", last.T)

	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"start": grid.C(1, 1), "goal": grid.C(2, 2), "planner": "greedy",
	}))
	_, last = collect(t, ws)
	assert.Equal(t, "e", last.T)
	assert.Contains(t, last.Error, "greedy")
}

func TestStreamThinned(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 30, "height": 30, "agentRadius": 1})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ws := dial(t, srv.URL+"/spaces/"+sp.ID.String()+"/stream?every=4")
	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"start": grid.C(1, 1), "goal": grid.C(28, 20), "planner": "dijkstra",
	}))
	expanded, last := collect(t, ws)
	require.Equal(t, "r", last.T)
	assert.Len(t, expanded, last.Result.Expanded/4)
}

func TestStreamRejectsBadEvery(t *testing.T) {
	r := newRouter(t, config.Default())
	sp := create(t, r, map[string]interface{}{"width": 5, "height": 5})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(srv.URL, "http")+"/spaces/"+sp.ID.String()+"/stream?every=0", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
}
