package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/fileio"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/internal/strategy"
	"github.com/katalvlaran/gridplan/planner"
	"github.com/katalvlaran/gridplan/raster"
	"github.com/katalvlaran/gridplan/scenario"
	"github.com/katalvlaran/gridplan/spatial"
)

// Coordinates and radii are capped at fileio.MaxCellUnits, as GeoJSON input is.
type obstacleRequest struct {
	X      uint `json:"x" binding:"max=4294967295"`
	Y      uint `json:"y" binding:"max=4294967295"`
	Radius uint `json:"radius" binding:"max=4294967295"`
}

type createSpaceRequest struct {
	Width       uint              `json:"width" binding:"required,max=4294967295"`
	Height      uint              `json:"height" binding:"required,max=4294967295"`
	AgentRadius uint              `json:"agentRadius" binding:"max=4294967295"`
	Obstacles   []obstacleRequest `json:"obstacles" binding:"dive"`
	Scenario    string            `json:"scenario,omitempty"`
}

type spaceResponse struct {
	ID           uuid.UUID       `json:"id"`
	Width        uint            `json:"width"`
	Height       uint            `json:"height"`
	AgentRadius  uint            `json:"agentRadius"`
	Counts       cspace.Counts   `json:"counts"`
	Regions      int             `json:"regions"`
	Obstacles    []raster.Circle `json:"obstacles"`
	DefaultStart grid.Cell       `json:"defaultStart"`
	DefaultGoal  grid.Cell       `json:"defaultGoal"`
	Created      time.Time       `json:"created"`
}

type routeRequest struct {
	Start   *grid.Cell `json:"start" binding:"required"`
	Goal    *grid.Cell `json:"goal" binding:"required"`
	Planner string     `json:"planner,omitempty"`
}

type routeResponse struct {
	Planner    string              `json:"planner"`
	Found      bool                `json:"found"`
	Route      planner.Route       `json:"route"`
	Moves      int                 `json:"moves"`
	Length     float64             `json:"length"`
	Expanded   int                 `json:"expanded"`
	Cost       float64             `json:"cost"`
	Message    string              `json:"message,omitempty"`
	Violations []spatial.Violation `json:"violations"`
}

func (s *Server) createSpace(c *gin.Context) {
	s.log.Println("=== Received create space request ===")

	var req createSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Printf("ERROR: Failed to parse request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cells := uint64(req.Width) * uint64(req.Height); cells > s.cfg.MaxCells {
		s.log.Printf("ERROR: %dx%d is %d cells, limit %d", req.Width, req.Height, cells, s.cfg.MaxCells)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("%v: %d cells, limit %d", ErrTooLarge, cells, s.cfg.MaxCells),
		})
		return
	}

	obstacles := make([]raster.Circle, 0, len(req.Obstacles))
	for _, o := range req.Obstacles {
		obstacles = append(obstacles, raster.NewCircle(o.X, o.Y, o.Radius))
	}
	if req.Scenario != "" {
		kind, err := scenario.ParseKind(req.Scenario)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		preset, err := scenario.Obstacles(kind, req.Width, req.Height, req.AgentRadius)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		obstacles = append(obstacles, preset...)
	}
	s.log.Printf("Request details: %dx%d, agent radius %d, %d obstacles",
		req.Width, req.Height, req.AgentRadius, len(obstacles))

	cs, err := cspace.New(req.Width, req.Height, req.AgentRadius)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = cs.AddObstacles(raster.Shapes(obstacles)...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sp := &space{
		id:        uuid.New(),
		view:      cs.Freeze(),
		obstacles: obstacles,
		index:     spatial.NewIndex(obstacles),
		created:   time.Now().UTC(),
	}
	sp.regions = cspace.Regions(sp.view)
	s.spaces.put(sp)

	s.log.Printf("Created space %s: %+v, %d free regions", sp.id, sp.view.Counts(), sp.regions.Count())
	c.JSON(http.StatusCreated, describe(sp))
	s.log.Println("=== Create space request completed ===")
}

func (s *Server) getSpace(c *gin.Context) {
	sp, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, describe(sp))
}

func (s *Server) deleteSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrBadID.Error()})
		return
	}
	if !s.spaces.remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrUnknownSpace.Error()})
		return
	}
	s.log.Printf("Deleted space %s", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) getGrid(c *gin.Context) {
	sp, ok := s.lookup(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := fileio.WriteSpace(&buf, sp.view); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Server) planRoute(c *gin.Context) {
	s.log.Println("=== Received route request ===")

	sp, ok := s.lookup(c)
	if !ok {
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Printf("ERROR: Failed to parse request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.log.Printf("Request details: %v -> %v on %s", *req.Start, *req.Goal, sp.id)

	resp, err := s.plan(sp, req, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Printf("Route calculation completed: found=%t moves=%d expanded=%d", resp.Found, resp.Moves, resp.Expanded)
	c.JSON(http.StatusOK, resp)
	s.log.Println("=== Route request completed ===")
}

func (s *Server) routeGeoJSON(c *gin.Context) {
	sp, ok := s.lookup(c)
	if !ok {
		return
	}
	var coords [4]uint
	for i, key := range []string{"sx", "sy", "gx", "gy"} {
		v, err := strconv.ParseUint(c.Query(key), 10, 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("query parameter %s: %v", key, err)})
			return
		}
		coords[i] = uint(v)
	}
	start, goal := grid.C(coords[0], coords[1]), grid.C(coords[2], coords[3])

	resp, err := s.plan(sp, routeRequest{Start: &start, Goal: &goal, Planner: c.Query("planner")}, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !resp.Found {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": resp.Message})
		return
	}

	var buf bytes.Buffer
	if err = fileio.WriteRouteGeoJSON(&buf, resp.Route, sp.obstacles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", buf.Bytes())
}

// plan runs the requested planner over sp. A failed search is reported in
// the response; only an unknown planner name is returned as an error.
func (s *Server) plan(sp *space, req routeRequest, onExpand func(grid.Cell)) (routeResponse, error) {
	p, kind, err := strategy.Parse(req.Planner, s.cfg.Planner, sp.view, onExpand)
	if err != nil {
		return routeResponse{}, err
	}

	resp := routeResponse{Planner: kind.String(), Route: planner.Route{}, Violations: []spatial.Violation{}}
	res, err := p.Plan(*req.Start, *req.Goal)
	resp.Expanded = res.Expanded
	if err != nil {
		resp.Message = err.Error()
		return resp, nil
	}

	resp.Found = true
	resp.Route = res.Route
	resp.Moves = res.Route.Moves()
	resp.Length = res.Route.Length()
	resp.Cost = res.Cost
	if v := sp.index.Audit(res.Route, sp.view.AgentRadius()); len(v) > 0 {
		s.log.Printf("WARNING: route on %s has %d clearance violations", sp.id, len(v))
		resp.Violations = v
	}

	return resp, nil
}

// lookup resolves the :id parameter, writing the error response itself.
func (s *Server) lookup(c *gin.Context) (*space, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrBadID.Error()})
		return nil, false
	}
	sp, ok := s.spaces.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrUnknownSpace.Error()})
		return nil, false
	}

	return sp, true
}

func describe(sp *space) spaceResponse {
	start, goal := scenario.DefaultEndpoints(sp.view.Width(), sp.view.Height(), sp.view.AgentRadius())

	return spaceResponse{
		ID:           sp.id,
		Width:        sp.view.Width(),
		Height:       sp.view.Height(),
		AgentRadius:  sp.view.AgentRadius(),
		Counts:       sp.view.Counts(),
		Regions:      sp.regions.Count(),
		Obstacles:    sp.obstacles,
		DefaultStart: start,
		DefaultGoal:  goal,
		Created:      sp.created,
	}
}
