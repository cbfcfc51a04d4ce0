// Package server exposes configuration spaces and planners over HTTP.
//
// A client builds a space once with POST /spaces, then asks for any number
// of routes over it. Spaces are frozen on creation and shared read-only
// between requests. GET /spaces/:id/stream upgrades to a websocket that
// reports every expanded cell as the planner runs.
package server

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridplan/internal/config"
)

// Sentinel errors reported in {"error": ...} bodies.
var (
	ErrTooLarge     = errors.New("server: space exceeds the cell limit")
	ErrBadID        = errors.New("server: malformed space id")
	ErrUnknownSpace = errors.New("server: no such space")
)

// Server holds the spaces created through the API.
type Server struct {
	cfg    config.Config
	spaces *store
	log    *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger replaces the standard logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.log = l
	}
}

// New returns a Server using cfg for limits and the default planner.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{cfg: cfg, spaces: newStore(), log: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router returns the gin engine serving the API.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", s.health)

	spaces := r.Group("/spaces")
	spaces.POST("", s.createSpace)
	spaces.GET("/:id", s.getSpace)
	spaces.DELETE("/:id", s.deleteSpace)
	spaces.GET("/:id/grid", s.getGrid)
	spaces.POST("/:id/route", s.planRoute)
	spaces.GET("/:id/route.geojson", s.routeGeoJSON)
	spaces.GET("/:id/stream", s.stream)

	return r
}

// Run serves the API on cfg.Addr until the listener fails.
func (s *Server) Run() error {
	s.log.Printf("Starting server on %s", s.cfg.Addr)

	return http.ListenAndServe(s.cfg.Addr, s.Router())
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "spaces": s.spaces.len()})
}
