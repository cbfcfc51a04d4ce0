// Command savebb8 builds a configuration space for one of the preset
// scenarios, writes it to disk, reads it back and plans a route across it.
//
//	savebb8 [flags] M N radius case
//
// M is the number of rows, N the number of columns, radius the agent radius
// and case the scenario (1 none, 2 impossible, 3 simple, 4 complex, 5 maze).
// The route runs between the default endpoints (radius+1, radius+1) and
// (N-radius-1, M-radius-1). Output goes to config-space.txt and
// solution-path.txt in the output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/fileio"
	"github.com/katalvlaran/gridplan/internal/config"
	"github.com/katalvlaran/gridplan/internal/strategy"
	"github.com/katalvlaran/gridplan/planner"
	"github.com/katalvlaran/gridplan/raster"
	"github.com/katalvlaran/gridplan/scenario"
	"github.com/katalvlaran/gridplan/spatial"
)

// Output file names.
const (
	spaceFile   = "config-space.txt"
	routeFile   = "solution-path.txt"
	geoJSONFile = "solution-path.geojson"
)

type params struct {
	height, width, radius uint
	kind                  scenario.Kind

	outDir    string
	planner   string
	obstacles string
	geoJSON   bool
	maxCells  uint64
	fallback  planner.Kind
}

func main() {
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if !loaded {
		log.Println("No .env file found, using default environment variables")
	}

	var p params
	flag.StringVar(&p.outDir, "out", cfg.OutputDir, "output directory")
	flag.StringVar(&p.planner, "planner", cfg.Planner.String(), "planner: astar, dijkstra or bfs")
	flag.StringVar(&p.obstacles, "obstacles", "", "GeoJSON obstacle file, replaces the scenario layout")
	flag.BoolVar(&p.geoJSON, "geojson", false, "also write "+geoJSONFile)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] M N radius case\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	p.maxCells, p.fallback = cfg.MaxCells, cfg.Planner

	if err = p.parseArgs(flag.Args()); err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}
	if err = run(p); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func (p *params) parseArgs(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	var dims [3]uint
	for i, name := range []string{"M", "N", "radius"} {
		v, err := strconv.ParseUint(args[i], 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		dims[i] = uint(v)
	}
	p.height, p.width, p.radius = dims[0], dims[1], dims[2]

	kind, err := scenario.ParseKind(args[3])
	if err != nil {
		return err
	}
	p.kind = kind

	return nil
}

func run(p params) error {
	if cells := uint64(p.width) * uint64(p.height); cells > p.maxCells {
		return fmt.Errorf("%dx%d grid has %d cells, limit is %d", p.width, p.height, cells, p.maxCells)
	}

	obstacles, err := loadObstacles(p)
	if err != nil {
		return err
	}
	log.Printf("Building %dx%d space, agent radius %d, %d obstacles", p.width, p.height, p.radius, len(obstacles))

	cs, err := cspace.New(p.width, p.height, p.radius)
	if err != nil {
		return err
	}
	if err = cs.AddObstacles(raster.Shapes(obstacles)...); err != nil {
		return err
	}

	spacePath := filepath.Join(p.outDir, spaceFile)
	if err = fileio.SaveSpace(spacePath, cs.Freeze()); err != nil {
		return err
	}
	log.Printf("Wrote %s", spacePath)

	// Plan on the reloaded space so the file is what the route is checked against.
	reloaded, err := fileio.LoadSpace(spacePath)
	if err != nil {
		return err
	}
	view := reloaded.Freeze()

	pl, kind, err := strategy.Parse(p.planner, p.fallback, view, nil)
	if err != nil {
		return err
	}
	start, goal := scenario.DefaultEndpoints(p.width, p.height, p.radius)
	log.Printf("Planning %v -> %v with %s", start, goal, kind)

	res, err := pl.Plan(start, goal)
	switch {
	case err == nil:
		log.Printf("Route found: %d moves, length %.3f, %d cells expanded", res.Route.Moves(), res.Route.Length(), res.Expanded)
	case planner.IsNoPlan(err):
		log.Printf("No route: %v (%d cells expanded)", err, res.Expanded)
	default:
		return err
	}

	violations := spatial.NewIndex(obstacles).Audit(res.Route, p.radius)
	for _, v := range violations {
		log.Printf("WARNING: route cell %d %v is %.3f too close to obstacle at %v", v.Index, v.Cell, -v.Clearance, v.Obstacle.Center)
	}

	routePath := filepath.Join(p.outDir, routeFile)
	if err = fileio.SaveRoute(routePath, res.Route); err != nil {
		return err
	}
	log.Printf("Wrote %s", routePath)

	if p.geoJSON {
		geoPath := filepath.Join(p.outDir, geoJSONFile)
		if err = fileio.SaveRouteGeoJSON(geoPath, res.Route, obstacles); err != nil {
			return err
		}
		log.Printf("Wrote %s", geoPath)
	}
	if len(violations) > 0 {
		return fmt.Errorf("route has %d clearance violations", len(violations))
	}

	return nil
}

func loadObstacles(p params) ([]raster.Circle, error) {
	if p.obstacles != "" {
		return fileio.LoadObstacles(p.obstacles)
	}

	return scenario.Obstacles(p.kind, p.width, p.height, p.radius)
}
