package fileio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
	"github.com/katalvlaran/gridplan/raster"
)

// RadiusProperty is the feature property holding an obstacle radius.
const RadiusProperty = "radius"

// ReadObstacles parses a GeoJSON FeatureCollection of circular obstacles.
// Each feature must be a Point with non-negative integral coordinates and a
// non-negative integral "radius" property.
func ReadObstacles(r io.Reader) ([]raster.Circle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	out := make([]raster.Circle, 0, len(fc.Features))
	for i, f := range fc.Features {
		c, err := obstacle(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

// LoadObstacles reads obstacles from a GeoJSON file.
func LoadObstacles(path string) ([]raster.Circle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obstacles, err := ReadObstacles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obstacles, nil
}

func obstacle(f *geojson.Feature) (raster.Circle, error) {
	p, ok := f.Geometry.(orb.Point)
	if !ok {
		return raster.Circle{}, fmt.Errorf("%w: geometry is %T, want Point", ErrBadObstacle, f.Geometry)
	}
	raw, ok := f.Properties[RadiusProperty].(float64)
	if !ok {
		return raster.Circle{}, fmt.Errorf("%w: missing numeric %q property", ErrBadObstacle, RadiusProperty)
	}
	x, okX := cellUnits(p.X())
	y, okY := cellUnits(p.Y())
	r, okR := cellUnits(raw)
	if !okX || !okY || !okR {
		return raster.Circle{}, fmt.Errorf("%w: center %v radius %v are not non-negative integers",
			ErrBadObstacle, p, raw)
	}

	return raster.NewCircle(x, y, r), nil
}

// MaxCellUnits is the largest coordinate or radius accepted from external input.
const MaxCellUnits = math.MaxUint32

// cellUnits converts a JSON number to a cell coordinate.
func cellUnits(v float64) (uint, bool) {
	if v < 0 || v != math.Trunc(v) || v > MaxCellUnits {
		return 0, false
	}

	return uint(v), true
}

// point converts a cell to its GeoJSON position.
func point(c grid.Cell) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// RouteFeature returns the route as a LineString feature, or a Point feature
// for a single-cell route. Properties carry the cell count and length.
// Returns nil for an empty route.
func RouteFeature(route planner.Route) *geojson.Feature {
	var f *geojson.Feature
	switch len(route) {
	case 0:
		return nil
	case 1:
		f = geojson.NewFeature(point(route[0]))
	default:
		ls := make(orb.LineString, len(route))
		for i, c := range route {
			ls[i] = point(c)
		}
		f = geojson.NewFeature(ls)
	}
	f.Properties["kind"] = "route"
	f.Properties["cells"] = len(route)
	f.Properties["length"] = route.Length()

	return f
}

// ObstacleFeature returns c as a Point feature with a radius property.
func ObstacleFeature(c raster.Circle) *geojson.Feature {
	f := geojson.NewFeature(point(c.Center))
	f.Properties["kind"] = "obstacle"
	f.Properties[RadiusProperty] = c.Radius

	return f
}

// RouteCollection bundles the route and obstacles into one FeatureCollection.
func RouteCollection(route planner.Route, obstacles []raster.Circle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if f := RouteFeature(route); f != nil {
		fc.Append(f)
	}
	for _, o := range obstacles {
		fc.Append(ObstacleFeature(o))
	}

	return fc
}

// WriteRouteGeoJSON writes RouteCollection(route, obstacles) to w.
func WriteRouteGeoJSON(w io.Writer, route planner.Route, obstacles []raster.Circle) error {
	data, err := RouteCollection(route, obstacles).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// SaveRouteGeoJSON writes the GeoJSON export to path.
func SaveRouteGeoJSON(path string, route planner.Route, obstacles []raster.Circle) error {
	return saveWith(path, func(f *os.File) error { return WriteRouteGeoJSON(f, route, obstacles) })
}
