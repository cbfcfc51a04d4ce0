// Package fileio persists configuration spaces and routes.
//
// Text formats:
//
//   - Configuration space: line 1 is the agent radius, line 2 the width,
//     line 3 the height, followed by height rows of width space-separated
//     state values (0 free, 1 object, 2 padded), row y=0 first.
//   - Route: one "x y" line per cell, start first. An empty route is an
//     empty file.
//
// GeoJSON (github.com/paulmach/orb):
//
//   - ReadObstacles parses a FeatureCollection of Point features carrying a
//     numeric "radius" property; coordinates and radius are in cell units.
//   - RouteFeature and WriteRouteGeoJSON export a route, with optional
//     obstacles, for rendering tools.
//
// Save* helpers create missing parent directories and overwrite existing
// files. Malformed input is reported as ErrCorrupt; a cell count that does
// not match the declared shape also matches grid.ErrSizeMismatch.
package fileio
