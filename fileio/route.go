package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// WriteRoute writes one "x y" line per cell.
func WriteRoute(w io.Writer, route planner.Route) error {
	bw := bufio.NewWriter(w)
	for _, c := range route {
		if _, err := fmt.Fprintf(bw, "%d%s%d\n", c.X, delim, c.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadRoute parses the route format. Blank lines are ignored.
func ReadRoute(r io.Reader) (planner.Route, error) {
	sc := bufio.NewScanner(r)
	var route planner.Route
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"x y\", got %q", ErrCorrupt, line, sc.Text())
		}
		x, errX := strconv.ParseUint(fields[0], 10, 0)
		y, errY := strconv.ParseUint(fields[1], 10, 0)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: bad coordinates %q", ErrCorrupt, line, sc.Text())
		}
		route = append(route, grid.C(uint(x), uint(y)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return route, nil
}

// SaveRoute writes route to path.
func SaveRoute(path string, route planner.Route) error {
	return saveWith(path, func(f *os.File) error { return WriteRoute(f, route) })
}

// LoadRoute reads a route from path.
func LoadRoute(path string) (planner.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	route, err := ReadRoute(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return route, nil
}
