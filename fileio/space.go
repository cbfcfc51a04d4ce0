package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/grid"
)

// WriteSpace writes v in the text configuration-space format.
func WriteSpace(w io.Writer, v *cspace.View) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n%d\n", v.AgentRadius(), v.Width(), v.Height()); err != nil {
		return err
	}
	if _, err := bw.WriteString(v.String()); err != nil {
		return err
	}

	return bw.Flush()
}

// ReadSpace parses the text configuration-space format and rebuilds an
// unfrozen Space. Blank lines are ignored; every other row must hold exactly
// width values.
func ReadSpace(r io.Reader) (*cspace.Space, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var header [3]uint
	names := [3]string{"agent radius", "width", "height"}
	line := 0
	for i := range header {
		text, err := nextLine(sc, &line)
		if err != nil {
			return nil, fmt.Errorf("%w: missing %s: %v", ErrCorrupt, names[i], err)
		}
		n, err := strconv.ParseUint(text, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad %s %q", ErrCorrupt, line, names[i], text)
		}
		header[i] = uint(n)
	}

	ix, err := grid.NewIndexer(header[1], header[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	w, h := ix.Shape()
	data := make([]cspace.State, 0, ix.Size())
	var rows uint
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows++; rows > h {
			return nil, fmt.Errorf("%w: line %d: %w: more than %d rows", ErrCorrupt, line, grid.ErrSizeMismatch, h)
		}
		if uint(len(fields)) != w {
			return nil, fmt.Errorf("%w: line %d: %w: %d values in a row of width %d",
				ErrCorrupt, line, grid.ErrSizeMismatch, len(fields), w)
		}
		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad cell value %q", ErrCorrupt, line, field)
			}
			st, err := cspace.ParseState(n)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrCorrupt, line, err)
			}
			data = append(data, st)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	states, err := grid.StoreFrom(ix, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return cspace.FromStates(states, header[0])
}

// SaveSpace writes v to path.
func SaveSpace(path string, v *cspace.View) error {
	return saveWith(path, func(f *os.File) error { return WriteSpace(f, v) })
}

// LoadSpace reads a configuration space from path.
func LoadSpace(path string) (*cspace.Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSpace(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// nextLine returns the next non-blank line, trimmed.
func nextLine(sc *bufio.Scanner, line *int) (string, error) {
	for sc.Scan() {
		*line++
		if text := strings.TrimSpace(sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}
