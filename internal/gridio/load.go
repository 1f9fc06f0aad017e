// Package gridio reads and writes grids as text, one row per line with '0'
// for a dead cell and '1' for a live one.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"halo-life/pkg/core"
)

var (
	// ErrEmpty is returned for input without any rows.
	ErrEmpty = errors.New("gridio: no rows")
	// ErrJagged is returned when rows differ in length.
	ErrJagged = errors.New("gridio: jagged rows")
	// ErrInvalidCell is returned for characters other than '0' and '1'.
	ErrInvalidCell = errors.New("gridio: invalid cell")
)

const maxLine = 16 << 20

// Parse reads a grid from r. Spaces and tabs inside a row are ignored, as are
// blank lines.
func Parse(r io.Reader) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]uint8
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		row := make([]uint8, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch ch {
			case ' ', '\t', '\r':
			case '0':
				row = append(row, core.Dead)
			case '1':
				row = append(row, core.Alive)
			default:
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, col, ch, ErrInvalidCell)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d cells, want %d: %w", line, len(row), len(rows[0]), ErrJagged)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return core.FromRows(rows)
}

// Load reads the grid stored at path.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
