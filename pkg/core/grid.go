package core

import (
	"errors"
	"fmt"
	"math"
)

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// ErrJagged is returned when rows of differing lengths are combined into a grid.
var ErrJagged = errors.New("core: rows have inconsistent length")

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row, Col int
}

// Grid stores a rectangular block of cells in row-major order. A grid may have
// zero rows; such grids appear as the slices of workers that own nothing.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// FromRows copies rows into a new grid. Any non-zero value is stored as Alive.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrJagged)
		}
		for c, v := range row {
			if v != Dead {
				g.data[r*cols+c] = Alive
			}
		}
	}
	return g, nil
}

// FromCells wraps row-major cells in a grid without copying.
func FromCells(rows, cols int, cells []uint8) (*Grid, error) {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) || len(cells) != rows*cols {
		return nil, fmt.Errorf("%d cells for %dx%d grid: %w", len(cells), rows, cols, ErrJagged)
	}
	if cells == nil {
		cells = []uint8{}
	}
	return &Grid{rows: rows, cols: cols, data: cells}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// At returns the state of the cell at (row, col).
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set stores state for the cell at (row, col).
func (g *Grid) Set(row, col int, state uint8) { g.data[g.Index(row, col)] = state }

// Row returns the cells of a single row. The slice aliases the grid.
func (g *Grid) Row(row int) []uint8 {
	return g.data[row*g.cols : (row+1)*g.cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// SubRows returns a private copy of rows [start, end). The bounds must satisfy
// 0 <= start <= end <= Rows().
func (g *Grid) SubRows(start, end int) *Grid {
	out := NewGrid(end-start, g.cols)
	copy(out.data, g.data[start*g.cols:end*g.cols])
	return out
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, v := range g.data {
		if v == Alive {
			n++
		}
	}
	return n
}

// AliveCells lists the coordinates of live cells in row order.
func (g *Grid) AliveCells() []Coordinate {
	cells := make([]Coordinate, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.data[r*g.cols+c] == Alive {
				cells = append(cells, Coordinate{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Concat stacks parts top to bottom in argument order. Zero-row parts are
// skipped; every other part must share the same column count.
func Concat(parts ...*Grid) (*Grid, error) {
	rows, cols := 0, -1
	for i, p := range parts {
		if p.rows == 0 {
			continue
		}
		if cols >= 0 && p.cols != cols {
			return nil, fmt.Errorf("part %d has %d columns, want %d: %w", i, p.cols, cols, ErrJagged)
		}
		cols = p.cols
		rows += p.rows
	}
	if cols < 0 {
		cols = 0
		if len(parts) > 0 {
			cols = parts[0].cols
		}
	}
	out := &Grid{rows: rows, cols: cols, data: make([]uint8, 0, rows*cols)}
	for _, p := range parts {
		out.data = append(out.data, p.data...)
	}
	return out, nil
}
