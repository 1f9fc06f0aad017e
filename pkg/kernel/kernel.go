// Package kernel computes the next generation of a grid or grid slice.
package kernel

import "halo-life/pkg/core"

// Step applies rule to every cell of slice and returns the next generation as
// a new grid of identical dimensions. All neighbour counts read the input,
// which is never modified. Rows are treated uniformly: halo rows borrowed from
// another partition are ordinary rows here, and edges do not wrap.
func Step(slice *core.Grid, rule Rule) *core.Grid {
	rows, cols := slice.Rows(), slice.Cols()
	next := core.NewGrid(rows, cols)
	cur := slice.Cells()
	out := next.Cells()
	buf := make([]core.Coordinate, 0, 8)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			buf = core.AppendNeighbors(buf[:0], r, c, rows, cols)
			live := 0
			for _, n := range buf {
				if cur[n.Row*cols+n.Col] == core.Alive {
					live++
				}
			}
			idx := r*cols + c
			if rule.Next(cur[idx] == core.Alive, live) {
				out[idx] = core.Alive
			}
		}
	}
	return next
}
