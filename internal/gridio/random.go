package gridio

import (
	"fmt"
	"strconv"
	"strings"

	"halo-life/pkg/core"
)

// Random returns a rows x cols grid where each cell is alive with probability
// density/100. The same seed always yields the same grid.
func Random(rows, cols int, seed int64, density int) *core.Grid {
	g := core.NewGrid(rows, cols)
	core.NewRNG(seed).Fill(g, density)
	return g
}

// ParseSize reads dimensions written as "WxH" and returns columns and rows.
func ParseSize(s string) (cols, rows int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	cols, err = strconv.Atoi(w)
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("size %q: invalid width", s)
	}
	rows, err = strconv.Atoi(h)
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("size %q: invalid height", s)
	}
	return cols, rows, nil
}
