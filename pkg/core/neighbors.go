package core

// Neighbors returns the in-bounds coordinates adjacent to (row, col) on a
// rows x cols grid. Edges do not wrap. Out-of-bounds input yields nil.
func Neighbors(row, col, rows, cols int) []Coordinate {
	return AppendNeighbors(nil, row, col, rows, cols)
}

// AppendNeighbors appends the neighbours of (row, col) to dst and returns the
// extended slice, letting hot loops reuse one buffer.
func AppendNeighbors(dst []Coordinate, row, col, rows, cols int) []Coordinate {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return dst
	}
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= cols {
				continue
			}
			dst = append(dst, Coordinate{Row: r, Col: c})
		}
	}
	return dst
}
