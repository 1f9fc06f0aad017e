package partition

import (
	"errors"
	"fmt"

	"halo-life/pkg/core"
)

// ErrTrim is returned when a worker result does not match its plan entry.
var ErrTrim = errors.New("partition: slice does not match plan")

// Trim drops the halo rows from worker's updated slice using only the row
// offsets recorded in plan, returning exactly the worker's owned rows.
func Trim(worker int, updated *core.Grid, plan []Range) (*core.Grid, error) {
	if worker < 0 || worker >= len(plan) {
		return nil, fmt.Errorf("worker %d not in plan of %d: %w", worker, len(plan), ErrTrim)
	}
	r := plan[worker]
	if updated == nil {
		return nil, fmt.Errorf("worker %d returned no slice: %w", worker, ErrTrim)
	}
	if updated.Rows() != r.Len() {
		return nil, fmt.Errorf("worker %d returned %d rows, plan sends %d: %w", worker, updated.Rows(), r.Len(), ErrTrim)
	}
	above, below := r.Halo()
	owned := updated.SubRows(above, updated.Rows()-below)
	if owned.Rows() != r.Owned() {
		return nil, fmt.Errorf("worker %d trimmed to %d rows, owns %d: %w", worker, owned.Rows(), r.Owned(), ErrTrim)
	}
	return owned, nil
}
