// Package partition splits grid rows among workers and strips the borrowed
// halo rows from their results.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkers is returned when a plan is requested for fewer than one worker.
	ErrWorkers = errors.New("partition: worker count must be at least 1")
	// ErrPlan is returned by Validate when a plan breaks coverage or halo bounds.
	ErrPlan = errors.New("partition: invalid plan")
)

// Range is one worker's share of the grid. [OwnedStart, OwnedEnd) are the rows
// the worker produces; [SliceStart, SliceEnd) are the rows it receives, which
// include at most one halo row on each side.
type Range struct {
	OwnedStart, OwnedEnd int
	SliceStart, SliceEnd int
}

// Owned returns the number of rows the worker produces.
func (r Range) Owned() int { return r.OwnedEnd - r.OwnedStart }

// Len returns the number of rows sent to the worker.
func (r Range) Len() int { return r.SliceEnd - r.SliceStart }

// Empty reports whether the worker owns no rows.
func (r Range) Empty() bool { return r.OwnedEnd == r.OwnedStart }

// Halo returns the number of borrowed rows above and below the owned range.
func (r Range) Halo() (above, below int) {
	return r.OwnedStart - r.SliceStart, r.SliceEnd - r.OwnedEnd
}

// Plan assigns rows [0, rows) to workers in index order. Each worker owns
// rows/workers rows and the last one also takes the remainder. A worker gets a
// halo row on a side only when a neighbouring partition exists there. When
// workers > rows the surplus workers own nothing and receive an empty slice.
func Plan(rows, workers int) ([]Range, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%d workers: %w", workers, ErrWorkers)
	}
	if rows < 0 {
		rows = 0
	}
	division := rows / workers
	plan := make([]Range, workers)
	last := workers - 1
	for i := range plan {
		r := Range{OwnedStart: i * division, OwnedEnd: (i + 1) * division}
		if i == last {
			r.OwnedEnd = rows
		}
		r.SliceStart, r.SliceEnd = r.OwnedStart, r.OwnedEnd
		if r.Empty() {
			plan[i] = r
			continue
		}
		if i > 0 {
			r.SliceStart = max(0, r.OwnedStart-1)
		}
		if i < last {
			r.SliceEnd = min(rows, r.OwnedEnd+1)
		}
		plan[i] = r
	}
	return plan, nil
}

// Validate checks that plan covers [0, rows) exactly once in worker order and
// that every slice lies within the grid and contains its owned rows.
func Validate(plan []Range, rows int) error {
	if len(plan) == 0 {
		return fmt.Errorf("empty plan: %w", ErrPlan)
	}
	next := 0
	for i, r := range plan {
		if r.OwnedStart != next {
			return fmt.Errorf("worker %d owns from row %d, want %d: %w", i, r.OwnedStart, next, ErrPlan)
		}
		if r.OwnedEnd < r.OwnedStart {
			return fmt.Errorf("worker %d owned range [%d,%d) is inverted: %w", i, r.OwnedStart, r.OwnedEnd, ErrPlan)
		}
		if r.SliceStart < 0 || r.SliceEnd > rows || r.SliceStart > r.OwnedStart || r.OwnedEnd > r.SliceEnd {
			return fmt.Errorf("worker %d slice [%d,%d) does not bound owned [%d,%d) within %d rows: %w",
				i, r.SliceStart, r.SliceEnd, r.OwnedStart, r.OwnedEnd, rows, ErrPlan)
		}
		if above, below := r.Halo(); above > 1 || below > 1 {
			return fmt.Errorf("worker %d has halo %d above, %d below: %w", i, above, below, ErrPlan)
		}
		next = r.OwnedEnd
	}
	if next != rows {
		return fmt.Errorf("plan covers rows [0,%d), want [0,%d): %w", next, rows, ErrPlan)
	}
	return nil
}
