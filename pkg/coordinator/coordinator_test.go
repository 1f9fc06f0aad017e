package coordinator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
	"halo-life/pkg/partition"
)

func mustLocal(t testing.TB, n int, opts ...Option) *Coordinator {
	t.Helper()
	c, err := New(LocalWorkers(n), opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return c
}

func gridWith(rows, cols int, alive ...core.Coordinate) *core.Grid {
	g := core.NewGrid(rows, cols)
	for _, c := range alive {
		g.Set(c.Row, c.Col, core.Alive)
	}
	return g
}

func TestStableBlockSingleWorker(t *testing.T) {
	block := gridWith(4, 4, core.Coordinate{Row: 1, Col: 1}, core.Coordinate{Row: 1, Col: 2}, core.Coordinate{Row: 2, Col: 1}, core.Coordinate{Row: 2, Col: 2})
	next, err := mustLocal(t, 1).Advance(context.Background(), block)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !next.Equal(block) {
		t.Fatalf("block changed: %v", next.AliveCells())
	}
}

func TestBlinkerOscillatesAcrossPartitions(t *testing.T) {
	horizontal := gridWith(5, 5, core.Coordinate{Row: 2, Col: 1}, core.Coordinate{Row: 2, Col: 2}, core.Coordinate{Row: 2, Col: 3})
	vertical := gridWith(5, 5, core.Coordinate{Row: 1, Col: 2}, core.Coordinate{Row: 2, Col: 2}, core.Coordinate{Row: 3, Col: 2})

	for _, workers := range []int{1, 2, 3, 5} {
		c := mustLocal(t, workers)
		next, err := c.Advance(context.Background(), horizontal)
		if err != nil {
			t.Fatalf("W=%d Advance: %v", workers, err)
		}
		if !next.Equal(vertical) {
			t.Fatalf("W=%d after one generation alive = %v, want %v", workers, next.AliveCells(), vertical.AliveCells())
		}
		next, err = c.Advance(context.Background(), next)
		if err != nil {
			t.Fatalf("W=%d Advance: %v", workers, err)
		}
		if !next.Equal(horizontal) {
			t.Fatalf("W=%d after two generations alive = %v, want %v", workers, next.AliveCells(), horizontal.AliveCells())
		}
	}
}

func TestWorkerCountDoesNotChangeResult(t *testing.T) {
	start := core.NewGrid(23, 17)
	core.NewRNG(2024).Fill(start, 35)

	ref, err := mustLocal(t, 1).Run(context.Background(), start, 12, nil)
	if err != nil {
		t.Fatalf("W=1 Run: %v", err)
	}
	for _, workers := range []int{2, 3, 4, 5, 7, 11, 23, 30} {
		got, err := mustLocal(t, workers).Run(context.Background(), start, 12, nil)
		if err != nil {
			t.Fatalf("W=%d Run: %v", workers, err)
		}
		if !got.Equal(ref) {
			t.Fatalf("W=%d final grid differs from W=1", workers)
		}
	}
}

func TestMatchesWholeGridStep(t *testing.T) {
	world := core.NewGrid(16, 16)
	// Vertical bar crossing partition boundaries plus a horizontal arm.
	for _, c := range []core.Coordinate{{Row: 6, Col: 5}, {Row: 7, Col: 5}, {Row: 8, Col: 5}, {Row: 9, Col: 5}, {Row: 7, Col: 4}, {Row: 7, Col: 6}} {
		world.Set(c.Row, c.Col, core.Alive)
	}
	c := mustLocal(t, 4)
	for turn := 0; turn < 50; turn++ {
		golden := kernel.Step(world, kernel.Conway)
		got, err := c.Advance(context.Background(), world)
		if err != nil {
			t.Fatalf("turn %d: %v", turn+1, err)
		}
		if !got.Equal(golden) {
			for r := 0; r < golden.Rows(); r++ {
				for col := 0; col < golden.Cols(); col++ {
					if got.At(r, col) != golden.At(r, col) {
						t.Fatalf("mismatch at turn %d cell (%d,%d): partitioned=%d whole=%d", turn+1, r, col, got.At(r, col), golden.At(r, col))
					}
				}
			}
		}
		world = golden
	}
}

func TestMoreWorkersThanRows(t *testing.T) {
	g := gridWith(3, 6, core.Coordinate{Row: 1, Col: 1}, core.Coordinate{Row: 1, Col: 2}, core.Coordinate{Row: 1, Col: 3})
	want := kernel.Step(g, kernel.Conway)
	got, err := mustLocal(t, 8).Advance(context.Background(), g)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("W>R result %v, want %v", got.AliveCells(), want.AliveCells())
	}
}

func TestAdvanceLeavesInputUntouched(t *testing.T) {
	g := core.NewGrid(9, 9)
	core.NewRNG(5).Fill(g, 50)
	before := g.Clone()
	if _, err := mustLocal(t, 3).Advance(context.Background(), g); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !g.Equal(before) {
		t.Fatal("Advance mutated the previous generation")
	}
}

func TestZeroRowGrid(t *testing.T) {
	got, err := mustLocal(t, 3).Advance(context.Background(), core.NewGrid(0, 4))
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.Rows() != 0 || got.Cols() != 4 {
		t.Fatalf("got %dx%d, want 0x4", got.Rows(), got.Cols())
	}
}

type failingWorker struct{ err error }

func (f failingWorker) Step(context.Context, *core.Grid, kernel.Rule) (*core.Grid, error) {
	return nil, f.err
}

type shortWorker struct{}

func (shortWorker) Step(_ context.Context, slice *core.Grid, _ kernel.Rule) (*core.Grid, error) {
	return core.NewGrid(slice.Rows()+1, slice.Cols()), nil
}

type nilWorker struct{}

func (nilWorker) Step(context.Context, *core.Grid, kernel.Rule) (*core.Grid, error) {
	return nil, nil
}

type hangingWorker struct{ release chan struct{} }

func (h hangingWorker) Step(context.Context, *core.Grid, kernel.Rule) (*core.Grid, error) {
	<-h.release
	return nil, errors.New("released")
}

func TestWorkerErrorFailsGeneration(t *testing.T) {
	boom := errors.New("boom")
	c, _ := New([]Worker{Local{}, failingWorker{err: boom}, Local{}})
	if _, err := c.Advance(context.Background(), core.NewGrid(9, 3)); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestMisshapenResultIsRejected(t *testing.T) {
	c, _ := New([]Worker{Local{}, shortWorker{}})
	if _, err := c.Advance(context.Background(), core.NewGrid(6, 3)); !errors.Is(err, partition.ErrTrim) {
		t.Fatalf("err = %v, want ErrTrim", err)
	}
	c, _ = New([]Worker{nilWorker{}, Local{}})
	if _, err := c.Advance(context.Background(), core.NewGrid(6, 3)); !errors.Is(err, partition.ErrTrim) {
		t.Fatalf("nil result err = %v, want ErrTrim", err)
	}
}

func TestTimeoutBoundsGather(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	c, _ := New([]Worker{Local{}, hangingWorker{release: release}}, WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := c.Advance(context.Background(), core.NewGrid(6, 3))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Advance took %s despite timeout", elapsed)
	}
}

func TestRunObservesEveryGeneration(t *testing.T) {
	g := gridWith(5, 5, core.Coordinate{Row: 2, Col: 1}, core.Coordinate{Row: 2, Col: 2}, core.Coordinate{Row: 2, Col: 3})
	var seen []int
	final, err := mustLocal(t, 2).Run(context.Background(), g, 4, func(gen int, next *core.Grid) error {
		seen = append(seen, gen)
		if next.Alive() != 3 {
			return fmt.Errorf("generation %d has %d alive", gen, next.Alive())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seen) != 4 || seen[0] != 1 || seen[3] != 4 {
		t.Fatalf("observed generations %v", seen)
	}
	if !final.Equal(g) {
		t.Fatal("blinker did not return to its phase after an even number of generations")
	}

	stop := errors.New("stop")
	_, err = mustLocal(t, 2).Run(context.Background(), g, 10, func(gen int, _ *core.Grid) error {
		if gen == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Run err = %v, want stop", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := mustLocal(t, 2).Run(ctx, core.NewGrid(4, 4), 3, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want Canceled", err)
	}
}

func TestNewRejectsEmptyWorkerSet(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoWorkers) {
		t.Fatalf("err = %v, want ErrNoWorkers", err)
	}
	if _, err := New(LocalWorkers(-1)); !errors.Is(err, ErrNoWorkers) {
		t.Fatalf("LocalWorkers(-1): err = %v, want ErrNoWorkers", err)
	}
}

type closingWorker struct {
	Local
	closed *int
}

func (w closingWorker) Close() error {
	*w.closed++
	return nil
}

func TestCloseReleasesClosers(t *testing.T) {
	closed := 0
	c, _ := New([]Worker{Local{}, closingWorker{closed: &closed}, closingWorker{closed: &closed}})
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if closed != 2 {
		t.Fatalf("closed %d workers, want 2", closed)
	}
}

func TestRuleOption(t *testing.T) {
	seeds := kernel.MustParse("B2/S")
	c := mustLocal(t, 2, WithRule(seeds))
	if c.Rule() != seeds || c.Workers() != 2 {
		t.Fatalf("Rule = %v, Workers = %d", c.Rule(), c.Workers())
	}
	g := gridWith(4, 4, core.Coordinate{Row: 1, Col: 1}, core.Coordinate{Row: 1, Col: 2})
	got, err := c.Advance(context.Background(), g)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if want := kernel.Step(g, seeds); !got.Equal(want) {
		t.Fatalf("seeds result %v, want %v", got.AliveCells(), want.AliveCells())
	}
}

// BenchmarkAdvance varies the worker count over a fixed board.
func BenchmarkAdvance(b *testing.B) {
	g := core.NewGrid(512, 512)
	core.NewRNG(1).Fill(g, 30)
	for _, workers := range []int{1, 2, 4, 8, 16} {
		c := mustLocal(b, workers)
		b.Run(fmt.Sprintf("512x512-%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := c.Advance(context.Background(), g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
