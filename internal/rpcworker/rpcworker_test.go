package rpcworker

import (
	"context"
	"net"
	"testing"

	"halo-life/pkg/coordinator"
	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

func startWorker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, &Server{}) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil && err != context.Canceled {
			t.Errorf("Serve: %v", err)
		}
	})
	return ln.Addr().String()
}

func TestRemoteWorkersMatchLocal(t *testing.T) {
	addrs := []string{startWorker(t), startWorker(t), startWorker(t)}
	workers, err := DialAll(addrs)
	if err != nil {
		t.Fatalf("DialAll: %v", err)
	}
	remote, err := coordinator.New(workers)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer remote.Close()
	local, _ := coordinator.New(coordinator.LocalWorkers(1))

	start := core.NewGrid(20, 13)
	core.NewRNG(99).Fill(start, 40)

	want, err := local.Run(context.Background(), start, 8, nil)
	if err != nil {
		t.Fatalf("local Run: %v", err)
	}
	got, err := remote.Run(context.Background(), start, 8, nil)
	if err != nil {
		t.Fatalf("remote Run: %v", err)
	}
	if !got.Equal(want) {
		t.Fatal("remote workers diverged from a single local worker")
	}
}

func TestRemoteRuleAndEmptySlice(t *testing.T) {
	c, err := Dial(startWorker(t))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	empty, err := c.Step(context.Background(), core.NewGrid(0, 7), kernel.Conway)
	if err != nil {
		t.Fatalf("empty Step: %v", err)
	}
	if empty.Rows() != 0 || empty.Cols() != 7 {
		t.Fatalf("empty Step returned %dx%d", empty.Rows(), empty.Cols())
	}

	seeds := kernel.MustParse("B2/S")
	g := core.NewGrid(4, 4)
	g.Set(1, 1, core.Alive)
	g.Set(1, 2, core.Alive)
	got, err := c.Step(context.Background(), g, seeds)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if want := kernel.Step(g, seeds); !got.Equal(want) {
		t.Fatalf("remote seeds = %v, want %v", got.AliveCells(), want.AliveCells())
	}
}

func TestServerRejectsBadRequests(t *testing.T) {
	var s Server
	var resp StepResponse
	if err := s.Step(StepRequest{Rule: "bogus", Rows: 1, Cols: 1, Cells: []uint8{0}}, &resp); err == nil {
		t.Fatal("bogus rule accepted")
	}
	if err := s.Step(StepRequest{Rule: "life", Rows: 2, Cols: 2, Cells: []uint8{0}}, &resp); err == nil {
		t.Fatal("short cell buffer accepted")
	}
	if err := s.Step(StepRequest{Rule: "life", Rows: 1 << 32, Cols: 1 << 32}, &resp); err == nil {
		t.Fatal("overflowing dimensions accepted")
	}
	if err := s.Step(StepRequest{Rule: "life", Rows: -2, Cols: -3, Cells: make([]uint8, 6)}, &resp); err == nil {
		t.Fatal("negative dimensions accepted")
	}
}

func TestStepHonoursCancelledContext(t *testing.T) {
	c, err := Dial(startWorker(t))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The call may already have completed; either a result or ctx error is fine,
	// but it must not block.
	if _, err := c.Step(ctx, core.NewGrid(3, 3), kernel.Conway); err != nil && err != context.Canceled {
		t.Fatalf("err = %v", err)
	}
}

func TestDialAllFailsFast(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	dead := ln.Addr().String()
	ln.Close()
	if _, err := DialAll([]string{startWorker(t), dead}); err == nil {
		t.Fatal("DialAll succeeded with an unreachable worker")
	}
}
