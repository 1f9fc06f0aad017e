package rpcworker

import (
	"context"
	"errors"
	"fmt"
	"net/rpc"

	"halo-life/pkg/coordinator"
	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Client is a coordinator.Worker backed by a remote worker process.
type Client struct {
	addr string
	rpc  *rpc.Client
}

// Dial connects to the worker process listening on addr.
func Dial(addr string) (*Client, error) {
	c, err := rpc.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial worker %s: %w", addr, err)
	}
	return &Client{addr: addr, rpc: c}, nil
}

// DialAll connects to every address in order. On failure it closes the
// connections already made.
func DialAll(addrs []string) ([]coordinator.Worker, error) {
	workers := make([]coordinator.Worker, 0, len(addrs))
	for _, addr := range addrs {
		c, err := Dial(addr)
		if err != nil {
			for _, w := range workers {
				w.(*Client).Close()
			}
			return nil, err
		}
		workers = append(workers, c)
	}
	return workers, nil
}

// Step sends slice to the worker and waits for its result or for ctx.
func (c *Client) Step(ctx context.Context, slice *core.Grid, rule kernel.Rule) (*core.Grid, error) {
	req := StepRequest{Rule: rule.String(), Rows: slice.Rows(), Cols: slice.Cols(), Cells: slice.Cells()}
	var resp StepResponse
	call := c.rpc.Go(stepMethod, req, &resp, make(chan *rpc.Call, 1))
	select {
	case <-call.Done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if call.Error != nil {
		return nil, fmt.Errorf("%s: %w", c.addr, call.Error)
	}
	if resp.Rows != slice.Rows() || resp.Cols != slice.Cols() {
		return nil, fmt.Errorf("%s: returned %dx%d for %dx%d slice", c.addr, resp.Rows, resp.Cols, slice.Rows(), slice.Cols())
	}
	return core.FromCells(resp.Rows, resp.Cols, resp.Cells)
}

// Close closes the connection.
func (c *Client) Close() error {
	if err := c.rpc.Close(); err != nil && !errors.Is(err, rpc.ErrShutdown) {
		return err
	}
	return nil
}
