// Package rpcworker runs update workers in separate processes over net/rpc.
package rpcworker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/rpc"

	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Server is the RPC receiver exposed by a worker process. It holds no grid
// state between calls.
type Server struct {
	// Logger, when set, receives one line per served step.
	Logger *log.Logger
}

// Step computes the next generation of the slice in req.
func (s *Server) Step(req StepRequest, resp *StepResponse) error {
	rule, err := kernel.Lookup(req.Rule)
	if err != nil {
		return err
	}
	slice, err := core.FromCells(req.Rows, req.Cols, req.Cells)
	if err != nil {
		return fmt.Errorf("decode slice: %w", err)
	}
	next := kernel.Step(slice, rule)
	resp.Rows, resp.Cols, resp.Cells = next.Rows(), next.Cols(), next.Cells()
	if s.Logger != nil {
		s.Logger.Printf("stepped %dx%d slice (%s), %d alive", next.Rows(), next.Cols(), rule, next.Alive())
	}
	return nil
}

// Serve accepts connections on ln and serves srv on each until ctx is done or
// Accept fails. It closes ln before returning.
func Serve(ctx context.Context, ln net.Listener, srv *Server) error {
	rs := rpc.NewServer()
	if err := rs.RegisterName(ServiceName, srv); err != nil {
		ln.Close()
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			return err
		}
		go rs.ServeConn(conn)
	}
}
