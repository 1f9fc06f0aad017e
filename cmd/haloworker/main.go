package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"halo-life/internal/rpcworker"
)

func main() {
	listen := flag.String("listen", ":8030", "address to accept coordinator connections on")
	verbose := flag.Bool("v", false, "log every served step")
	flag.Parse()

	ln, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("listen on %s: %v", *listen, err)
	}
	log.Printf("[worker] listening on %s", ln.Addr())

	srv := &rpcworker.Server{}
	if *verbose {
		srv.Logger = log.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rpcworker.Serve(ctx, ln, srv); err != nil && ctx.Err() == nil {
		log.Fatalf("[worker] serve: %v", err)
	}
	log.Printf("[worker] shutting down")
}
