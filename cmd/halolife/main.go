package main

import (
	"context"
	"flag"
	"log"

	"halo-life/internal/runner"
)

func main() {
	cfg := runner.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, err := runner.Run(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}
