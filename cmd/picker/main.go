// Package main starts the recipient picker web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	pickercmd "github.com/louisbranch/recipients/internal/cmd/picker"
	entrypoint "github.com/louisbranch/recipients/internal/platform/cmd"
)

func main() {
	if err := entrypoint.LoadDotEnv(); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := pickercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pickercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
