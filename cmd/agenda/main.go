// Package main starts the public agenda web service.
//
// This process owns the schedule and changelog pages, the schedule export
// surface, and the changelog ingest API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	agendacmd "github.com/callboard/callboard/internal/cmd/agenda"
)

func main() {
	cfg, err := agendacmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[AGENDA] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := agendacmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
