// Package main prints a random ten-pin bowling scoreboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	bowlingcmd "github.com/louisbranch/bowling/internal/cmd/bowling"
	"github.com/louisbranch/bowling/internal/platform/config"
)

func main() {
	cfg, err := bowlingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BOWLING] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bowlingcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("bowling: %v", err)
	}
}
