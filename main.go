package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/driver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("bounded-life: %v", err)
	}
}

func run(args []string) error {
	config, opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.list {
		listPatterns(os.Stdout)
		return nil
	}

	grid, err := driver.NewGrid(config)
	if err != nil {
		return err
	}

	renderer, closeRenderer, err := newRenderer(config, os.Stdout)
	if err != nil {
		return err
	}
	displayGameInfo(os.Stdout, config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := driver.New(grid, renderer, config).Run(ctx)
	closeRenderer()
	if err != nil {
		return errors.Wrap(err, "[run] simulation failed")
	}

	displaySummary(os.Stdout, result)
	return nil
}
