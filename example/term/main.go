// Term shows a layout file in the terminal.
//
//	go run ./example/term/ -layout example/layout.hcl
//
// Drag the │ gutters with the mouse. Escape cancels a drag or quits,
// Ctrl+C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/panelarea"
	"github.com/go-theft-auto/panelarea/backend/terminal"
	"github.com/go-theft-auto/panelarea/config"
)

func main() {
	layoutPath := flag.String("layout", "example/layout.hcl", "HCL layout file")
	areaName := flag.String("area", "", "area block to show (default: first)")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*layoutPath, *areaName, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutPath, areaName, logPath string) error {
	// The terminal owns stdout and stderr while running.
	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		panelarea.SetVerbose(true)
	}
	panelarea.SetLogger(logger)

	file, err := config.Load(layoutPath)
	if err != nil {
		return err
	}
	block := file.Root()
	if areaName != "" {
		block = file.Area(areaName)
	}
	if block == nil {
		return fmt.Errorf("layout %s: no area %q", layoutPath, areaName)
	}

	// One cell of gap holds the one-cell gutter.
	gutter, gap := 1.0, 1.0
	applyCells(block, gutter, gap)
	root := block.Build()
	defer root.Destroy()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := terminal.New(screen, root, terminal.WithLogger(logger))
	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// applyCells rewrites pixel spacing to cell spacing for a whole area tree.
func applyCells(a *config.AreaBlock, gutter, gap float64) {
	a.GutterSize = &gutter
	a.Gap = &gap
	for _, r := range a.Regions {
		if r.AutoLength != nil {
			cells := *r.AutoLength / 8
			r.AutoLength = &cells
		}
		if r.Area != nil {
			applyCells(r.Area, gutter, gap)
		}
	}
}
