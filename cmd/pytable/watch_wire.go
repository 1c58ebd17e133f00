package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/biswanathroul/pytable-formatter/internal/watch"
	"github.com/biswanathroul/pytable-formatter/table"
	"github.com/biswanathroul/pytable-formatter/tui"
)

var styleWatchStatus = lipgloss.NewStyle().Faint(true)

// bridgeChanges drains a watcher into a plain change channel for the viewer,
// logging watch errors along the way. The returned channel closes when the
// watcher does.
func bridgeChanges(w *watch.Watcher, logger *slog.Logger) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		changes, errs := w.Changes(), w.Errors()
		for changes != nil {
			select {
			case _, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Warn("watch error", slog.String("error", err.Error()))
			}
		}
	}()
	return out
}

// watchLoop renders once, then re-renders on every change event until the
// context is cancelled or the watcher closes. A render failure keeps the
// loop alive: the file is usually mid-edit and the next change fixes it.
func watchLoop(ctx context.Context, w *watch.Watcher, src tui.Source, opts table.Options, width int, logger *slog.Logger) {
	render := func() {
		tbl, err := src(opts)
		if err != nil {
			logger.Error("render failed", slog.String("error", err.Error()))
			return
		}
		out, err := tbl.Render(width)
		if err != nil {
			logger.Error("render failed", slog.String("error", err.Error()))
			return
		}
		fmt.Print("\x1b[2J\x1b[H")
		if out != "" {
			fmt.Println(out)
		}
		fmt.Println(styleWatchStatus.Render("watching for changes (ctrl+c quits)"))
	}

	render()
	changes, errs := w.Changes(), w.Errors()
	for changes != nil {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			logger.Debug("input changed, re-rendering")
			render()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}
