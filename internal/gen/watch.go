// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDuration coalesces rapid editor write bursts into one regeneration.
const debounceDuration = 500 * time.Millisecond

// Watch blocks, regenerating the output whenever the manifest changes,
// until ctx is cancelled. A failing regeneration is logged and does not
// stop the watch; the previous generated file stays in place.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(g.ManifestPath); err != nil {
		return fmt.Errorf("watch manifest: %w", err)
	}

	g.logger.Info().
		Str("event", "watch.started").
		Str("path", g.ManifestPath).
		Msg("watching manifest for changes")

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			g.logger.Info().Str("event", "watch.stopped").Msg("manifest watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				if debounce == nil {
					debounce = time.NewTimer(debounceDuration)
				} else {
					debounce.Reset(debounceDuration)
				}
				fire = debounce.C

			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Editors replace files via rename; re-add the path so the
				// watch follows the new inode.
				if err := watcher.Add(g.ManifestPath); err != nil {
					g.logger.Warn().
						Err(err).
						Str("event", "watch.readd_failed").
						Msg("manifest disappeared, waiting for it to return")
					continue
				}
				if debounce == nil {
					debounce = time.NewTimer(debounceDuration)
				} else {
					debounce.Reset(debounceDuration)
				}
				fire = debounce.C
			}

		case <-fire:
			fire = nil
			if err := g.Run(); err != nil {
				g.logger.Error().
					Err(err).
					Str("event", "watch.regenerate_failed").
					Msg("regeneration failed, keeping previous output")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.logger.Error().Err(err).Str("event", "watch.error").Msg("watcher error")
		}
	}
}
