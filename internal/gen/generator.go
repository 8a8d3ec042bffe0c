// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/whitelabel-go/whitelabel/internal/log"
	"github.com/whitelabel-go/whitelabel/internal/manifest"
)

// ErrStale is returned by Check when the generated file on disk does not
// match what the manifest and active brand would produce now.
var ErrStale = errors.New("generated file is stale")

// Generator ties a manifest path, an output path and an active brand
// together for one generation run.
type Generator struct {
	ManifestPath string
	OutPath      string
	Brand        string

	logger zerolog.Logger
}

// New returns a Generator for the given paths and active brand.
func New(manifestPath, outPath, activeBrand string) *Generator {
	return &Generator{
		ManifestPath: manifestPath,
		OutPath:      outPath,
		Brand:        activeBrand,
		logger:       log.WithComponent("gen"),
	}
}

// render loads the manifest and produces the generated source.
func (g *Generator) render() ([]byte, error) {
	m, err := manifest.Load(g.ManifestPath)
	if err != nil {
		return nil, err
	}
	return Render(m, g.Brand)
}

// Run regenerates the output file. The write is atomic and durable: either
// the complete new file replaces the old one, or nothing changes on disk.
func (g *Generator) Run() error {
	g.logger.Debug().
		Str("event", "generate.start").
		Str("manifest", g.ManifestPath).
		Str("brand", g.Brand).
		Msg("generating brand constants")

	src, err := g.render()
	if err != nil {
		return err
	}
	if err := writeAtomic(g.OutPath, src); err != nil {
		return err
	}

	g.logger.Info().
		Str("event", "generate.done").
		Str("path", g.OutPath).
		Str("brand", g.Brand).
		Msg("brand constants written")
	return nil
}

// Check regenerates in memory and compares against the file on disk without
// writing anything. A missing output file counts as stale.
func (g *Generator) Check() error {
	src, err := g.render()
	if err != nil {
		return err
	}
	disk, err := os.ReadFile(g.OutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrStale, g.OutPath)
		}
		return fmt.Errorf("read generated file: %w", err)
	}
	if !bytes.Equal(disk, src) {
		return fmt.Errorf("%w: %s (rerun brandgen)", ErrStale, g.OutPath)
	}
	return nil
}

// writeAtomic writes src to path with full durability guarantees using
// renameio: temp file, fsync, atomic rename, cleanup on error.
func writeAtomic(path string, src []byte) error {
	logger := log.WithComponent("gen")

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// Cleanup removes the temp file if it was not committed.
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending file")
		}
	}()

	if _, err := pending.Write(src); err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace generated file: %w", err)
	}
	return nil
}
