// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// brandgen is a build-time generator for white-label builds: it resolves a
// YAML brand manifest against the active brand and emits a Go constants
// file. It is the substitution step a compile-time macro would perform in
// languages that have one, made explicit so it can be wired into
// go:generate:
//
//	//go:generate brandgen -manifest brands.yaml -out brands_gen.go
//
// Usage:
//
//	brandgen -manifest brands.yaml -out brands_gen.go -brand Northwind
//	brandgen -manifest brands.yaml -out brands_gen.go -check
//	brandgen -manifest brands.yaml -validate
//
// The active brand comes from -brand, falling back to the WHITE_LABEL_BRAND
// environment variable. An unset brand is a hard error: silent fallback to
// the default arms could mask a misconfigured build.
//
// Exit codes:
//   - 0: success
//   - 1: manifest or generation error
//   - 2: usage error (missing required flag)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/whitelabel-go/whitelabel/internal/brand"
	"github.com/whitelabel-go/whitelabel/internal/gen"
	"github.com/whitelabel-go/whitelabel/internal/manifest"
)

var Version = "dev"

// brandEnvVar supplies the active brand when -brand is not given.
const brandEnvVar = "WHITE_LABEL_BRAND"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brandgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		manifestPath = fs.String("manifest", "", "path to the brand manifest YAML file")
		outPath      = fs.String("out", "", "path of the generated Go file")
		activeBrand  = fs.String("brand", "", "active brand (defaults to "+brandEnvVar+")")
		checkMode    = fs.Bool("check", false, "verify the generated file is current, write nothing")
		validateOnly = fs.Bool("validate", false, "validate the manifest and exit")
		watchMode    = fs.Bool("watch", false, "regenerate whenever the manifest changes")
		showVersion  = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	if *manifestPath == "" {
		fmt.Fprintln(stderr, "Error: -manifest is required")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  brandgen -manifest brands.yaml -out brands_gen.go -brand Northwind")
		fmt.Fprintln(stderr, "  brandgen -manifest brands.yaml -validate")
		return 2
	}

	if *validateOnly {
		if _, err := manifest.Load(*manifestPath); err != nil {
			fmt.Fprintf(stderr, "Manifest error in %s:\n", *manifestPath)
			fmt.Fprintf(stderr, "  %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "✓ %s is valid\n", *manifestPath)
		return 0
	}

	if *outPath == "" {
		fmt.Fprintln(stderr, "Error: -out is required")
		return 2
	}

	brandName := *activeBrand
	if brandName == "" {
		brandName = os.Getenv(brandEnvVar)
	}
	if brandName == "" {
		fmt.Fprintf(stderr, "brandgen: %v: pass -brand or set %s\n", brand.ErrUnsetBrand, brandEnvVar)
		return 1
	}

	g := gen.New(*manifestPath, *outPath, brandName)

	switch {
	case *checkMode:
		if err := g.Check(); err != nil {
			if errors.Is(err, gen.ErrStale) {
				fmt.Fprintf(stderr, "brandgen: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "brandgen: check failed: %v\n", err)
			}
			return 1
		}
		fmt.Fprintf(stdout, "✓ %s is up to date\n", *outPath)
		return 0

	case *watchMode:
		if err := g.Run(); err != nil {
			fmt.Fprintf(stderr, "brandgen: %v\n", err)
			return 1
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := g.Watch(ctx); err != nil {
			fmt.Fprintf(stderr, "brandgen: %v\n", err)
			return 1
		}
		return 0

	default:
		if err := g.Run(); err != nil {
			fmt.Fprintf(stderr, "brandgen: %v\n", err)
			return 1
		}
		return 0
	}
}
