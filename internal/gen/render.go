// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package gen renders resolved brand constants into a generated Go source
// file and keeps that file current (single-shot, check and watch modes).
package gen

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/whitelabel-go/whitelabel/internal/manifest"
)

// Render resolves every constant of the manifest against activeBrand and
// returns the formatted source of the generated file. Rendering is pure:
// same manifest and brand, same bytes.
func Render(m *manifest.Manifest, activeBrand string) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by brandgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", m.Package)

	b.WriteString("const (\n")
	if m.BrandConstant != "" {
		fmt.Fprintf(&b, "\t%s string = %q\n", m.BrandConstant, activeBrand)
	}
	for _, c := range m.Constants {
		lit, err := c.Table.Resolve(activeBrand)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "\t%s %s = %s\n", c.Name, lit.Kind().GoType(), lit.GoSource())
	}
	b.WriteString(")\n")

	src, err := imports.Process("generated.go", []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
