// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestYAML = `package: appconfig
constants:
  - name: Endpoint
    kind: string
    arms:
      Northwind: https://northwind.example.com/
      Contoso: https://contoso.example.com/
      _: https://example.com/
`

func writeTestManifest(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "brands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifestYAML), 0600))
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	code, _, stderr := runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Contoso")
	assert.Equal(t, 0, code, "stderr: %s", stderr)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"https://contoso.example.com/"`)
}

func TestRun_BrandFromEnv(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	t.Setenv(brandEnvVar, "Northwind")
	code, _, stderr := runCLI(t, "-manifest", mPath, "-out", outPath)
	assert.Equal(t, 0, code, "stderr: %s", stderr)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"https://northwind.example.com/"`)
}

func TestRun_FlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	t.Setenv(brandEnvVar, "Northwind")
	code, _, _ := runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Contoso")
	assert.Equal(t, 0, code)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"https://contoso.example.com/"`)
}

func TestRun_UnsetBrandIsHardError(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	t.Setenv(brandEnvVar, "")
	code, _, stderr := runCLI(t, "-manifest", mPath, "-out", outPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "active brand is not set")
	assert.Contains(t, stderr, brandEnvVar)

	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "nothing may be generated without a brand")
}

func TestRun_UnmatchedBrandIsNotAnError(t *testing.T) {
	// A brand that matches no keyed arm resolves via the default arm.
	// This must stay distinguishable from the unset-brand failure above.
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	code, _, stderr := runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Fabrikam")
	assert.Equal(t, 0, code, "stderr: %s", stderr)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"https://example.com/"`)
}

func TestRun_ValidateMode(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)

	// Validation needs no brand and no output path.
	code, stdout, _ := runCLI(t, "-manifest", mPath, "-validate")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "is valid")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("package: appconfig\nconstants:\n  - name: A\n    arms:\n      Northwind: 1\n"), 0600))
	code, _, stderr := runCLI(t, "-manifest", bad, "-validate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "default arm")
}

func TestRun_CheckMode(t *testing.T) {
	dir := t.TempDir()
	mPath := writeTestManifest(t, dir)
	outPath := filepath.Join(dir, "brands_gen.go")

	code, _, stderr := runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Northwind", "-check")
	assert.Equal(t, 1, code, "missing output must be stale")
	assert.Contains(t, stderr, "stale")

	code, _, _ = runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Northwind")
	require.Equal(t, 0, code)

	code, stdout, _ := runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Northwind", "-check")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "up to date")

	code, _, _ = runCLI(t, "-manifest", mPath, "-out", outPath, "-brand", "Contoso", "-check")
	assert.Equal(t, 1, code, "different brand means stale output")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no flags", args: nil},
		{name: "missing out", args: []string{"-manifest", "brands.yaml", "-brand", "Northwind"}},
		{name: "unknown flag", args: []string{"-frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "-version")
	assert.Equal(t, 0, code)
	assert.Equal(t, Version, strings.TrimSpace(stdout))
}
