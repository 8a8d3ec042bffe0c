// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package manifest

import "errors"

var (
	// ErrMalformed classifies structural YAML problems: wrong node kinds,
	// missing required fields, non-scalar arm values.
	ErrMalformed = errors.New("malformed manifest")

	// ErrUnknownField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownField) instead of string matching.
	ErrUnknownField = errors.New("unknown manifest field")

	// ErrBadIdentifier classifies package or constant names that are not
	// valid Go identifiers.
	ErrBadIdentifier = errors.New("not a valid Go identifier")

	// ErrNoConstants classifies manifests declaring no constants at all.
	ErrNoConstants = errors.New("manifest declares no constants")

	// ErrDuplicateConstant classifies repeated constant names.
	ErrDuplicateConstant = errors.New("duplicate constant name")

	// ErrBadLiteral classifies arm values that cannot be parsed as the
	// declared (or inferred) literal kind.
	ErrBadLiteral = errors.New("literal does not match kind")
)
