// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package brand

import "errors"

var (
	// ErrEmptyTable classifies tables with no arms at all.
	ErrEmptyTable = errors.New("brand table is empty")

	// ErrNoDefaultArm classifies tables missing the wildcard fallback arm.
	ErrNoDefaultArm = errors.New("brand table has no default arm")

	// ErrDefaultNotLast classifies tables where keyed arms follow the
	// default arm. Such arms would be unreachable, so they are rejected.
	ErrDefaultNotLast = errors.New("default arm must be the last arm")

	// ErrMultipleDefaults classifies tables with more than one wildcard arm.
	ErrMultipleDefaults = errors.New("brand table has more than one default arm")

	// ErrDuplicateBrand classifies tables that list the same brand key twice.
	// Duplicates are rejected outright rather than resolved first-match.
	ErrDuplicateBrand = errors.New("duplicate brand key")

	// ErrEmptyBrand classifies arms whose brand key is the empty string.
	ErrEmptyBrand = errors.New("empty brand key")

	// ErrKindMismatch classifies tables mixing literal kinds across arms.
	ErrKindMismatch = errors.New("literal kind mismatch")

	// ErrUnknownKind classifies unrecognised kind names in a manifest.
	ErrUnknownKind = errors.New("unknown literal kind")

	// ErrUnsetBrand is returned when no active brand was supplied at all.
	// This is distinct from a brand that is set but matches no keyed arm;
	// the latter resolves to the default and is not an error.
	ErrUnsetBrand = errors.New("active brand is not set")
)
