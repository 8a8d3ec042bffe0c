// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package brand implements the brand table model and its resolution
// semantics: an ordered list of brand-keyed literal arms terminated by a
// wildcard default, matched against the active brand with exact
// case-sensitive string equality.
package brand

import "fmt"

// Wildcard is the brand key marking the default arm of a table.
const Wildcard = "_"

// Arm is one entry of a brand table: a brand key and its literal value.
// The default arm carries the Wildcard key.
type Arm struct {
	Brand string
	Value Literal
}

// IsDefault reports whether the arm is the wildcard fallback.
func (a Arm) IsDefault() bool { return a.Brand == Wildcard }

// Table is the ordered brand-to-literal mapping for one generated constant.
type Table struct {
	// Name identifies the constant this table belongs to. It is only used
	// in error messages.
	Name string
	Arms []Arm
}

// Validate checks the structural invariants of the table:
// at least one arm, exactly one default arm in final position, a single
// literal kind shared by every arm, and no duplicate or empty brand keys.
func (t Table) Validate() error {
	if len(t.Arms) == 0 {
		return fmt.Errorf("constant %q: %w", t.Name, ErrEmptyTable)
	}

	kind := t.Arms[0].Value.Kind()
	seen := make(map[string]struct{}, len(t.Arms))
	defaults := 0

	for i, arm := range t.Arms {
		if arm.Value.Kind() != kind {
			return fmt.Errorf("constant %q: %w: arm %q is %s, arm %q is %s",
				t.Name, ErrKindMismatch,
				t.Arms[0].Brand, kind, arm.Brand, arm.Value.Kind())
		}
		if arm.IsDefault() {
			defaults++
			if defaults > 1 {
				return fmt.Errorf("constant %q: %w", t.Name, ErrMultipleDefaults)
			}
			if i != len(t.Arms)-1 {
				return fmt.Errorf("constant %q: %w (arm %q follows it)",
					t.Name, ErrDefaultNotLast, t.Arms[i+1].Brand)
			}
			continue
		}
		if arm.Brand == "" {
			return fmt.Errorf("constant %q: %w (arm %d)", t.Name, ErrEmptyBrand, i+1)
		}
		if _, dup := seen[arm.Brand]; dup {
			return fmt.Errorf("constant %q: %w: %q", t.Name, ErrDuplicateBrand, arm.Brand)
		}
		seen[arm.Brand] = struct{}{}
	}

	if defaults == 0 {
		return fmt.Errorf("constant %q: %w (add a %q arm)", t.Name, ErrNoDefaultArm, Wildcard)
	}
	return nil
}

// Kind returns the literal kind shared by the table's arms. It must only
// be called on a validated table.
func (t Table) Kind() Kind {
	return t.Arms[0].Value.Kind()
}

// Resolve returns the literal of the first keyed arm equal to activeBrand,
// or the default arm's literal when no keyed arm matches. Matching is exact
// and case sensitive; no normalization is applied. An empty activeBrand
// matches no keyed arm and therefore selects the default. Resolve is a pure
// function of its inputs.
func (t Table) Resolve(activeBrand string) (Literal, error) {
	if err := t.Validate(); err != nil {
		return Literal{}, err
	}
	for _, arm := range t.Arms {
		if arm.IsDefault() {
			return arm.Value, nil
		}
		if arm.Brand == activeBrand {
			return arm.Value, nil
		}
	}
	// Validate guarantees a default arm in final position.
	return Literal{}, fmt.Errorf("constant %q: %w", t.Name, ErrNoDefaultArm)
}
