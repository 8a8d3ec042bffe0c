// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package brand

import "fmt"

// Kind identifies the literal kind shared by every arm of a brand table.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindChar
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	default:
		return "unknown"
	}
}

// GoType returns the Go type name used when emitting a constant of this kind.
func (k Kind) GoType() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindChar:
		return "rune"
	default:
		return ""
	}
}

// ParseKind maps a manifest kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "bool":
		return KindBool, nil
	case "char":
		return KindChar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
