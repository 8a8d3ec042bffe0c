// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package brand

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Literal is a typed constant value carried by one arm of a brand table.
// A Literal is immutable after construction.
type Literal struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	r    rune
}

func StringLit(v string) Literal { return Literal{kind: KindString, str: v} }
func IntLit(v int64) Literal     { return Literal{kind: KindInt, i: v} }
func FloatLit(v float64) Literal { return Literal{kind: KindFloat, f: v} }
func BoolLit(v bool) Literal     { return Literal{kind: KindBool, b: v} }
func CharLit(v rune) Literal     { return Literal{kind: KindChar, r: v} }

// Kind returns the literal kind of l.
func (l Literal) Kind() Kind { return l.kind }

func (l Literal) StringValue() string { return l.str }
func (l Literal) IntValue() int64     { return l.i }
func (l Literal) FloatValue() float64 { return l.f }
func (l Literal) BoolValue() bool     { return l.b }
func (l Literal) CharValue() rune     { return l.r }

// GoSource renders the literal as Go source text.
func (l Literal) GoSource() string {
	switch l.kind {
	case KindString:
		return strconv.Quote(l.str)
	case KindInt:
		return strconv.FormatInt(l.i, 10)
	case KindFloat:
		return formatFloat(l.f)
	case KindBool:
		return strconv.FormatBool(l.b)
	case KindChar:
		return strconv.QuoteRune(l.r)
	default:
		return ""
	}
}

// formatFloat keeps the emitted constant a float expression even for
// integral values, so the generated declaration stays well typed.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ParseCharLit builds a char literal from a one-rune string.
func ParseCharLit(s string) (Literal, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return Literal{}, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return CharLit(r), true
}
