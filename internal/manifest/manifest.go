// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package manifest loads the YAML brand manifest that drives generation.
//
// The manifest names the generated package and declares one brand table per
// constant:
//
//	package: appconfig
//	constants:
//	  - name: Endpoint
//	    kind: string
//	    arms:
//	      Northwind: https://northwind.example.com/
//	      Contoso: https://contoso.example.com/
//	      _: https://example.com/
//
// Decoding works on yaml.Node rather than plain structs so that arm order
// is preserved and duplicate arm keys survive parsing long enough to be
// rejected with a proper error. Unknown fields are rejected.
package manifest

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/whitelabel-go/whitelabel/internal/brand"
)

// Manifest is one parsed brand manifest.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string

	// BrandConstant, when non-empty, names an additional string constant
	// that receives the active brand itself.
	BrandConstant string

	// Constants lists the generated constants in manifest order.
	Constants []Constant
}

// Constant pairs a generated constant name with its brand table.
type Constant struct {
	Name  string
	Table brand.Table
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	// #nosec G304 -- CLI tool, path provided by user argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse parses and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrMalformed, root.Line)
	}

	m := &Manifest{}
	for i := 0; i < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "package":
			m.Package = val.Value
		case "brandConstant":
			m.BrandConstant = val.Value
		case "constants":
			consts, err := parseConstants(val)
			if err != nil {
				return nil, err
			}
			m.Constants = consts
		default:
			return nil, fmt.Errorf("%w: %q (line %d)", ErrUnknownField, key.Value, key.Line)
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseConstants(node *yaml.Node) ([]Constant, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: constants must be a sequence (line %d)", ErrMalformed, node.Line)
	}
	consts := make([]Constant, 0, len(node.Content))
	for _, item := range node.Content {
		c, err := parseConstant(item)
		if err != nil {
			return nil, err
		}
		consts = append(consts, c)
	}
	return consts, nil
}

func parseConstant(node *yaml.Node) (Constant, error) {
	if node.Kind != yaml.MappingNode {
		return Constant{}, fmt.Errorf("%w: constant entry must be a mapping (line %d)", ErrMalformed, node.Line)
	}

	var (
		name     string
		kindName string
		armsNode *yaml.Node
	)
	for i := 0; i < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			name = val.Value
		case "kind":
			kindName = val.Value
		case "arms":
			armsNode = val
		default:
			return Constant{}, fmt.Errorf("%w: %q (line %d)", ErrUnknownField, key.Value, key.Line)
		}
	}

	if name == "" {
		return Constant{}, fmt.Errorf("%w: constant without a name (line %d)", ErrMalformed, node.Line)
	}
	if armsNode == nil {
		return Constant{}, fmt.Errorf("%w: constant %q has no arms (line %d)", ErrMalformed, name, node.Line)
	}
	if armsNode.Kind != yaml.MappingNode {
		return Constant{}, fmt.Errorf("%w: constant %q: arms must be a mapping (line %d)", ErrMalformed, name, armsNode.Line)
	}

	declared := false
	var kind brand.Kind
	if kindName != "" {
		k, err := brand.ParseKind(kindName)
		if err != nil {
			return Constant{}, fmt.Errorf("constant %q: %w", name, err)
		}
		kind = k
		declared = true
	}

	tbl := brand.Table{Name: name}
	for i := 0; i < len(armsNode.Content); i += 2 {
		key, val := armsNode.Content[i], armsNode.Content[i+1]
		var (
			lit brand.Literal
			err error
		)
		if declared {
			lit, err = parseLiteral(name, kind, val)
		} else {
			lit, err = inferLiteral(name, val)
		}
		if err != nil {
			return Constant{}, err
		}
		tbl.Arms = append(tbl.Arms, brand.Arm{Brand: key.Value, Value: lit})
	}

	if err := tbl.Validate(); err != nil {
		return Constant{}, err
	}
	return Constant{Name: name, Table: tbl}, nil
}

// YAML scalar tags as produced by the resolver.
const (
	tagStr   = "!!str"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagBool  = "!!bool"
)

func parseLiteral(constName string, kind brand.Kind, node *yaml.Node) (brand.Literal, error) {
	if node.Kind != yaml.ScalarNode {
		return brand.Literal{}, fmt.Errorf("%w: constant %q: arm value must be a scalar (line %d)",
			ErrMalformed, constName, node.Line)
	}

	badKind := func() error {
		return fmt.Errorf("constant %q: %w: %q is not a %s (line %d)",
			constName, ErrBadLiteral, node.Value, kind, node.Line)
	}

	switch kind {
	case brand.KindString:
		if node.Tag != tagStr {
			return brand.Literal{}, badKind()
		}
		return brand.StringLit(node.Value), nil
	case brand.KindChar:
		if node.Tag != tagStr {
			return brand.Literal{}, badKind()
		}
		lit, ok := brand.ParseCharLit(node.Value)
		if !ok {
			return brand.Literal{}, fmt.Errorf("constant %q: %w: char arm %q must be exactly one rune (line %d)",
				constName, ErrBadLiteral, node.Value, node.Line)
		}
		return lit, nil
	case brand.KindInt:
		if node.Tag != tagInt {
			return brand.Literal{}, badKind()
		}
		var v int64
		if err := node.Decode(&v); err != nil {
			return brand.Literal{}, badKind()
		}
		return brand.IntLit(v), nil
	case brand.KindFloat:
		// An integral scalar like `3` is accepted for a declared float table.
		if node.Tag != tagFloat && node.Tag != tagInt {
			return brand.Literal{}, badKind()
		}
		var v float64
		if err := node.Decode(&v); err != nil {
			return brand.Literal{}, badKind()
		}
		return brand.FloatLit(v), nil
	case brand.KindBool:
		if node.Tag != tagBool {
			return brand.Literal{}, badKind()
		}
		var v bool
		if err := node.Decode(&v); err != nil {
			return brand.Literal{}, badKind()
		}
		return brand.BoolLit(v), nil
	default:
		return brand.Literal{}, fmt.Errorf("constant %q: %w", constName, brand.ErrUnknownKind)
	}
}

// inferLiteral derives the literal kind from the YAML scalar tag. Char is
// never inferred; it needs an explicit kind on the constant. Mixed tags
// across arms surface later as a kind mismatch during table validation.
func inferLiteral(constName string, node *yaml.Node) (brand.Literal, error) {
	if node.Kind != yaml.ScalarNode {
		return brand.Literal{}, fmt.Errorf("%w: constant %q: arm value must be a scalar (line %d)",
			ErrMalformed, constName, node.Line)
	}
	switch node.Tag {
	case tagStr:
		return parseLiteral(constName, brand.KindString, node)
	case tagInt:
		return parseLiteral(constName, brand.KindInt, node)
	case tagFloat:
		return parseLiteral(constName, brand.KindFloat, node)
	case tagBool:
		return parseLiteral(constName, brand.KindBool, node)
	default:
		return brand.Literal{}, fmt.Errorf("constant %q: %w: unsupported scalar %s (line %d)",
			constName, ErrBadLiteral, node.Tag, node.Line)
	}
}

func (m *Manifest) validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: missing package", ErrMalformed)
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q: %w", m.Package, ErrBadIdentifier)
	}
	if len(m.Constants) == 0 {
		return ErrNoConstants
	}
	if m.BrandConstant != "" && !token.IsIdentifier(m.BrandConstant) {
		return fmt.Errorf("brandConstant %q: %w", m.BrandConstant, ErrBadIdentifier)
	}

	seen := make(map[string]struct{}, len(m.Constants)+1)
	if m.BrandConstant != "" {
		seen[m.BrandConstant] = struct{}{}
	}
	for _, c := range m.Constants {
		if !token.IsIdentifier(c.Name) {
			return fmt.Errorf("constant %q: %w", c.Name, ErrBadIdentifier)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateConstant, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
