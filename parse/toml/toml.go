package toml

// Package toml implements a TOML parser with an explicit AST and a JSON
// pretty-printer over that AST.
//
// Scope:
// - TOML v1.0.0 core features
// - Explicit AST (Table / Array / Value)
// - Safe dotted-key handling
// - Array-of-tables accumulation vs. static arrays
// - Deterministic errors
//
// Non-goals (by design):
// - Comment preservation
// - Formatting round-trip
// - Streaming mutation
//
// Parsing consumes a whole buffer and returns a fully materialized tree;
// serialization produces a whole string. Calls share no mutable state, so
// concurrent parses of disjoint inputs are safe.

import (
	"io"
)

// =========================
// AST Definitions
// =========================

type ValueKind string

var tomlValueKinds = struct {
	ValueString         ValueKind
	ValueInt            ValueKind
	ValueFloat          ValueKind
	ValueDescribedFloat ValueKind
	ValueBool           ValueKind
	ValueDatetime       ValueKind
	ValueTable          ValueKind
	ValueArray          ValueKind
	valueArrayParsing   ValueKind
}{
	ValueString:         "string",
	ValueInt:            "int",
	ValueFloat:          "float",
	ValueDescribedFloat: "described_float",
	ValueBool:           "bool",
	ValueDatetime:       "datetime",
	ValueTable:          "table",
	ValueArray:          "array",
	valueArrayParsing:   "array_parsing",
}

type Node interface {
	Kind() ValueKind
	Value() any
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() ValueKind { return tomlValueKinds.ValueTable }

func (*Table) Value() any { return nil }

// -------- Array --------

type Array struct {
	Elems []Node
}

func (*Array) Kind() ValueKind { return tomlValueKinds.ValueArray }

func (v *Array) Value() any { return v.Elems }

// -------- arrayParsing --------

// arrayParsing holds an array while the document is still being read. A
// static array literal sets isStatic and can never be extended by an
// [[x]] header; an array-of-tables accumulator leaves it unset. The
// normalizer replaces every arrayParsing with an Array before Parse
// returns.
type arrayParsing struct {
	isStatic bool
	values   []Node
}

func (*arrayParsing) Kind() ValueKind { return tomlValueKinds.valueArrayParsing }

func (v *arrayParsing) Value() any { return v.values }

// -------- Value --------

// DescribedFloat is a finite float paired with its normalized source text
// (underscores removed, leading + stripped). The serializer emits the
// description verbatim so the user's chosen notation survives.
type DescribedFloat struct {
	Value       float64
	Description string
}

// DateTime holds an RFC-3339-like literal as written. No normalization.
type DateTime struct {
	Text string
}

type Value struct {
	Type ValueKind
	V    any
}

func (v *Value) Kind() ValueKind { return v.Type }

func (v *Value) Value() any { return v.V }

// =========================
// Public API
// =========================

// Parse parses TOML input from r and returns a root Table. On error no
// partial tree is returned.
func Parse(r io.Reader) (*Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(src))
}

// ParseString parses a whole TOML document held in s.
func ParseString(s string) (*Table, error) {
	p := &parser{src: s}
	root := NewTable()
	if _, err := p.readTable(root, 0, true); err != nil {
		return nil, err
	}
	convertTypes(root)
	return root, nil
}
