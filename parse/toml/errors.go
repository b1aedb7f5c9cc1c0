package toml

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors. Each parse failure wraps exactly one of these, so callers
// can classify with errors.Is.
var (
	ErrIllFormedKeys                   = errors.New("ill-formed of keys")
	ErrIllFormedToml                   = errors.New("ill-formed of toml")
	ErrIllFormedBasicString            = errors.New("ill-formed of basic strings")
	ErrIllFormedMultilineBasicString   = errors.New("ill-formed of multi-line basic strings")
	ErrIllFormedLiteralString          = errors.New("ill-formed of literal strings")
	ErrIllFormedMultilineLiteralString = errors.New("ill-formed of multi-line literal strings")
	ErrIllFormedArray                  = errors.New("ill-formed of array")
	ErrMixedTypeArray                  = errors.New("mixed type array")
	ErrIllFormedInlineTable            = errors.New("ill-formed of inline table")
	ErrInvalidKey                      = errors.New("invalid key")
	ErrDuplicatedKey                   = errors.New("duplicated key")
	ErrStaticArrayNotAppendable        = errors.New("ill-formed of array: statically defined array is not appendable")
	ErrNotImplemented                  = errors.New("not implemented")
)

// errAt wraps sentinel err with the 1-based line holding pos.
func (p *parser) errAt(pos int, err error) error {
	return fmt.Errorf("toml:%d: %w", p.lineAt(pos), err)
}

// lineAt derives the line number lazily; the hot path never tracks lines.
func (p *parser) lineAt(pos int) int {
	if pos > len(p.src) {
		pos = len(p.src)
	}
	return strings.Count(p.src[:pos], "\n") + 1
}
