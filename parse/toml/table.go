package toml

import "strings"

const (
	typeArrayOfTable = iota
	typeTable
	typeKeyValuePair
)

// readTable reads header lines and key/value lines into t until the input
// ends or, when t is not the root, until the next top-level header is
// seen. Headers never consume input at non-root depth; they unwind the
// recursion back to the root dispatcher.
func (p *parser) readTable(t *Table, pos int, isRoot bool) (int, error) {
	pos = p.skipWs(pos)
	for pos < len(p.src) {
		if p.src[pos] == '#' {
			commentBegin := pos
			pos = p.skipToNewline(pos)
			debugf("comment: %s", p.src[commentBegin:pos])
			pos = p.skipWs(pos)
			continue
		}

		typ := -1
		var keys []string

		// Array-of-tables header
		if frag, end, ok := p.tryHeader(pos, true); ok {
			if !isRoot {
				// End the array of tables, return to the root table.
				return pos, nil
			}
			debugf("keys: %s", frag)
			parsed, err := parseKeys(frag)
			if err != nil {
				return 0, p.errAt(pos, err)
			}
			keys = parsed
			pos = end
			typ = typeArrayOfTable
		}
		// Table header
		if typ == -1 {
			if frag, end, ok := p.tryHeader(pos, false); ok {
				if !isRoot {
					// End the table, return to the root table.
					return pos, nil
				}
				debugf("keys: %s", frag)
				parsed, err := parseKeys(frag)
				if err != nil {
					return 0, p.errAt(pos, err)
				}
				keys = parsed
				pos = end
				typ = typeTable
			}
		}
		// Dotted keys, includes bare keys and quoted keys
		if typ == -1 {
			if frag, valuePos, ok := p.tryKeyValue(pos); ok {
				debugf("keys: %s", frag)
				parsed, err := parseKeys(frag)
				if err != nil {
					return 0, p.errAt(pos, err)
				}
				keys = parsed
				pos = valuePos
				typ = typeKeyValuePair
			}
		}

		if typ == -1 || len(keys) == 0 {
			return 0, p.errAt(pos, ErrIllFormedToml)
		}

		child, err := p.descend(t, keys[:len(keys)-1], pos)
		if err != nil {
			return 0, err
		}
		leaf := keys[len(keys)-1]

		switch typ {
		case typeArrayOfTable:
			ap, err := p.appendableArray(child, leaf, pos)
			if err != nil {
				return 0, err
			}
			next := NewTable()
			ap.values = append(ap.values, next)
			if pos, err = p.readTable(next, pos, false); err != nil {
				return 0, err
			}
		case typeTable:
			if _, exists := child.Items[leaf]; exists {
				return 0, p.errAt(pos, ErrDuplicatedKey)
			}
			next := NewTable()
			child.Items[leaf] = next
			if pos, err = p.readTable(next, pos, false); err != nil {
				return 0, err
			}
		case typeKeyValuePair:
			if _, exists := child.Items[leaf]; exists {
				return 0, p.errAt(pos, ErrDuplicatedKey)
			}
			v, end, err := p.readValue(pos)
			if err != nil {
				return 0, err
			}
			child.Items[leaf] = v
			pos = end
		}

		pos = p.skipWs(pos)
	}
	return pos, nil
}

// tryHeader matches a [keys] header, or [[keys]] when double is set, and
// returns the raw keys fragment with its leading whitespace dropped. The
// fragment may only hold key segments, dots and inline whitespace; a
// header is confined to one line.
func (p *parser) tryHeader(pos int, double bool) (string, int, bool) {
	open := "["
	if double {
		open = "[["
	}
	if !p.hasPrefixAt(pos, open) {
		return "", 0, false
	}
	start := pos + len(open)
	i := start
	for i < len(p.src) {
		switch c := p.src[i]; {
		case c == ']':
			if double && !p.hasPrefixAt(i, "]]") {
				return "", 0, false
			}
			frag := strings.TrimLeft(p.src[start:i], "\t ")
			return frag, i + len(open), true
		case isBareKeyChar(c) || c == '\t' || c == ' ' || c == '.':
			i++
		case c == '"':
			j := i + 1
			for j < len(p.src) && p.src[j] != '"' && p.src[j] != '\n' && p.src[j] != '\r' {
				if p.src[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(p.src) || p.src[j] != '"' {
				return "", 0, false
			}
			i = j + 1
		case c == '\'':
			j := i + 1
			for j < len(p.src) && p.src[j] != '\'' && p.src[j] != '\n' && p.src[j] != '\r' {
				j++
			}
			if j >= len(p.src) || p.src[j] != '\'' {
				return "", 0, false
			}
			i = j + 1
		default:
			return "", 0, false
		}
	}
	return "", 0, false
}

// tryKeyValue matches `keys = ` on the current line and returns the keys
// fragment and the position of the first value character.
func (p *parser) tryKeyValue(pos int) (string, int, bool) {
	lineEnd := p.skipToNewline(pos)
	eq := strings.IndexByte(p.src[pos:lineEnd], '=')
	if eq < 0 {
		return "", 0, false
	}
	frag := strings.TrimRight(p.src[pos:pos+eq], "\t ")
	return frag, p.skipWsInline(pos + eq + 1), true
}

// descend walks the intermediate segments of a dotted key, creating empty
// tables for missing segments. An existing segment must be a table or an
// array accumulator whose last element is a table.
func (p *parser) descend(t *Table, segs []string, pos int) (*Table, error) {
	child := t
	for _, seg := range segs {
		n, ok := child.Items[seg]
		if !ok {
			next := NewTable()
			child.Items[seg] = next
			child = next
			continue
		}
		switch v := n.(type) {
		case *Table:
			child = v
		case *arrayParsing:
			if len(v.values) == 0 {
				return nil, p.errAt(pos, ErrInvalidKey)
			}
			last, ok := v.values[len(v.values)-1].(*Table)
			if !ok {
				return nil, p.errAt(pos, ErrInvalidKey)
			}
			child = last
		default:
			return nil, p.errAt(pos, ErrInvalidKey)
		}
	}
	return child, nil
}

// appendableArray resolves the accumulator for an [[keys]] header:
// missing keys create a fresh non-static accumulator, existing ones must
// be appendable.
func (p *parser) appendableArray(t *Table, leaf string, pos int) (*arrayParsing, error) {
	existing, ok := t.Items[leaf]
	if !ok {
		ap := &arrayParsing{}
		t.Items[leaf] = ap
		return ap, nil
	}
	ap, ok := existing.(*arrayParsing)
	if !ok {
		return nil, p.errAt(pos, ErrInvalidKey)
	}
	if ap.isStatic {
		return nil, p.errAt(pos, ErrStaticArrayNotAppendable)
	}
	return ap, nil
}

// readInlineTable reads a single-line { k = v, ... } table literal.
func (p *parser) readInlineTable(pos int) (Node, int, error) {
	begin := pos
	pos = p.skipWsInline(pos + 1)
	if pos >= len(p.src) {
		return nil, 0, p.errAt(begin, ErrIllFormedInlineTable)
	}

	debugf("inline table")
	t := NewTable()
	isFirst := true
	for pos < len(p.src) {
		pos = p.skipWsInline(pos)
		if pos >= len(p.src) {
			return nil, 0, p.errAt(begin, ErrIllFormedInlineTable)
		}
		if p.src[pos] == '}' {
			return t, pos + 1, nil
		}
		if !isFirst {
			if p.src[pos] != ',' {
				return nil, 0, p.errAt(pos, ErrIllFormedInlineTable)
			}
			pos = p.skipWsInline(pos + 1)
			if pos >= len(p.src) {
				return nil, 0, p.errAt(begin, ErrIllFormedInlineTable)
			}
			if p.src[pos] == '}' {
				return t, pos + 1, nil
			}
		}

		frag, valuePos, ok := p.tryKeyValue(pos)
		if !ok {
			return nil, 0, p.errAt(pos, ErrIllFormedInlineTable)
		}
		debugf("keys: %s", frag)
		keys, err := parseKeys(frag)
		if err != nil {
			return nil, 0, p.errAt(pos, err)
		}
		if len(keys) == 0 {
			return nil, 0, p.errAt(pos, ErrIllFormedInlineTable)
		}

		child, err := p.descend(t, keys[:len(keys)-1], pos)
		if err != nil {
			return nil, 0, err
		}
		leaf := keys[len(keys)-1]
		if _, exists := child.Items[leaf]; exists {
			return nil, 0, p.errAt(pos, ErrDuplicatedKey)
		}

		v, end, err := p.readValue(valuePos)
		if err != nil {
			return nil, 0, err
		}
		child.Items[leaf] = v
		pos = end
		isFirst = false
	}
	return nil, 0, p.errAt(begin, ErrIllFormedInlineTable)
}
