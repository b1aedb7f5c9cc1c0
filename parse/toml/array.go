package toml

// readArray reads a static array literal. Arrays may span lines and hold
// comment lines between elements; a trailing comma before the closing
// bracket is allowed. All elements must share one kind tag.
func (p *parser) readArray(pos int) (Node, int, error) {
	begin := pos
	pos = p.skipWs(pos + 1)
	if pos >= len(p.src) {
		return nil, 0, p.errAt(begin, ErrIllFormedArray)
	}

	debugf("array")
	ap := &arrayParsing{isStatic: true}
	isFirst := true
	for pos < len(p.src) {
		pos = p.skipWs(pos)
		if pos >= len(p.src) {
			return nil, 0, p.errAt(begin, ErrIllFormedArray)
		}

		if p.src[pos] == '#' {
			commentBegin := pos
			pos = p.skipToNewline(pos)
			debugf("comment: %s", p.src[commentBegin:pos])
			pos = p.skipWs(pos)
			if pos >= len(p.src) {
				return nil, 0, p.errAt(begin, ErrIllFormedArray)
			}
		}

		if p.src[pos] == ']' {
			return ap, pos + 1, nil
		}

		if !isFirst {
			if p.src[pos] != ',' {
				return nil, 0, p.errAt(pos, ErrIllFormedArray)
			}
			pos = p.skipWs(pos + 1)
			if pos >= len(p.src) {
				return nil, 0, p.errAt(begin, ErrIllFormedArray)
			}

			if p.src[pos] == '#' {
				commentBegin := pos
				pos = p.skipToNewline(pos)
				debugf("comment: %s", p.src[commentBegin:pos])
				pos = p.skipWs(pos)
				if pos >= len(p.src) {
					return nil, 0, p.errAt(begin, ErrIllFormedArray)
				}
			}

			if p.src[pos] == ']' {
				return ap, pos + 1, nil
			}
		}

		v, end, err := p.readValue(pos)
		if err != nil {
			return nil, 0, err
		}
		if len(ap.values) > 0 && ap.values[0].Kind() != v.Kind() {
			return nil, 0, p.errAt(pos, ErrMixedTypeArray)
		}
		ap.values = append(ap.values, v)
		pos = end
		isFirst = false
	}
	return nil, 0, p.errAt(begin, ErrIllFormedArray)
}
