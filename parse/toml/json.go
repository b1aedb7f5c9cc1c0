package toml

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// StringJSON serializes a parsed document as pretty-printed JSON. indent
// sets the initial indentation level, two spaces per level. Table keys
// are emitted in lexicographic order. With strict set, the float special
// values render as the quoted strings "Infinity", "-Infinity" and "NaN",
// keeping the output parseable by any JSON parser; without it the same
// tokens are emitted bare.
func StringJSON(root *Table, indent int, strict bool) string {
	var b strings.Builder
	writeTableJSON(&b, root, indent, strict)
	return b.String()
}

func writeTableJSON(b *strings.Builder, t *Table, indent int, strict bool) {
	rootSpace := strings.Repeat("  ", indent)
	space := rootSpace + "  "

	keys := make([]string, 0, len(t.Items))
	for k := range t.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("{")
	joiner := "\n"
	for _, k := range keys {
		b.WriteString(joiner)
		b.WriteString(space)
		writeQuotedJSON(b, k)
		b.WriteString(": ")
		writeValueJSON(b, t.Items[k], indent, strict)
		joiner = ",\n"
	}
	b.WriteString("\n")
	b.WriteString(rootSpace)
	b.WriteString("}")
}

func writeArrayJSON(b *strings.Builder, a *Array, indent int, strict bool) {
	rootSpace := strings.Repeat("  ", indent)
	space := rootSpace + "  "

	b.WriteString("[")
	joiner := "\n"
	for _, elem := range a.Elems {
		b.WriteString(joiner)
		b.WriteString(space)
		writeValueJSON(b, elem, indent, strict)
		joiner = ",\n"
	}
	b.WriteString("\n")
	b.WriteString(rootSpace)
	b.WriteString("]")
}

func writeValueJSON(b *strings.Builder, n Node, indent int, strict bool) {
	switch v := n.(type) {
	case *Table:
		writeTableJSON(b, v, indent+1, strict)
	case *Array:
		writeArrayJSON(b, v, indent+1, strict)
	case *Value:
		switch v.Type {
		case tomlValueKinds.ValueString:
			writeQuotedJSON(b, v.V.(string))
		case tomlValueKinds.ValueBool:
			b.WriteString(strconv.FormatBool(v.V.(bool)))
		case tomlValueKinds.ValueInt:
			b.WriteString(strconv.FormatInt(v.V.(int64), 10))
		case tomlValueKinds.ValueFloat:
			writeFloatJSON(b, v.V.(float64), strict)
		case tomlValueKinds.ValueDescribedFloat:
			b.WriteString(v.V.(DescribedFloat).Description)
		case tomlValueKinds.ValueDatetime:
			writeQuotedJSON(b, v.V.(DateTime).Text)
		}
	}
}

func writeFloatJSON(b *strings.Builder, f float64, strict bool) {
	switch {
	case math.IsInf(f, +1):
		if strict {
			b.WriteString(`"Infinity"`)
		} else {
			b.WriteString("Infinity")
		}
	case math.IsInf(f, -1):
		if strict {
			b.WriteString(`"-Infinity"`)
		} else {
			b.WriteString("-Infinity")
		}
	case math.IsNaN(f):
		if strict {
			b.WriteString(`"NaN"`)
		} else {
			b.WriteString("NaN")
		}
	default:
		b.WriteString(strconv.FormatFloat(f, 'e', 17, 64))
	}
}

const hexDigits = "0123456789abcdef"

// writeQuotedJSON writes s as a JSON string literal, escaping the
// JSON-reserved characters. Non-ASCII bytes pass through unchanged.
func writeQuotedJSON(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}
