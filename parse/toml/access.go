package toml

// =========================
// Safe Access Helpers
// =========================

// Get walks the table tree along path and returns the node found there.
func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Items[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func GetUntyped(root *Table, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

// ToUntyped flattens a node into plain Go values: map[string]any for
// tables, []any for arrays, the scalar payload otherwise.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *Table:
		m := make(map[string]any, len(v.Items))
		for k, child := range v.Items {
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}

func MustString(n Node) string {
	v := n.(*Value)
	return v.V.(string)
}

func MustInt(n Node) int64 {
	v := n.(*Value)
	return v.V.(int64)
}

// MustFloat returns the float payload of either float form.
func MustFloat(n Node) float64 {
	v := n.(*Value)
	if d, ok := v.V.(DescribedFloat); ok {
		return d.Value
	}
	return v.V.(float64)
}

func MustBool(n Node) bool {
	v := n.(*Value)
	return v.V.(bool)
}
