package toml

// convertTypes replaces every in-construction array with a final Array,
// in place, recursing through tables and array elements. After the walk
// no arrayParsing value is reachable from t.
func convertTypes(t *Table) {
	for key, n := range t.Items {
		switch v := n.(type) {
		case *Table:
			convertTypes(v)
		case *arrayParsing:
			arr := &Array{Elems: v.values}
			t.Items[key] = arr
			convertArrayTypes(arr)
		}
	}
}

func convertArrayTypes(a *Array) {
	for i, n := range a.Elems {
		switch v := n.(type) {
		case *Table:
			convertTypes(v)
		case *arrayParsing:
			arr := &Array{Elems: v.values}
			a.Elems[i] = arr
			convertArrayTypes(arr)
		}
	}
}
