package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func noParsingArrays(n Node) bool {
	switch v := n.(type) {
	case *arrayParsing:
		return false
	case *Table:
		for _, child := range v.Items {
			if !noParsingArrays(child) {
				return false
			}
		}
	case *Array:
		for _, elem := range v.Elems {
			if !noParsingArrays(elem) {
				return false
			}
		}
	}
	return true
}

func TestNormalizerTotality(t *testing.T) {
	convey.Convey("no in-construction array survives Parse", t, func() {
		root, err := ParseString(`
xs = [[1], [2, 3]]
[[aot]]
ys = [["a"], ["b"]]
[[aot]]
[aot.sub]
zs = []
`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(noParsingArrays(root), convey.ShouldBeTrue)
	})
}

func TestArrayHomogeneityInvariant(t *testing.T) {
	convey.Convey("every finalized array holds one kind", t, func() {
		root, err := ParseString(`
ints = [1, 2, 3]
strs = ["a", "b"]
nested = [[1], ["x"]]
[[t]]
[[t]]
`)
		convey.So(err, convey.ShouldBeNil)

		var check func(n Node) bool
		check = func(n Node) bool {
			switch v := n.(type) {
			case *Table:
				for _, child := range v.Items {
					if !check(child) {
						return false
					}
				}
			case *Array:
				for _, elem := range v.Elems {
					if elem.Kind() != v.Elems[0].Kind() || !check(elem) {
						return false
					}
				}
			}
			return true
		}
		convey.So(check(root), convey.ShouldBeTrue)
	})
}
