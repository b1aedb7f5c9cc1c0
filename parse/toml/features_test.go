package toml

import (
	"math"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multiline basic string", t, func() {
		src := `desc = """first
second
third"""`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(n), convey.ShouldEqual, "first\nsecond\nthird")
	})
}

func TestQuotedKeys(t *testing.T) {
	convey.Convey("quoted keys", t, func() {
		src := `"a.b" = 1
a.c = 2`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "a.b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(n), convey.ShouldEqual, 1)
		n2, ok2 := Get(root, "a", "c")
		convey.So(ok2, convey.ShouldBeTrue)
		convey.So(MustInt(n2), convey.ShouldEqual, 2)
	})
}

func TestSpecialFloatsAndInts(t *testing.T) {
	convey.Convey("floats and ints with underscores and bases", t, func() {
		src := `
f1 = +inf
f2 = -inf
f3 = nan
i1 = 1_000
hex = 0xDEADBEEF
oct = 0o755
bin = 0b1010
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		f1, _ := Get(root, "f1")
		convey.So(MustFloat(f1), convey.ShouldEqual, math.Inf(+1))
		f2, _ := Get(root, "f2")
		convey.So(MustFloat(f2), convey.ShouldEqual, math.Inf(-1))
		f3, _ := Get(root, "f3")
		convey.So(math.IsNaN(MustFloat(f3)), convey.ShouldBeTrue)
		i1, _ := Get(root, "i1")
		convey.So(MustInt(i1), convey.ShouldEqual, 1000)
		hex, _ := Get(root, "hex")
		convey.So(MustInt(hex), convey.ShouldEqual, 0xDEADBEEF)
		oct, _ := Get(root, "oct")
		convey.So(MustInt(oct), convey.ShouldEqual, 0o755)
		bin, _ := Get(root, "bin")
		convey.So(MustInt(bin), convey.ShouldEqual, 10)
	})
}

func TestCommentsEverywhere(t *testing.T) {
	convey.Convey("comments are skipped wherever they appear", t, func() {
		src := `
# full-line comment
key = "value" # trailing comment
[table] # after a header
x = 1
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		n, _ := Get(root, "key")
		convey.So(MustString(n), convey.ShouldEqual, "value")
		x, ok := Get(root, "table", "x")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(x), convey.ShouldEqual, 1)
	})
}

func TestAccessHelpers(t *testing.T) {
	convey.Convey("untyped views of the tree", t, func() {
		root, err := ParseString("a.b = 7\nxs = [true, false]\n")
		convey.So(err, convey.ShouldBeNil)

		v, ok := GetUntyped(root, "a", "b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, int64(7))

		xs, ok := GetUntyped(root, "xs")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(xs.([]any), convey.ShouldResemble, []any{true, false})

		_, ok = Get(root, "a", "missing")
		convey.So(ok, convey.ShouldBeFalse)
		_, ok = Get(root, "a", "b", "deeper")
		convey.So(ok, convey.ShouldBeFalse)
	})
}
