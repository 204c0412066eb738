// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEncode(t *testing.T) {
	Convey("Encode", t, FailureContinues, func() {
		Convey("renders scalar fields sorted by key, none omitted", func() {
			got, err := Encode(Object{
				"prefix":   String("a/b"),
				"max-keys": Int(10),
				"marker":   None,
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "max-keys=10&prefix=a%2Fb")
		})

		Convey("yields the empty string when every field is absent", func() {
			got, err := Encode(Object{"a": None, "b": None, "c": nil})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "")

			got, err = Encode(nil)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "")
		})

		Convey("keeps an empty string apart from an absent value", func() {
			got, err := Encode(Object{"a": String(""), "b": None})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "a=")
		})

		Convey("emits markers as their bare key", func() {
			got, err := Encode(Object{
				"delete": Marker{},
				"prefix": String("logs"),
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "delete&prefix=logs")
		})

		Convey("wraps a map value as one object literal, inner keys sorted", func() {
			got, err := Encode(Object{
				"tagging": Map{
					String("b"): String("2"),
					String("a"): String("1"),
				},
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, `tagging={"a":"1","b":"2"}`)
		})

		Convey("flattens nested collections with dotted paths, each scope sorted on its own", func() {
			got, err := Encode(Object{
				"z": Int(1),
				"y": Int(2),
				"x": Object{
					"inner1": String("test"),
					"inner2": Object{"l2": Int(3), "l1": String("aaa")},
					"inner3": Seq{Int(3), Int(4), Int(5)},
				},
				"w": Seq{String("test+*"), Int(1)},
				"v": Marker{},
				"t": None,
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, `v&w={"1":"test%2B%2A","2":"1"}`+
				`&x={"inner1":"test","inner2.l1":"aaa","inner2.l2":"3","inner3.1":"3","inner3.2":"4","inner3.3":"5"}`+
				`&y=2&z=1`)
		})

		Convey("renders a nested absent entry as an empty quoted value", func() {
			got, err := Encode(Object{
				"a": Object{"b": None, "c": String("x")},
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, `a={"b":"","c":"x"}`)
		})

		Convey("renders the remaining scalar shapes", func() {
			got, err := Encode(Object{
				"flag":  Bool(true),
				"other": Bool(false),
				"count": Uint(18446744073709551615),
				"ratio": Float(0.25),
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "count=18446744073709551615&flag=true&other=false&ratio=0.25")
		})

		Convey("accepts a Map at the top level, keys through the key encoder", func() {
			got, err := Encode(Map{
				String("b"): String("2"),
				Int(1):      String("one"),
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "1=one&b=2")
		})

		Convey("rejects scalars and sequences at the top level", func() {
			for _, v := range []Value{String("x"), Int(1), Seq{String("a")}, Marker{}} {
				_, err := Encode(v)
				So(errors.Is(err, ErrTopLevel), ShouldBeTrue)
			}
		})

		Convey("rejects a marker below the top level", func() {
			_, err := Encode(Object{"a": Object{"b": Marker{}}})
			var ute *UnsupportedTypeError
			So(errors.As(err, &ute), ShouldBeTrue)
			So(strings.Contains(ute.Error(), "marker"), ShouldBeTrue)

			_, err = Encode(Object{"a": Seq{Marker{}}})
			So(errors.As(err, &ute), ShouldBeTrue)
		})

		Convey("rejects text that is not valid UTF-8", func() {
			_, err := Encode(Object{"a": String("\xff\xfe")})
			So(errors.Is(err, ErrInvalidUTF8), ShouldBeTrue)
		})
	})
}
