package signature // import "blitznote.com/src/oss.signature"

import (
	"testing"
	"unicode"

	"golang.org/x/text/unicode/norm"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsAcceptableObjectKey(t *testing.T) {
	Convey("IsAcceptableObjectKey", t, FailureContinues, func() {
		Convey("handles Latin-1 input correctly", FailureContinues, func() {
			samples := []struct {
				input    string
				returned bool
			}{
				// ASCII
				{"object.name", true},
				{"dir/object.name", true},
				{"the space", true},
				{"line\nbreak", false},
				{"the\tTAB", false},
				{"Samba?", false},
				{"not print\x0e.", false}, {"fancier not print.", false},
				{"a null\x00.", false},
				{"form feed\x0c", false},
				// now comes Latin-1
				{"start \xb0", false}, {"end \xdf", false}, // obsolete blocks, like in old terminal programs
				{"stray box \xfe", false},
			}

			for i, tuple := range samples {
				tuple.returned = IsAcceptableObjectKey(samples[i].input, nil, nil)
				So(tuple, ShouldResemble, samples[i])
			}
		})

		Convey("accepts correct UTF-8 input", FailureContinues, func() {
			samples := []struct {
				input    string
				returned bool
			}{
				{"W. Mark Kubacki", true}, {"J. Edgar", true},
				{"photos/2023/Döner macht schöner.jpg", true},
				{"GENUẞMITTEL Kauﬂäche häuﬁg ǲerba", true}, // ligatures (capital ß after 1900 for historic documents)
				{"フプ", true}, {"ププ", true},
			}

			for i, tuple := range samples {
				tuple.returned = IsAcceptableObjectKey(samples[i].input, nil, nil)
				So(tuple, ShouldResemble, samples[i])
			}
		})

		Convey("rejects undesired runes", FailureContinues, func() {
			samples := []struct {
				input    string
				returned bool
			}{
				{`wild*card`, false}, {`pipe|dream`, false}, {`back\slash`, false},
				{"form\xfffeed", false}, {"feedform", false},
				{"line ", false}, {"paragraph ", false},
			}

			for i, tuple := range samples {
				tuple.returned = IsAcceptableObjectKey(samples[i].input, nil, nil)
				So(tuple, ShouldResemble, samples[i])
			}
		})

		Convey("allows to restrict the acceptable rune ranges", FailureContinues, func() {
			azOnly := unicode.RangeTable{
				R16: []unicode.Range16{
					{0x0061, 0x007a, 1}, // a-z
				},
				LatinOffset: 1,
			}

			samples := []struct {
				input    string
				restrict []*unicode.RangeTable
				returned bool
			}{
				{"az", []*unicode.RangeTable{&azOnly}, true},
				{"a/z", []*unicode.RangeTable{&azOnly}, true}, // the separator always passes
				{"äz", []*unicode.RangeTable{&azOnly}, false},
			}

			for i, tuple := range samples {
				tuple.returned = IsAcceptableObjectKey(samples[i].input, samples[i].restrict, nil)
				So(tuple, ShouldResemble, samples[i])
			}
		})

		Convey("enforces inputs that are normalized under a Form", FailureContinues, func() {
			samples := []struct {
				input    string
				form     norm.Form
				returned bool
			}{
				{"säet", norm.NFC, true},
				{"säet", norm.NFD, false},
			}

			for i, tuple := range samples {
				tuple.returned = IsAcceptableObjectKey(samples[i].input, nil, &samples[i].form)
				So(tuple, ShouldResemble, samples[i])
			}
		})
	})
}
