package signature // import "blitznote.com/src/oss.signature"

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// AlwaysRejectRunes contains runes that keep causing grief when object
// keys are mirrored onto filesystems and network shares.
//
// Please note that the storage service itself would accept most of them.
const AlwaysRejectRunes = `"*:<>?|\`

// Not all runes in unicode.PrintRanges are suitable for object keys.
// They are collected here.
var excludedKeyRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x2028, 0x202f, 1}, // new line, paragraph etc.
		{0xfff0, 0xffff, 1}, // specials, and invalid (includes the obsolete (invalid) terminal boxes)
	},
	LatinOffset: 0,
}

// IsAcceptableObjectKey is used to enforce object keys in wanted
// alphabet(s) before they are signed and sent.
// Setting 'reduceAcceptableRunesTo' reduces the supremum unicode.PrintRanges.
//
// '/' passes: it separates key segments and is kept literal in the
// canonical path. A key that is not valid UTF-8 is always rejected,
// because the canonical encoding is defined over UTF-8 text only.
//
// Keys are not transliterated; a client that rewrote keys would sign
// something other than what the caller asked for.
func IsAcceptableObjectKey(s string, reduceAcceptableRunesTo []*unicode.RangeTable,
	enforceForm *norm.Form) bool {
	if !utf8.ValidString(s) {
		return false
	}

	// most of the Internet is in NFC
	if enforceForm != nil && !enforceForm.IsNormalString(s) {
		return false
	}

	if reduceAcceptableRunesTo != nil {
		for _, r := range s {
			if r == '/' {
				continue
			}
			if !unicode.In(r, reduceAcceptableRunesTo...) {
				return false
			}
		}
	}

	for _, r := range s {
		if r == '/' {
			continue
		}
		if uint32(r) <= unicode.MaxLatin1 && strings.ContainsRune(AlwaysRejectRunes, r) {
			return false
		}
		if unicode.Is(excludedKeyRunes, r) ||
			!unicode.IsPrint(r) { // this takes care of exotic "spaces" as well
			return false
		}
	}

	return true
}
