// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes everything except the unreserved characters
// 'A'–'Z', 'a'–'z', '0'–'9', '-', '_', '.' and '~', using uppercase
// hex digits.
//
// This deviates from net/url on purpose: url.QueryEscape turns spaces
// into '+' and leaves bytes unescaped which the signature scheme requires
// escaped, and either difference silently breaks the signature.
func Escape(s string) string {
	hits := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			hits++
		}
	}
	if hits == 0 {
		return s
	}

	out := make([]byte, 0, len(s)+2*hits)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			out = append(out, c)
			continue
		}
		out = append(out, '%', upperhex[c>>4], upperhex[c&0x0f])
	}
	return string(out)
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
