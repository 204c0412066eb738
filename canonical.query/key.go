// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

import (
	"strconv"
	"unicode/utf8"
)

// EncodeKey renders a scalar value as a plain, unescaped text key,
// for use as a synthesized field name.
//
// Keys are names, not values: collections, markers and absent values
// have no textual identity and are rejected.
func EncodeKey(v Value) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", &UnsupportedTypeError{Shape: "none"}
	case String:
		if !utf8.ValidString(string(t)) {
			return "", ErrInvalidUTF8
		}
		return string(t), nil
	case Bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case Int:
		return strconv.FormatInt(int64(t), 10), nil
	case Uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), nil
	}
	return "", &UnsupportedTypeError{Shape: v.shape()}
}
