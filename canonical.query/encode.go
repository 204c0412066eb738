// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Encode renders a top-level set of query parameters into its canonical
// form: `key=value` fragments in byte order of their keys, joined by '&'.
//
// The top-level value must be an Object or a Map; nil encodes to the
// empty string. Absent fields are omitted entirely, Marker fields emit
// their bare key, and everything else emits `key=` followed by the
// field's canonical bytes. The sort never descends into a fragment:
// nested collections keep their brace-wrapped inline form untouched.
func Encode(top Value) (string, error) {
	if top == nil {
		return "", nil
	}

	type fragment struct {
		key  string
		text string
	}
	var fragments []fragment

	add := func(key string, v Value) error {
		if !utf8.ValidString(key) {
			return ErrInvalidUTF8
		}
		state, b, err := encodeField(v)
		if err != nil {
			return err
		}
		switch state {
		case fieldAbsent:
			return nil
		case fieldMarker:
			fragments = append(fragments, fragment{key: key, text: key})
		default:
			fragments = append(fragments, fragment{key: key, text: key + "=" + string(b)})
		}
		return nil
	}

	switch t := top.(type) {
	case Object:
		for k, v := range t {
			if err := add(k, v); err != nil {
				return "", err
			}
		}
	case Map:
		for k, v := range t {
			key, err := EncodeKey(k)
			if err != nil {
				return "", err
			}
			if err := add(key, v); err != nil {
				return "", err
			}
		}
	default:
		return "", ErrTopLevel
	}

	sort.SliceStable(fragments, func(i, j int) bool { return fragments[i].key < fragments[j].key })

	parts := make([]string, len(fragments))
	for i := range fragments {
		parts[i] = fragments[i].text
	}
	return strings.Join(parts, "&"), nil
}
