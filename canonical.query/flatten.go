// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

import (
	"bytes"
	"sort"
	"strconv"
	"unicode/utf8"
)

// What a top-level field contributes to the canonical query.
//
// The three cases are kept apart deliberately: a value that encodes to
// zero bytes (the empty string) is not the same as an absent value, and
// conflating the two through empty output has bitten before.
type fieldState int

const (
	fieldAbsent  fieldState = iota // no key, no separator
	fieldMarker                    // bare key, no '='
	fieldPresent                   // key '=' bytes, bytes possibly empty
)

// encodeField encodes the direct value of one top-level key.
func encodeField(v Value) (fieldState, []byte, error) {
	if v == nil {
		return fieldAbsent, nil, nil
	}
	if _, ok := v.(Marker); ok {
		return fieldMarker, nil, nil
	}

	var buf bytes.Buffer
	if err := encodeDirect(&buf, v); err != nil {
		return fieldAbsent, nil, err
	}
	return fieldPresent, buf.Bytes(), nil
}

// encodeDirect writes a value sitting directly under a top-level key.
// Scalars appear bare; collections are wrapped into a brace-delimited
// object literal so the subtree travels as a single parameter value.
func encodeDirect(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case Seq:
		buf.WriteByte('{')
		for i, el := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNested(buf, strconv.Itoa(i+1), el); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case Object:
		buf.WriteByte('{')
		if err := encodeObjectEntries(buf, t, ""); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	case Map:
		buf.WriteByte('{')
		if err := encodeMapEntries(buf, t, ""); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	}

	text, err := scalarText(v)
	if err != nil {
		return err
	}
	buf.WriteString(Escape(text))
	return nil
}

// encodeNested writes one `"path":"value"` entry, or the flattened run of
// entries for a whole subtree. Values here are always quoted.
func encodeNested(buf *bytes.Buffer, path string, v Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteByte('"')
		buf.WriteString(path)
		buf.WriteString(`":""`)
		return nil
	case Marker:
		return &UnsupportedTypeError{Shape: "marker below top level"}
	case Seq:
		for i, el := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNested(buf, path+"."+strconv.Itoa(i+1), el); err != nil {
				return err
			}
		}
		return nil
	case Object:
		return encodeObjectEntries(buf, t, path)
	case Map:
		return encodeMapEntries(buf, t, path)
	}

	text, err := scalarText(v)
	if err != nil {
		return err
	}
	buf.WriteByte('"')
	buf.WriteString(path)
	buf.WriteString(`":"`)
	buf.WriteString(Escape(text))
	buf.WriteByte('"')
	return nil
}

// Entries of an object sort by their own key, independently of whatever
// their siblings or parents do. The sorted keys are then rendered in
// place, which inlines each subtree's run right after its key.
func encodeObjectEntries(buf *bytes.Buffer, obj Object, parent string) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if !utf8.ValidString(k) {
			return ErrInvalidUTF8
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeNested(buf, joinPath(parent, k), obj[k]); err != nil {
			return err
		}
	}
	return nil
}

func encodeMapEntries(buf *bytes.Buffer, m Map, parent string) error {
	type entry struct {
		key string
		val Value
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		text, err := EncodeKey(k)
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: text, val: v})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeNested(buf, joinPath(parent, e.key), e.val); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// scalarText renders a scalar shape as plain text, unescaped.
func scalarText(v Value) (string, error) {
	switch t := v.(type) {
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
