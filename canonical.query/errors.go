// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query // import "blitznote.com/src/oss.signature/canonical.query"

import "errors"

// Happen before any byte of the canonical form is emitted.
var (
	// ErrTopLevel is returned for top-level values that are not
	// an Object or a Map.
	ErrTopLevel = errors.New("top-level encoder supports only objects and maps")

	// ErrInvalidUTF8 is returned for text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// UnsupportedTypeError reports a shape that has no canonical form in the
// position it was found in, such as a Marker below the top level or a
// sequence used as a map key.
type UnsupportedTypeError struct {
	Shape string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + e.Shape
}
