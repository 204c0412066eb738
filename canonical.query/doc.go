// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query renders structured values into the canonical form
// the OSS V4 signature scheme is computed over.
//
// The canonical form is a query string whose keys appear in byte order,
// with every byte outside of 'A'–'Z', 'a'–'z', '0'–'9', '-', '_', '.'
// and '~' escaped as uppercase %XX:
//
//	delimiter=%2F&max-keys=100&prefix=invoices%2F2023
//
// Values nested below a top-level key are flattened into a brace-delimited
// object literal with dot-joined path segments, so that the whole subtree
// travels as one parameter value:
//
//	tagging={"tag.1":"a","tag.2":"b"}
//
// The server recomputes the very same bytes; any deviation, however small,
// yields a signature mismatch with no diagnostic beyond a 403.
// For this reason the package accepts no arbitrary interfaces and does no
// reflection: callers spell out one of a closed set of shapes (Value),
// and anything else is rejected before a single byte is written.
package query // import "blitznote.com/src/oss.signature/canonical.query"
