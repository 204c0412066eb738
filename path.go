package signature // import "blitznote.com/src/oss.signature"

import (
	"strings"

	"blitznote.com/src/oss.signature/canonical.query"
)

// signPath is the resource path the signature covers.
//
// The trailing slash for a bucket without key is load-bearing:
// "/bucket" and "/bucket/" verify against different signatures.
func signPath(bucket, key string) string {
	switch {
	case bucket != "" && key != "":
		return "/" + bucket + "/" + key
	case bucket != "":
		return "/" + bucket + "/"
	case key != "":
		return "/" + key
	}
	return "/"
}

// escapePath percent-encodes every path segment on its own,
// keeping the '/' separators literal.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i := range segments {
		segments[i] = query.Escape(segments[i])
	}
	return strings.Join(segments, "/")
}
