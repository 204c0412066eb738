package signature // import "blitznote.com/src/oss.signature"

import (
	"blitznote.com/src/oss.signature/canonical.query"
)

// QueryAuthOptions switches signing into its presigned-URL mode:
// authentication material goes into the query string instead of request
// headers, and the result stays valid until the embedded expiry.
//
// Empty strings mean "not set". Response header overrides instruct the
// server what to send back for content negotiation headers; they are
// covered by the signature like everything else.
type QueryAuthOptions struct {
	// ExpiresSeconds is the lifetime of the presigned URL.
	ExpiresSeconds uint32

	ResponseContentType        string
	ResponseContentLanguage    string
	ResponseContentDisposition string
	ResponseContentEncoding    string

	// VersionID addresses one version of the object, where versioning
	// is enabled on the bucket.
	VersionID string

	// Process is a processing directive, e.g. an image transform.
	Process string

	// Additional is an open-ended set of extra parameters.
	// Keys must be unique; order is irrelevant, the canonical form
	// sorts anyway.
	Additional map[string]string
}

// queryFields folds the options into the extended query value the
// presigned canonical query is built from.
func (o *QueryAuthOptions) queryFields(ext query.Object) {
	ext["x-oss-expires"] = query.Uint(uint64(o.ExpiresSeconds))

	optional := map[string]string{
		"response-content-type":        o.ResponseContentType,
		"response-content-language":    o.ResponseContentLanguage,
		"response-content-disposition": o.ResponseContentDisposition,
		"response-content-encoding":    o.ResponseContentEncoding,
		"version-id":                   o.VersionID,
		"x-oss-process":                o.Process,
	}
	for k, v := range optional {
		if v != "" {
			ext[k] = query.String(v)
		}
	}

	for k, v := range o.Additional {
		ext[k] = query.String(v)
	}
}
