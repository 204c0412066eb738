package signature // import "blitznote.com/src/oss.signature"

import (
	"blitznote.com/src/oss.signature/canonical.query"
)

// Credential is the long-lived account identity requests are signed with.
//
// It is copied into every signing call and never mutated; rotation is the
// caller's business and takes effect with the next call.
type Credential struct {
	AccessKeyID     string
	AccessKeySecret string

	// SecurityToken carries temporary (STS) credentials along.
	// Empty means the credential is a permanent one.
	SecurityToken string
}

// SignContext are the per-request parameters one signature binds to.
// Created fresh per request, consumed once.
type SignContext struct {
	// Region and Product select the scope the signature is valid in,
	// e.g. "cn-hangzhou" and "oss".
	Region  string
	Product string

	// Bucket and Key locate the resource. Either or both may be empty;
	// the canonical path degrades from "/bucket/key" over "/bucket/"
	// and "/key" down to "/".
	Bucket string
	Key    string

	// Query is the request's structured query parameter set,
	// a query.Object or query.Map. nil means no parameters.
	Query query.Value

	// AdditionalHeaders names headers that are folded into the
	// signed-header set although the scheme would not cover them
	// by default. Case-insensitive.
	AdditionalHeaders []string
}
