// Package signature computes OSS V4 request signatures
// (scheme "OSS4-HMAC-SHA256") for a cloud object-storage HTTP API.
//
// It is the client-side half of the service's authentication check:
// for every outbound request it derives the canonical resource path,
// the canonical query string and the canonical header block, hashes
// them into a string-to-sign, and seals that with a signing key derived
// from the account secret through a four-step HMAC-SHA256 chain.
//
// The request then carries a header formatted like this:
//
//	Authorization: OSS4-HMAC-SHA256 Credential=(key_id)/(date)/(region)/(product)/aliyun_v4_request,
//	    Signature=(64 hex digits)
//
// Alternatively a presigned URL carries the same material in its query
// string ("x-oss-credential", "x-oss-date", "x-oss-signature"), usable
// by a party without access to the credential until an embedded expiry.
//
// Signing performs no I/O and holds no state between calls; any number
// of requests may be signed concurrently. All it consumes besides its
// arguments is the wall clock.
//
// The payload body is never hashed. Its presence is asserted with the
// fixed sentinel "UNSIGNED-PAYLOAD", which is what the server expects
// for streaming uploads of unknown length.
package signature // import "blitznote.com/src/oss.signature"
