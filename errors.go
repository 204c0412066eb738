package signature // import "blitznote.com/src/oss.signature"

// Every error here surfaces before any network request is issued, and
// before the request handed to Sign has been touched. A request that
// failed to sign must not be sent; a server-side rejection of a
// signature (403) is a different animal and reported downstream.

// HeaderValueError reports header content that cannot legally travel
// in an HTTP header field.
type HeaderValueError struct {
	Name string
}

// Error implements the error interface.
func (e *HeaderValueError) Error() string {
	return "illegal value for header: " + e.Name
}

// PayloadError reports that serializing the query parameters into their
// canonical form hit a shape with no canonical encoding.
type PayloadError struct {
	Cause error
}

// Error implements the error interface.
func (e *PayloadError) Error() string {
	return "invalid payload: " + e.Cause.Error()
}

// Unwrap makes the query package's typed errors reachable via errors.As.
func (e *PayloadError) Unwrap() error { return e.Cause }

// SigningError reports that no signing key could be constructed from
// the given credential.
type SigningError struct {
	Reason string
}

// Error implements the error interface.
func (e *SigningError) Error() string {
	return "cannot derive signing key: " + e.Reason
}

// EncodingError reports content that must be valid UTF-8 but is not.
type EncodingError struct {
	What string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return e.What + " is not valid UTF-8"
}
