package signature // import "blitznote.com/src/oss.signature"

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"

	"blitznote.com/src/oss.signature/canonical.query"
)

// Version of this library, also sent as part of the client identifier.
const Version = "1.0.0"

const (
	signatureVersion = "OSS4-HMAC-SHA256"
	unsignedPayload  = "UNSIGNED-PAYLOAD"
	scopeSuffix      = "aliyun_v4_request"
	signingKeySalt   = "aliyun_v4"

	clientID = "oss.signature/" + Version

	iso8601Format = "20060102T150405Z"
)

// Results in a syscall issued by 'runtime'.
//
// Will be overwritten in tests to pin the instant.
var timeNow func() time.Time = time.Now

// Sign seals one outbound request with an OSS V4 signature.
//
// With presign left nil the signature travels in request headers:
// Sign inserts the scheme's fixed headers (client identifier, x-oss-date,
// Date, the UNSIGNED-PAYLOAD sentinel, and the security token if the
// credential carries one) and sets Authorization. With presign given,
// the request's headers stay untouched and the full authentication
// material is folded into the URL's query string instead, ending in
// "x-oss-signature".
//
// Sign either completes fully or returns an error having left req
// exactly as it was; a request whose signing failed must not be sent.
// It is called once per outbound request, immediately before dispatch.
func Sign(req *http.Request, cred Credential, sctx SignContext, presign *QueryAuthOptions) error {
	if cred.AccessKeyID == "" {
		return &SigningError{Reason: "empty access key id"}
	}
	if cred.AccessKeySecret == "" {
		return &SigningError{Reason: "empty access key secret"}
	}
	switch {
	case !utf8.ValidString(sctx.Bucket):
		return &EncodingError{What: "bucket"}
	case !utf8.ValidString(sctx.Key):
		return &EncodingError{What: "key"}
	}

	now := timeNow().UTC()
	datetime := now.Format(iso8601Format)
	date := datetime[:8]
	scope := date + "/" + sctx.Region + "/" + sctx.Product + "/" + scopeSuffix

	canonicalPath := escapePath(signPath(sctx.Bucket, sctx.Key))

	// Everything below is computed on the side; req is not touched
	// until no error can occur anymore.
	var (
		canonicalQuery string
		headerBlock    string
		signedNames    string
		stagedHeader   http.Header
		err            error
	)

	if presign != nil {
		canonicalQuery, err = presignQuery(cred, sctx, presign, datetime, scope)
		if err != nil {
			return err
		}
	} else {
		canonicalQuery, err = query.Encode(sctx.Query)
		if err != nil {
			return errors.Wrap(&PayloadError{Cause: err}, "canonical query")
		}

		stagedHeader = req.Header.Clone()
		if stagedHeader == nil {
			stagedHeader = make(http.Header)
		}
		stagedHeader.Set(headerClient, clientID)
		stagedHeader.Set(headerDate, datetime)
		stagedHeader.Set("Date", now.Format(time.RFC1123Z))
		stagedHeader.Set(headerContentSHA256, unsignedPayload)
		if cred.SecurityToken != "" {
			if !httpguts.ValidHeaderFieldValue(cred.SecurityToken) {
				return &HeaderValueError{Name: headerSecurityToken}
			}
			stagedHeader.Set(headerSecurityToken, cred.SecurityToken)
		}

		headerBlock, err = canonicalHeaders(stagedHeader, sctx.AdditionalHeaders)
		if err != nil {
			return errors.Wrap(err, "canonical headers")
		}
		signedNames = signedHeaderNames(sctx.AdditionalHeaders)
	}

	canonicalRequest := req.Method + "\n" +
		canonicalPath + "\n" +
		canonicalQuery + "\n" +
		headerBlock + "\n" +
		signedNames + "\n" +
		unsignedPayload

	sum := sha256.Sum256([]byte(canonicalRequest))
	stringToSign := signatureVersion + "\n" +
		datetime + "\n" +
		scope + "\n" +
		hex.EncodeToString(sum[:])

	key := signingKey(cred.AccessKeySecret, date, sctx.Region, sctx.Product)
	sig := hex.EncodeToString(hmacSHA256(key, stringToSign))

	if presign != nil {
		req.URL.RawQuery = canonicalQuery + "&x-oss-signature=" + sig
		return nil
	}

	authorization := credentialHeader(cred.AccessKeyID, scope, signedNames, sig)
	if !httpguts.ValidHeaderFieldValue(authorization) {
		return &HeaderValueError{Name: "Authorization"}
	}

	req.Header = stagedHeader
	req.Header.Set("Authorization", authorization)
	if canonicalQuery != "" {
		// The canonical form doubles as the form actually sent.
		req.URL.RawQuery = canonicalQuery
	}
	return nil
}

// presignQuery builds the canonical query of a presigned URL: the
// caller's parameters, the presign options, and the scheme's own
// material, sorted into one flat set. Scheme keys win on collision.
func presignQuery(cred Credential, sctx SignContext, presign *QueryAuthOptions, datetime, scope string) (string, error) {
	ext := make(query.Object)

	switch q := sctx.Query.(type) {
	case nil:
		// no caller parameters
	case query.Object:
		for k, v := range q {
			ext[k] = v
		}
	case query.Map:
		for k, v := range q {
			name, err := query.EncodeKey(k)
			if err != nil {
				return "", errors.Wrap(&PayloadError{Cause: err}, "presign query key")
			}
			ext[name] = v
		}
	default:
		return "", errors.Wrap(&PayloadError{Cause: query.ErrTopLevel}, "presign query")
	}

	presign.queryFields(ext)

	ext["x-oss-client"] = query.String(clientID)
	ext["x-oss-date"] = query.String(datetime)
	ext["x-oss-signature-version"] = query.String(signatureVersion)
	ext["x-oss-credential"] = query.String(cred.AccessKeyID + "/" + scope)

	canonical, err := query.Encode(ext)
	if err != nil {
		return "", errors.Wrap(&PayloadError{Cause: err}, "presign query")
	}
	return canonical, nil
}

// credentialHeader assembles the Authorization value, with the
// AdditionalHeaders clause only when names were folded in.
func credentialHeader(accessKeyID, scope, signedNames, sig string) string {
	var b strings.Builder
	b.WriteString(signatureVersion)
	b.WriteString(" Credential=")
	b.WriteString(accessKeyID)
	b.WriteByte('/')
	b.WriteString(scope)
	if signedNames != "" {
		b.WriteString(",AdditionalHeaders=")
		b.WriteString(signedNames)
	}
	b.WriteString(",Signature=")
	b.WriteString(sig)
	return b.String()
}

// signingKey derives the per-day signing key:
// HMAC chain over date, region and product, rooted in the salted secret.
// Each step is keyed by the previous step's output; only the first key
// is a plain byte concatenation, not an HMAC.
func signingKey(secret, date, region, product string) []byte {
	k := hmacSHA256([]byte(signingKeySalt+secret), date)
	k = hmacSHA256(k, region)
	k = hmacSHA256(k, product)
	return hmacSHA256(k, scopeSuffix)
}

func hmacSHA256(key []byte, message string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
