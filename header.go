package signature // import "blitznote.com/src/oss.signature"

import (
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Fixed header names of the scheme.
const (
	headerClient        = "x-sdk-client"
	headerDate          = "x-oss-date"
	headerContentSHA256 = "x-oss-content-sha256"
	headerSecurityToken = "x-oss-security-token"

	serviceHeaderPrefix = "x-oss-"
)

// canonicalHeaders renders the header block the signature covers:
// all "x-oss-*" headers, "content-md5" and "content-type" if present,
// and every name listed in additional. Names are lowercased, values
// trimmed, lines sorted by name and terminated with '\n' each.
//
// Every included value is vetted for HTTP transmission before it makes
// it into the block; a value the transport would reject or mangle must
// not end up inside a signature either.
func canonicalHeaders(h http.Header, additional []string) (string, error) {
	wanted := make(map[string]bool, len(additional))
	for _, name := range additional {
		wanted[strings.ToLower(name)] = true
	}

	type line struct {
		name, value string
	}
	var lines []line

	for name, values := range h {
		ln := strings.ToLower(name)
		if !strings.HasPrefix(ln, serviceHeaderPrefix) &&
			ln != "content-md5" && ln != "content-type" && !wanted[ln] {
			continue
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return "", &HeaderValueError{Name: name}
			}
			lines = append(lines, line{name: ln, value: strings.TrimSpace(v)})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].name < lines[j].name })

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.name)
		b.WriteByte(':')
		b.WriteString(l.value)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// signedHeaderNames is the ";"-joined list of the additional header
// names, lowercased and sorted. Only the names folded in on top of the
// scheme's defaults appear here; the default set is implied.
func signedHeaderNames(additional []string) string {
	if len(additional) == 0 {
		return ""
	}

	seen := make(map[string]bool, len(additional))
	names := make([]string, 0, len(additional))
	for _, name := range additional {
		ln := strings.ToLower(name)
		if seen[ln] {
			continue
		}
		seen[ln] = true
		names = append(names, ln)
	}
	sort.Strings(names)
	return strings.Join(names, ";")
}
