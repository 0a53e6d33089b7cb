// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements Redactor, which scrubs obvious PII from request
// metadata (query strings, header values) before the access logger emits it.
//
//   - Never sees request or response bodies.
//   - Replaces UUIDs, email addresses and phone numbers with placeholders.
//   - Fully masks sensitive headers (Authorization, Cookie, Set-Cookie, plus
//     any configured extras).
package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

const redactedValue = "[REDACTED]"

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits only, so hex segments of a UUID never match.
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Redactor scrubs strings and headers for logging. The zero value masks only
// the built-in sensitive headers.
type Redactor struct {
	mask map[string]struct{}
}

// NewRedactor returns a Redactor that also masks the named headers
// (case-insensitive).
func NewRedactor(maskHeaders ...string) *Redactor {
	r := &Redactor{mask: map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}}
	for _, h := range maskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			r.mask[h] = struct{}{}
		}
	}
	return r
}

// String replaces identifiers in s. UUIDs go first: the phone pattern is the
// loosest and would otherwise eat their digit groups.
func (r *Redactor) String(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// Headers returns a flattened, scrubbed copy of h.
func (r *Redactor) Headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if r.masked(k) {
			out[k] = redactedValue
			continue
		}
		out[k] = r.String(strings.Join(vv, ", "))
	}
	return out
}

func (r *Redactor) masked(header string) bool {
	key := strings.ToLower(header)
	if r == nil || r.mask == nil {
		return key == "authorization" || key == "cookie" || key == "set-cookie"
	}
	_, ok := r.mask[key]
	return ok
}
