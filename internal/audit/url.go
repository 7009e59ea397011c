package audit

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL prefixes https:// when the scheme is missing and checks the result
// is an absolute http(s) URL with a host.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return "", ErrInvalidURL
	}
	if !schemePattern.MatchString(s) {
		if strings.Contains(s, "://") {
			return "", ErrInvalidURL
		}
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", ErrInvalidURL
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", ErrInvalidURL
	}
	host := u.Hostname()
	if host == "" || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return "", ErrInvalidURL
	}
	u.Scheme = scheme
	return u.String(), nil
}

// IsHTTPURL reports whether s is already an absolute http(s) URL with a host.
func IsHTTPURL(s string) bool {
	if !schemePattern.MatchString(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Hostname() != ""
}
