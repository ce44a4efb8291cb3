package utils

import (
	"net/url"
	"strings"
)

// SafeNextPath validates a post-login redirect destination. Only same-origin
// relative paths are honoured; anything carrying a scheme, a host or a
// protocol-relative prefix falls back to "/".
func SafeNextPath(next string) string {
	if next == "" {
		return "/"
	}
	// Browsers treat a backslash after the slash like "//", so both
	// protocol-relative forms are rejected.
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
