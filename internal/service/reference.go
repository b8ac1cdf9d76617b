package service

import (
	"net/url"
	"strings"
)

const secretRoute = "/secret/"

// ParseReference accepts either a bare reference or a full redemption link
// and returns the reference. For a link the path segment following
// "/secret/" is used; anything else is returned as given, minus surrounding
// whitespace.
func ParseReference(raw string) string {
	s := strings.TrimSpace(raw)

	u, err := url.Parse(s)
	if err != nil {
		return s
	}

	idx := strings.LastIndex(u.Path, secretRoute)
	if idx < 0 {
		return s
	}

	rest := strings.Trim(u.Path[idx+len(secretRoute):], "/")
	if rest == "" || strings.Contains(rest, "/") {
		return s
	}
	return rest
}
