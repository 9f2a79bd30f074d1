package bookalope

import "regexp"

// Resource ids and access tokens are fixed-length strings over the same
// alphanumeric-with-separators alphabet. Both are checked client-side
// before any request that depends on them.
var (
	idPattern    = regexp.MustCompile(`^[0-9A-Za-z_-]{32}$`)
	tokenPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{71}$`)
)

func validID(id string) bool {
	return idPattern.MatchString(id)
}

func validToken(token string) bool {
	return tokenPattern.MatchString(token)
}
