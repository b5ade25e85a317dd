package providers

import "regexp"

// hostPattern is the full endpoint grammar: scheme://host[:port] with at most
// a single trailing slash. No path, no query, no userinfo, no whitespace or
// control characters. Anything outside the character classes fails the match,
// so injected flags, newlines, and shell metacharacters are all rejected.
var hostPattern = regexp.MustCompile(`^https?://[A-Za-z0-9]([A-Za-z0-9.-]*[A-Za-z0-9])?(:[0-9]{1,5})?/?$`)

// ValidateHost reports whether url is an acceptable model-server endpoint.
// Every endpoint must pass this check before any transport uses it; the
// check fails closed on anything it does not positively recognize.
func ValidateHost(url string) bool {
	return hostPattern.MatchString(url)
}
