// Package redact scrubs likely secrets from diffs before they are sent to a
// review backend. Detection is heuristic; patterns favor false positives over
// leaking credentials to third-party services.
package redact
