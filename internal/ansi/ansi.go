package ansi

import (
	"regexp"
	"strings"
)

// Escape sequence classes, matched in order. CSI must run before the generic
// pattern so `ESC [ 0 m` is removed whole rather than leaving `0m` behind.
var sequences = []*regexp.Regexp{
	// CSI: ESC [ parameters intermediates final-byte
	regexp.MustCompile(`\x1b\[[0-9;:?]*[ -/]*[@-~]`),
	// OSC: ESC ] ... terminated by BEL or ST
	regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`),
	// Two-character escapes and any dangling ESC
	regexp.MustCompile(`\x1b[\x40-\x5f]?`),
}

// Strip removes ANSI/VT100 escape sequences from s. All other bytes pass
// through unchanged and in order, so stripping already-clean text is a no-op.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	for _, pat := range sequences {
		s = pat.ReplaceAllString(s, "")
	}
	return s
}
