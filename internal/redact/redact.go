package redact

import (
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for credential types a review diff
// realistically carries.
var secretPatterns = []*regexp.Regexp{
	// Assignments: api_key=..., secret: "...", password = '...'
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password|passwd|credential)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{8,})["']?`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Anthropic/OpenAI-style keys
	regexp.MustCompile(`sk-[A-Za-z0-9_-]{20,}`),
}

// Secrets replaces detected secrets in text with [REDACTED]. Text without
// matches is returned unchanged.
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// ShouldRedactPath checks if a file path matches any of the redaction path patterns.
func ShouldRedactPath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		// Patterns like "**/.env" also match on the bare filename.
		if clean, ok := strings.CutPrefix(pattern, "**/"); ok {
			if matched, err := filepath.Match(clean, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Diff scrubs secrets from a diff, dropping the content of any file whose
// path matches the redaction path policy.
func Diff(diff string, files []string, redactPaths []string) string {
	for _, f := range files {
		if ShouldRedactPath(f, redactPaths) {
			return placeholder + " (diff touches a path covered by redaction policy)\n"
		}
	}
	return Secrets(diff)
}
