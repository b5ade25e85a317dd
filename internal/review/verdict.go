package review

import "strings"

// Verdict is the review outcome parsed from backend output.
type Verdict int

const (
	// VerdictUnknown means no recognizable status line was found.
	VerdictUnknown Verdict = iota
	VerdictPassed
	VerdictFailed
)

func (v Verdict) String() string {
	switch v {
	case VerdictPassed:
		return "passed"
	case VerdictFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report is the result of one review call.
type Report struct {
	Provider string   `json:"provider"`
	Mode     string   `json:"mode"`
	Files    []string `json:"files,omitempty"`
	Verdict  Verdict  `json:"-"`
	Status   string   `json:"status"`
	Output   string   `json:"output"`
}

// ParseVerdict scans normalized backend output for the status line. The last
// STATUS line wins, so a model that echoes the instructions before answering
// is still parsed correctly. Trailing whitespace and text after the keyword
// ("STATUS: FAILED - see notes") are tolerated.
func ParseVerdict(text string) Verdict {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		rest, ok := strings.CutPrefix(line, "STATUS:")
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(strings.TrimSpace(rest), "PASSED"):
			return VerdictPassed
		case strings.HasPrefix(strings.TrimSpace(rest), "FAILED"):
			return VerdictFailed
		}
	}
	return VerdictUnknown
}
