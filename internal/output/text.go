package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/facet/internal/review"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Facet Code Review — %s mode\n", report.Mode)
	ew.printf("Provider: %s\n", report.Provider)
	if len(report.Files) > 0 {
		ew.printf("Files: %s\n", strings.Join(report.Files, ", "))
	}
	ew.println(strings.Repeat("─", 60))
	ew.println(strings.TrimRight(report.Output, "\n"))
	ew.println(strings.Repeat("─", 60))

	switch report.Verdict {
	case review.VerdictPassed:
		ew.println("Result: PASSED")
	case review.VerdictFailed:
		ew.println("Result: FAILED")
	default:
		ew.println("Result: UNKNOWN (no status line in backend output)")
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
