package gitctx

import (
	"fmt"
	"os/exec"
	"strings"
)

// DiffOptions controls how diffs are gathered.
type DiffOptions struct {
	ContextLines int
	MaxDiffBytes int
}

// DiffResult holds the collected diff and metadata.
type DiffResult struct {
	Diff  string
	Files []string
	Mode  string
}

// Unstaged returns the diff of working tree vs index.
func Unstaged(opts DiffOptions) (DiffResult, error) {
	diff, err := gitOutput(append([]string{"diff"}, diffArgs(opts)...)...)
	if err != nil {
		return DiffResult{}, fmt.Errorf("git diff: %w", err)
	}
	return buildResult(diff, "unstaged", opts), nil
}

// Staged returns the diff of index vs HEAD.
func Staged(opts DiffOptions) (DiffResult, error) {
	diff, err := gitOutput(append([]string{"diff", "--cached"}, diffArgs(opts)...)...)
	if err != nil {
		return DiffResult{}, fmt.Errorf("git diff --cached: %w", err)
	}
	return buildResult(diff, "staged", opts), nil
}

// Commit returns the diff introduced by a single commit.
func Commit(sha string, opts DiffOptions) (DiffResult, error) {
	args := append([]string{"diff", sha + "~1", sha}, diffArgs(opts)...)
	diff, err := gitOutput(args...)
	if err != nil {
		// Initial commit has no parent; git show covers it.
		diff, err = gitOutput("show", "--format=", sha)
		if err != nil {
			return DiffResult{}, fmt.Errorf("git show %s: %w", sha, err)
		}
	}
	return buildResult(diff, "commit", opts), nil
}

func diffArgs(opts DiffOptions) []string {
	var args []string
	if opts.ContextLines > 0 {
		args = append(args, fmt.Sprintf("-U%d", opts.ContextLines))
	}
	return args
}

func buildResult(diff, mode string, opts DiffOptions) DiffResult {
	files := extractFiles(diff)
	if opts.MaxDiffBytes > 0 && len(diff) > opts.MaxDiffBytes {
		diff = diff[:opts.MaxDiffBytes] + "\n... (diff truncated at max-diff-bytes limit)\n"
	}
	return DiffResult{Diff: diff, Files: files, Mode: mode}
}

func extractFiles(diff string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(diff, "\n") {
		if f, ok := strings.CutPrefix(line, "+++ b/"); ok && !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	return files
}

func gitOutput(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
