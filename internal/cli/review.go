package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dshills/facet/internal/config"
	"github.com/dshills/facet/internal/gitctx"
	"github.com/dshills/facet/internal/output"
	"github.com/dshills/facet/internal/providers"
	"github.com/dshills/facet/internal/redact"
	"github.com/dshills/facet/internal/review"
	"github.com/spf13/cobra"
)

// Shared review flags
var (
	flagProvider     string
	flagModel        string
	flagFormat       string
	flagOut          string
	flagTimeout      int
	flagContextLines int
	flagMaxDiffBytes int
	flagNoRedact     bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review code changes with an AI backend",
}

var reviewUnstagedCmd = &cobra.Command{
	Use:   "unstaged",
	Short: "Review working tree changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewMode(gitctx.Unstaged)
	},
}

var reviewStagedCmd = &cobra.Command{
	Use:   "staged",
	Short: "Review staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewMode(gitctx.Staged)
	},
}

var reviewCommitCmd = &cobra.Command{
	Use:   "commit <sha>",
	Short: "Review a specific commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewMode(func(opts gitctx.DiffOptions) (gitctx.DiffResult, error) {
			return gitctx.Commit(args[0], opts)
		})
	},
}

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "AI backend (claude, gemini, codex, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name (mainly for ollama, e.g. codellama:7b)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Per-call timeout in seconds")
	cmd.Flags().IntVar(&flagContextLines, "context-lines", 0, "Number of context lines in diff")
	cmd.Flags().IntVar(&flagMaxDiffBytes, "max-diff-bytes", 0, "Maximum diff size in bytes")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagContextLines > 0 {
		m["contextLines"] = fmt.Sprintf("%d", flagContextLines)
	}
	if flagMaxDiffBytes > 0 {
		m["maxDiffBytes"] = fmt.Sprintf("%d", flagMaxDiffBytes)
	}
	return m
}

func runReviewMode(gather func(gitctx.DiffOptions) (gitctx.DiffResult, error)) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	diff, err := gather(gitctx.DiffOptions{
		ContextLines: cfg.ContextLines,
		MaxDiffBytes: cfg.MaxDiffBytes,
	})
	if err != nil {
		return err
	}

	runReview(diff, cfg)
	return nil
}

func runReview(diff gitctx.DiffResult, cfg config.Config) {
	if strings.TrimSpace(diff.Diff) == "" {
		fmt.Fprintln(os.Stdout, "No changes to review.")
		return
	}

	diffText := diff.Diff
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if cfg.Privacy.RedactSecrets {
		diffText = redact.Diff(diffText, diff.Files, cfg.Privacy.RedactPaths)
	}

	prompt := review.BuildPrompt(diffText, diff.Files)
	spec := cfg.ProviderSpec()

	router := providers.NewRouter(providers.Options{
		Endpoint: cfg.OllamaHost,
		Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:   &log,
	})

	text, err := router.Execute(context.Background(), spec, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		switch providers.KindOf(err) {
		case providers.KindInvalidHost, providers.KindUnknownProvider:
			exitCode = ExitUsageError
		default:
			exitCode = ExitRuntimeError
		}
		return
	}

	verdict := review.ParseVerdict(text)
	report := &review.Report{
		Provider: spec,
		Mode:     diff.Mode,
		Files:    diff.Files,
		Verdict:  verdict,
		Status:   verdict.String(),
		Output:   text,
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	switch verdict {
	case review.VerdictPassed:
		exitCode = ExitSuccess
	case review.VerdictFailed:
		exitCode = ExitReviewFailed
	default:
		// Backend answered but never gave a verdict; treat as a runtime
		// problem rather than silently passing.
		log.Warn().Str("provider", spec).Msg("no STATUS line in backend output")
		exitCode = ExitRuntimeError
	}
}

func init() {
	reviewCmd.AddCommand(reviewUnstagedCmd)
	reviewCmd.AddCommand(reviewStagedCmd)
	reviewCmd.AddCommand(reviewCommitCmd)
	addReviewFlags(reviewUnstagedCmd)
	addReviewFlags(reviewStagedCmd)
	addReviewFlags(reviewCommitCmd)
}
