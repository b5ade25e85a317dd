package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. The review verdict maps onto the exit status so facet works as
// a CI gate.
const (
	ExitSuccess      = 0
	ExitReviewFailed = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var flagVerbose bool

// log is the process logger, quiet unless --verbose is set.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "Route a code-review prompt to an AI backend",
	Long: "Facet sends code changes to an AI backend (claude, gemini, codex, or a local\n" +
		"Ollama model) for review and reports a PASSED/FAILED verdict with a matching\n" +
		"exit code.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log = log.Level(zerolog.DebugLevel)
		}
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print facet version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "facet version %s\n", version)
	},
}
