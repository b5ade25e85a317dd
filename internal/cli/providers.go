package cli

import (
	"fmt"
	"os"

	"github.com/dshills/facet/internal/providers"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect supported AI backends",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported providers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, base := range []string{
			providers.ProviderClaude,
			providers.ProviderGemini,
			providers.ProviderCodex,
			providers.ProviderOllama,
		} {
			fmt.Fprintf(os.Stdout, "%-8s %s\n", base, providers.Describe(base))
		}
	},
}

var providersDescribeCmd = &cobra.Command{
	Use:   "describe <spec>",
	Short: "Describe a provider specification",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, providers.Describe(args[0]))
		if !providers.Known(providers.ParseSpec(args[0]).Base) {
			exitCode = ExitUsageError
		}
	},
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersDescribeCmd)
}
