package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dshills/facet/internal/config"
	"github.com/dshills/facet/internal/providers"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		spec := cfg.ProviderSpec()
		fmt.Fprintf(os.Stdout, "Checking %s (%s)...\n", spec, providers.Describe(spec))

		router := providers.NewRouter(providers.Options{
			Endpoint: cfg.OllamaHost,
			Timeout:  30 * time.Second,
			Logger:   &log,
		})

		_, err = router.Execute(context.Background(), spec, "Respond with exactly: ok")
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			switch providers.KindOf(err) {
			case providers.KindInvalidHost, providers.KindUnknownProvider:
				exitCode = ExitUsageError
			default:
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and responding\n", spec)
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&flagProvider, "provider", "", "Provider to check")
	doctorCmd.Flags().StringVar(&flagModel, "model", "", "Model to check")
}
