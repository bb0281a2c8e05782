package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudboard/internal/config"
	"cloudboard/internal/detect"
	"cloudboard/pkg/logging"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <domain>",
		Short: "Detect the cloud provider hosting a domain",
		Long: `Asks the detection endpoint which cloud provider hosts the given domain
and prints the result. The input is passed to the endpoint as typed; schemes
like https:// are fine. Exits non-zero when detection fails.`,
		Args: cobra.ExactArgs(1),
		RunE: runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logging.InitForCLI(logging.ParseLevel(cfg.Logging.Level), os.Stderr)

	detector := detect.New(cfg.Detection.Endpoint, cfg.Detection.Timeout())
	provider, err := detector.Detect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("detecting provider for %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is hosted on %s\n", args[0], provider)
	return nil
}
