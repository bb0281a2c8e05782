package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudboard/internal/config"
	"cloudboard/internal/detect"
	"cloudboard/internal/ingest"
	"cloudboard/internal/tui/controller"
	"cloudboard/pkg/logging"
)

// dashboardDebug enables verbose logging in the TUI log overlay.
var dashboardDebug bool

// dashboardCatalog points at an extra YAML catalog file merged on top of the
// built-in seed for this session.
var dashboardCatalog string

// dashboardCmd launches the interactive terminal dashboard. It is the main
// surface of cloudboard; everything else is a scripting or agent convenience
// over the same catalog and detection code.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive cloud provider dashboard",
	Long: `Launches the full-screen terminal dashboard.

The dashboard shows the provider share chart, per-provider filter pills and
the company grid. Type / to search, a to submit a new domain for detection,
and ? for the full key reference. Companies added during the session are kept
in memory only and discarded on exit.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if dashboardDebug {
		level = logging.LevelDebug
	}
	logChannel := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	store, err := buildStore(cfg, dashboardCatalog)
	if err != nil {
		return err
	}

	detector := detect.New(cfg.Detection.Endpoint, cfg.Detection.Timeout())
	ingestor := ingest.New(store, detector)

	program := controller.NewProgram(store, ingestor, cfg.Detection.Timeout(), dashboardDebug, logChannel)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardDebug, "debug", false, "Enable verbose logging in the log overlay")
	dashboardCmd.Flags().StringVar(&dashboardCatalog, "catalog", "", "Extra YAML catalog file merged with the built-in seed")
}
