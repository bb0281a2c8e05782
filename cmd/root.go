package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cloudboard/internal/catalog"
	"cloudboard/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cloudboard",
	Short: "See which cloud provider hosts well-known companies",
	Long: `cloudboard is a terminal dashboard that visualizes which cloud provider
(AWS, Azure, GCP, Oracle or Alibaba) hosts a curated catalog of well-known
companies. Search and filter the catalog, preview per-provider subsets, and
submit any domain to have its provider detected and added for the session.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed detections)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "cloudboard version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// buildStore assembles the session catalog store: the built-in seed plus any
// extra entries from a catalog file. An explicit path (from a flag) wins over
// the configured one. The store itself deduplicates, first entry wins.
func buildStore(cfg config.Config, catalogFile string) (*catalog.Store, error) {
	seed := catalog.DefaultSeed()

	path := catalogFile
	if path == "" {
		path = cfg.Catalog.File
	}
	if path != "" {
		extra, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		seed = append(seed, extra...)
	}

	return catalog.NewStore(seed), nil
}
