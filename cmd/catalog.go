package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cloudboard/internal/avatar"
	"cloudboard/internal/catalog"
	"cloudboard/internal/config"
)

// Flags shared by the catalog subcommands.
var (
	catalogProvider string
	catalogWide     bool
	catalogFile     string
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the company catalog from the command line",
		Long: `Read-only views over the company catalog for scripting: list the
companies, search them by name, or print per-provider totals. These commands
see the built-in seed (plus any configured catalog file); session-added
companies only exist inside a running dashboard or server.`,
	}

	catalogCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Extra YAML catalog file merged with the built-in seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all companies in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd, "")
		},
	}
	listCmd.Flags().StringVar(&catalogProvider, "provider", "", "Only show companies on this provider (aws, azure, gcp, oracle, alibaba, other)")
	listCmd.Flags().BoolVar(&catalogWide, "wide", false, "Include domain and logo URL columns")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search companies by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd, args[0])
		},
	}
	searchCmd.Flags().StringVar(&catalogProvider, "provider", "", "Only show companies on this provider (aws, azure, gcp, oracle, alibaba, other)")
	searchCmd.Flags().BoolVar(&catalogWide, "wide", false, "Include domain and logo URL columns")

	countsCmd := &cobra.Command{
		Use:   "counts",
		Short: "Print per-provider company totals",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCounts,
	}

	catalogCmd.AddCommand(listCmd)
	catalogCmd.AddCommand(searchCmd)
	catalogCmd.AddCommand(countsCmd)
	return catalogCmd
}

// providerFilterFlag turns the --provider flag value into a filter. An empty
// flag means no filter; a value that is not a known provider name is an error
// rather than silently landing in the Other bucket.
func providerFilterFlag(value string) (*catalog.Provider, error) {
	if value == "" {
		return nil, nil
	}
	p := catalog.ParseProvider(value)
	if p == catalog.ProviderOther && !strings.EqualFold(strings.TrimSpace(value), "other") {
		return nil, fmt.Errorf("unknown provider %q (expected one of aws, azure, gcp, oracle, alibaba, other)", value)
	}
	return &p, nil
}

func runCatalogList(cmd *cobra.Command, query string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	store, err := buildStore(cfg, catalogFile)
	if err != nil {
		return err
	}
	providerFilter, err := providerFilterFlag(catalogProvider)
	if err != nil {
		return err
	}

	companies := catalog.Filter(store.All(), query, providerFilter)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if catalogWide {
		fmt.Fprintln(w, "NAME\tSYMBOL\tPROVIDER\tDOMAIN\tLOGO")
		for _, c := range companies {
			logo, _ := avatar.FirstSource(c.Domain, c.Name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Symbol, c.Provider, c.Domain, logo)
		}
	} else {
		fmt.Fprintln(w, "NAME\tSYMBOL\tPROVIDER")
		for _, c := range companies {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Symbol, c.Provider)
		}
	}
	return w.Flush()
}

func runCatalogCounts(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	store, err := buildStore(cfg, catalogFile)
	if err != nil {
		return err
	}

	counts := catalog.Counts(store.All())
	total := store.Len()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tCOMPANIES")
	for _, slice := range catalog.PieData(counts) {
		fmt.Fprintf(w, "%s\t%d\n", slice.Name, slice.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nAWS+Azure+GCP host %d%% of %d companies\n",
		catalog.BigThreeShare(counts, total), total)
	return nil
}
