package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/engine"
	import_pkg "github.com/tx-address/internal/import"
	"github.com/tx-address/internal/normalize"
	"github.com/tx-address/internal/postal"
	"github.com/tx-address/internal/validation"
	"github.com/tx-address/internal/web"
)

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func createParseCmd() *cobra.Command {
	var useLibpostal bool

	cmd := &cobra.Command{
		Use:   "parse [address]",
		Short: "Parse an address into its components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			parsed := address.StructuredForm(parser.ParseDebug(cfg.Features.Debug, text))
			if !useLibpostal {
				return printJSON(parsed)
			}

			components, err := postal.Components(text)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"parsed":    parsed,
				"libpostal": components,
			})
		},
	}

	cmd.Flags().BoolVar(&useLibpostal, "libpostal", false, "Also print libpostal's component labels")
	return cmd
}

func createCompareCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "compare [query] [candidate]",
		Short: "Score how well candidate matches query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scorer := newScorer()
			breakdown := scorer.Explain(cfg.Features.Debug, parser.Parse(args[0]), parser.Parse(args[1]))

			if explain {
				return printJSON(breakdown)
			}
			fmt.Printf("%.4f %s\n", breakdown.Score, scorer.Classify(breakdown.Score))
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show the points awarded per field")
	return cmd
}

func createNormalizeCmd() *cobra.Command {
	var useLibpostal bool

	cmd := &cobra.Command{
		Use:   "normalize [address]",
		Short: "Print the canonical search form of an address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			fmt.Println(normalize.ForSearch(text))

			if !useLibpostal {
				return nil
			}
			expansions, err := postal.Expand(text)
			if err != nil {
				return err
			}
			for _, e := range expansions {
				fmt.Printf("  libpostal: %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useLibpostal, "libpostal", false, "Also print libpostal expansions")
	return cmd
}

func createTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms [address]",
		Short: "Print the search terms extracted from an address",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(parser.SearchTerms(strings.Join(args, " ")), " "))
		},
	}
}

func createValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [address]",
		Short: "Check whether an address is complete enough to match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := validation.NewAddressValidator(parser, validation.DefaultMinScore)
			return printJSON(validator.Validate(strings.Join(args, " ")))
		},
	}
}

func createSearchCmd() *cobra.Command {
	var opts engine.Options
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [address]",
		Short: "Find stored properties matching an address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			if opts.MinScore == 0 {
				opts.MinScore = cfg.Matching.FuzzyMatchScore
			}
			opts.Debug = cfg.Features.Debug

			results, err := newSearcher(store).Search(ctx, strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(results)
			}
			if len(results) == 0 {
				fmt.Println("No matching properties")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tTIER\tACCOUNT\tADDRESS\tCOMMUNITY")
			for _, r := range results {
				fmt.Fprintf(tw, "%.4f\t%s\t%s\t%s\t%s\n",
					r.Score, r.Tier, r.Property.AccountNumber, r.Property.Address, r.Property.Community)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Community, "community", "", "Only properties in this community")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum results")
	cmd.Flags().Float64Var(&opts.MinScore, "min-score", 0, "Lowest score to report (default: fuzzy threshold)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

func createImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [filename]",
		Short: "Load a property CSV into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := import_pkg.NewCSVImporter(store, logger).ImportFile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d properties, skipped %d\n", res.Imported, res.Skipped)
			return nil
		},
	}
}

func createReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Recompute match keys for every stored property",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			changed, err := store.Reindex(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Reindexed %d properties\n", changed)
			return nil
		},
	}
}

func createServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			var searcher *engine.AddressSearcher
			if cfg.Database.URL != "" {
				conn, store, err := openStore(ctx)
				if err != nil {
					return err
				}
				defer conn.Close()
				searcher = newSearcher(store)
			} else {
				logger.Warn("No DATABASE_URL configured, property search disabled")
			}

			server := web.NewServer(cfg, parser, newScorer(), searcher, logger)
			return server.Start(ctx)
		},
	}
}
