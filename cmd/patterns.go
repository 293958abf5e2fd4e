package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/listclean-cli/internal/clean"
	"github.com/sells-group/listclean-cli/internal/directory"
)

var patternsInputPath string

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Report the consensus email pattern per company",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := directory.Load(cfg.Directory.Path)
		if err != nil {
			return eris.Wrap(err, "load company directory")
		}

		records, err := readRecords(patternsInputPath)
		if err != nil {
			return err
		}

		opts := cfg.Clean.Options()
		opts.CheckEmailPattern = true

		result, err := clean.New(opts, dir).Run(cmd.Context(), records)
		if err != nil {
			return eris.Wrap(err, "pattern run")
		}
		if len(result.Patterns) == 0 {
			fmt.Println("no company reached pattern consensus (need 2+ valid emails and 50%+ agreement)")
			return nil
		}

		companies := make([]string, 0, len(result.Patterns))
		for company := range result.Patterns {
			companies = append(companies, company)
		}
		sort.Strings(companies)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPANY\tPATTERN\tMATCHING\tVALID\tCOVERAGE")
		for _, company := range companies {
			p := result.Patterns[company]
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f%%\n",
				company, p.Pattern, p.MatchingCount, p.TotalValid, p.CoverageRatio*100)
		}
		return w.Flush()
	},
}

func init() {
	patternsCmd.Flags().StringVar(&patternsInputPath, "input", "", "path to CSV or XLSX export (required)")
	_ = patternsCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(patternsCmd)
}
