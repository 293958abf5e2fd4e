package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/listclean-cli/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded cleaning runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Store.Path == "" {
			return eris.New("run history is disabled (store.path is empty)")
		}
		st, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return eris.Wrap(err, "open store")
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}
		runs, err := st.ListRuns(ctx, runsLimit)
		if err != nil {
			return eris.Wrap(err, "list runs")
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tSOURCE\tRECORDS\tCHANGED\tINVALID EMAILS\tMEAN SCORE")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%.1f%%\t%d\t%.1f\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Source,
				r.Summary.TotalRecords,
				r.Summary.PercentChanged,
				r.Summary.InvalidEmails,
				r.Summary.MeanQualityScore,
			)
		}
		return w.Flush()
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to show")
	rootCmd.AddCommand(runsCmd)
}
