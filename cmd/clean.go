package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/listclean-cli/internal/clean"
	"github.com/sells-group/listclean-cli/internal/directory"
	"github.com/sells-group/listclean-cli/internal/fetcher"
	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/output"
	"github.com/sells-group/listclean-cli/internal/store"
	"github.com/sells-group/listclean-cli/internal/telemetry"
)

var (
	cleanInputPath    string
	cleanOutputPath   string
	cleanDedupe       bool
	cleanCheckPattern bool
	cleanPreviewRows  int
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a contact export and write a mail-merge-ready table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		dir, err := directory.Load(cfg.Directory.Path)
		if err != nil {
			return eris.Wrap(err, "load company directory")
		}

		records, err := readRecords(cleanInputPath)
		if err != nil {
			return err
		}

		opts := cfg.Clean.Options()
		if cleanDedupe {
			opts.RemoveDuplicates = true
		}
		if cleanCheckPattern {
			opts.CheckEmailPattern = true
		}

		pipeline := clean.New(opts, dir)
		result, err := pipeline.Run(ctx, records)
		if err != nil {
			return eris.Wrap(err, "clean run")
		}

		printPreview(records, result.Records, cleanPreviewRows)
		fmt.Printf("%.1f%% of fields were cleaned or updated (%d rows affected, %d duplicates removed)\n",
			result.Summary.PercentChanged, result.Summary.RowsChanged, result.Removed)

		if err := writeResult(cleanOutputPath, result, opts.QualityScore); err != nil {
			return err
		}
		if opts.SplitByCompany {
			if err := writeSplitLists(cleanOutputPath, result, opts); err != nil {
				return err
			}
		}

		saveRunHistory(cmd, cleanInputPath, result.Summary)

		tel := telemetry.New(cfg.Telemetry)
		tel.Report(ctx, filepath.Base(cleanInputPath), result.Summary)

		return nil
	},
}

func readRecords(path string) ([]model.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err := fetcher.ReadXLSX(path)
		return records, eris.Wrap(err, "read input")
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "open input")
		}
		defer f.Close()
		records, err := fetcher.ReadCSV(f)
		return records, eris.Wrap(err, "read input")
	}
}

func writeResult(path string, result *clean.Result, withScore bool) error {
	if path == "" {
		return output.WriteCSV(os.Stdout, result.Records, withScore)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return output.WriteXLSX(path, result.Records, withScore)
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "create output")
		}
		defer f.Close()
		return output.WriteJSON(f, result)
	default:
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "create output")
		}
		defer f.Close()
		return output.WriteCSV(f, result.Records, withScore)
	}
}

// writeSplitLists writes round-robin call-list CSVs next to the main
// output when split_by_company is enabled in config.
func writeSplitLists(outputPath string, result *clean.Result, opts clean.Options) error {
	dir := "."
	if outputPath != "" {
		dir = filepath.Dir(outputPath)
	}
	buckets := clean.Split(result.Records, opts.MaxLists, rand.New(rand.NewSource(time.Now().UnixNano())))
	for i, bucket := range buckets {
		subset := make([]model.CleanedRecord, 0, len(bucket))
		for _, idx := range bucket {
			subset = append(subset, result.Records[idx])
		}
		path := filepath.Join(dir, fmt.Sprintf("list_%d.csv", i+1))
		if err := writeBucket(path, subset, opts.QualityScore); err != nil {
			return err
		}
	}
	return nil
}

// printPreview shows a small before/after sample so changes can be
// eyeballed without opening the output file.
func printPreview(before []model.Record, after []model.CleanedRecord, n int) {
	if n <= 0 || len(after) == 0 {
		return
	}
	if n > len(after) {
		n = len(after)
	}
	for i := 0; i < n; i++ {
		rec := after[i]
		if rec.Index >= len(before) {
			continue
		}
		orig := before[rec.Index]
		fmt.Printf("row %d: %q %q @ %q  ->  %q %q @ %q (score %d)\n",
			rec.Index+1,
			strings.TrimSpace(orig.FirstName), strings.TrimSpace(orig.LastName), strings.TrimSpace(orig.Company),
			rec.FirstName, rec.LastName, rec.Company, rec.QualityScore,
		)
	}
}

// saveRunHistory persists the run summary; failures are logged, not fatal.
func saveRunHistory(cmd *cobra.Command, source string, summary clean.Summary) {
	if cfg.Store.Path == "" {
		return
	}
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		zap.L().Warn("store: open failed", zap.Error(err))
		return
	}
	defer st.Close()

	ctx := cmd.Context()
	if err := st.Migrate(ctx); err != nil {
		zap.L().Warn("store: migrate failed", zap.Error(err))
		return
	}
	if _, err := st.SaveRun(ctx, filepath.Base(source), summary); err != nil {
		zap.L().Warn("store: save run failed", zap.Error(err))
	}
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInputPath, "input", "", "path to CSV or XLSX export (required)")
	cleanCmd.Flags().StringVar(&cleanOutputPath, "output", "", "output path (.csv, .xlsx or .json; stdout CSV when empty)")
	cleanCmd.Flags().BoolVar(&cleanDedupe, "dedupe", false, "remove exact-match duplicate records")
	cleanCmd.Flags().BoolVar(&cleanCheckPattern, "check-patterns", false, "detect per-company email patterns and score outliers")
	cleanCmd.Flags().IntVar(&cleanPreviewRows, "preview", 5, "number of before/after sample rows to print")
	_ = cleanCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cleanCmd)
}
