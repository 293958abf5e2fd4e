package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/listclean-cli/internal/clean"
	"github.com/sells-group/listclean-cli/internal/directory"
	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/output"
)

var (
	splitInputPath string
	splitOutputDir string
	splitMaxLists  int
	splitSeed      int64
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Clean a contact export and split it into balanced call lists",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := directory.Load(cfg.Directory.Path)
		if err != nil {
			return eris.Wrap(err, "load company directory")
		}

		records, err := readRecords(splitInputPath)
		if err != nil {
			return err
		}

		opts := cfg.Clean.Options()
		if splitMaxLists > 0 {
			opts.MaxLists = splitMaxLists
		}

		result, err := clean.New(opts, dir).Run(cmd.Context(), records)
		if err != nil {
			return eris.Wrap(err, "clean run")
		}

		seed := splitSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		buckets := clean.Split(result.Records, opts.MaxLists, rand.New(rand.NewSource(seed)))

		if err := os.MkdirAll(splitOutputDir, 0o755); err != nil {
			return eris.Wrap(err, "create output dir")
		}
		for i, bucket := range buckets {
			subset := make([]model.CleanedRecord, 0, len(bucket))
			for _, idx := range bucket {
				subset = append(subset, result.Records[idx])
			}
			path := filepath.Join(splitOutputDir, fmt.Sprintf("list_%d.csv", i+1))
			if err := writeBucket(path, subset, opts.QualityScore); err != nil {
				return err
			}
			fmt.Printf("%s: %d records\n", path, len(subset))
		}
		return nil
	},
}

func writeBucket(path string, records []model.CleanedRecord, withScore bool) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "create list file")
	}
	defer f.Close()
	return eris.Wrap(output.WriteCSV(f, records, withScore), "write list file")
}

func init() {
	splitCmd.Flags().StringVar(&splitInputPath, "input", "", "path to CSV or XLSX export (required)")
	splitCmd.Flags().StringVar(&splitOutputDir, "out-dir", "lists", "directory for the split list CSVs")
	splitCmd.Flags().IntVar(&splitMaxLists, "max-lists", 0, "maximum number of lists (overrides config when set)")
	splitCmd.Flags().Int64Var(&splitSeed, "seed", 0, "random seed for shuffling (0 uses the clock)")
	_ = splitCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(splitCmd)
}
