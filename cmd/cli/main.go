package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"godescribe/adapters/csvfile"
	"godescribe/adapters/excel"
	"godescribe/adapters/jsonfile"
	"godescribe/app"
	"godescribe/internal"
	apperrors "godescribe/internal/errors"
	"godescribe/ports"
	"godescribe/ui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "godescribe",
		Short: "Descriptive statistics for tabular datasets",
	}
	rootCmd.AddCommand(newDescribeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDescribeCmd() *cobra.Command {
	var delimiter string
	var format string
	var workers int

	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Summarize the numeric columns of a CSV, XLSX or JSON dataset",
		Long: `Parse a dataset and print count, mean, std, min, quartiles and max
for every numeric column. Non-numeric columns are excluded from the
matrix; parse anomalies are reported on stderr.

Example: godescribe describe cards.csv --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			reader, err := openReader(args[0], delimiter)
			if err != nil {
				return err
			}

			service := app.NewAnalysisService(workers, internal.NewDefaultLogger())
			analysis, err := service.Analyze(ctx, reader)
			if err != nil {
				if apperrors.IsCancelled(err) {
					return fmt.Errorf("analysis cancelled")
				}
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis.Matrix)
			case "table":
				body, err := ui.TextRenderer{}.Render(analysis.Matrix)
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(body)
			default:
				return apperrors.InvalidInput("format must be table or json")
			}

			if n := analysis.Report.Anomalies(); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "recovered from %d anomalies: %+v\n", n, analysis.Report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "CSV field delimiter (default comma, tab for .tsv)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent column summaries")
	return cmd
}

func openReader(path, delimiter string) (ports.DatasetReader, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	switch ext {
	case "xlsx":
		return excel.NewReader(path), nil
	case "json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return jsonfile.NewReader(f), nil
	case "csv", "tsv", "txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		d := ','
		if ext == "tsv" {
			d = '\t'
		}
		if delimiter != "" {
			d = rune(delimiter[0])
		}
		return csvfile.NewReader(f, csvfile.WithDelimiter(d)), nil
	default:
		return nil, apperrors.UnsupportedFormat(ext)
	}
}
