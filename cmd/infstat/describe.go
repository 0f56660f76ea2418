package main

import (
	"github.com/spf13/cobra"

	"infstat/adapters/excel"
	"infstat/app"
	domain "infstat/domain/inference"
	"infstat/internal/errors"
	"infstat/internal/inference"
	"infstat/internal/report"
)

func newDescribeCmd(s *session) *cobra.Command {
	var (
		values  []float64
		file    string
		columns []string
		sheet   string
		divisor string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Descriptive statistics of raw values or of file columns",
		Long: `Descriptive statistics of raw values (--values) or of numeric columns in a
CSV or XLSX file (--file, optionally --column). Non-numeric cells are skipped.

Examples:
  infstat describe --values 4,8,15,16,23,42 --divisor population
  infstat describe --file data.xlsx --sheet Datos --column edad --column peso`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseDivisorMode(divisor)
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("values"):
				d, err := inference.Describe(values, mode)
				if err != nil {
					return err
				}
				return s.render(cmd, report.Descriptions([]domain.ColumnDescription{{Column: "values", Description: d}}))
			case file != "":
				reader := excel.NewDataReader(file, excel.ReaderConfig{Sheet: sheet})
				summaries, err := app.NewDescribeService(workers).DescribeColumns(cmd.Context(), reader, columns, mode)
				if err != nil {
					return err
				}
				r := report.Descriptions(summaries.Columns)
				report.NonNumericNote(r, summaries.NonNumeric)
				return s.render(cmd, r)
			}
			return errors.InvalidInput("one of --values or --file is required")
		},
	}

	cmd.Flags().Float64SliceVar(&values, "values", nil, "Comma-separated sample values")
	cmd.Flags().StringVar(&file, "file", "", "CSV or XLSX file")
	cmd.Flags().StringSliceVar(&columns, "column", nil, "Column to describe (repeatable; default all)")
	cmd.Flags().StringVar(&sheet, "sheet", s.cfg.Data.Sheet, "Worksheet read from XLSX files")
	cmd.Flags().StringVar(&divisor, "divisor", s.cfg.Defaults.Divisor, "Variance divisor: sample|population")
	cmd.Flags().IntVar(&workers, "workers", s.cfg.Data.Workers, "Columns described concurrently")
	cmd.MarkFlagsMutuallyExclusive("values", "file")
	return cmd
}
