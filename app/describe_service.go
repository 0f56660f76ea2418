package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	domain "infstat/domain/inference"
	"infstat/internal"
	"infstat/internal/errors"
	"infstat/internal/inference"
	"infstat/ports"
)

// DescribeService summarises many columns of a sample file concurrently
type DescribeService struct {
	workers int64
	logger  *internal.Logger
}

// NewDescribeService creates a describe service running at most workers
// column summaries at once
func NewDescribeService(workers int) *DescribeService {
	if workers < 1 {
		workers = 1
	}
	return &DescribeService{
		workers: int64(workers),
		logger:  internal.NewDefaultLogger().Named("DescribeService"),
	}
}

// DescribeColumns summarises the named columns of source, or every column
// when columns is empty. Results keep the requested column order. A named
// column without numeric values is an error; when columns are defaulted
// such columns are left out and listed in NonNumeric. The first failing
// column cancels the rest.
func (s *DescribeService) DescribeColumns(ctx context.Context, source ports.SampleSource, columns []string, divisor domain.DivisorMode) (*domain.ColumnSummaries, error) {
	startTime := time.Now()

	defaulted := len(columns) == 0
	if defaulted {
		all, err := source.Columns()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list columns")
		}
		columns = all
	}
	if len(columns) == 0 {
		return nil, errors.InvalidInput("no columns to describe")
	}

	results := make([]*domain.ColumnDescription, len(columns))
	sem := semaphore.NewWeighted(s.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, column := range columns {
		i, column := i, column
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			sample, err := source.ReadColumn(column)
			if err != nil {
				return errors.Wrapf(err, "column %s", column)
			}
			if len(sample.Values) == 0 {
				if defaulted {
					s.logger.Debug("Column %s has no numeric values, leaving it out", column)
					return nil
				}
				return errors.InvalidInputf("column %q has no numeric values", column)
			}
			desc, err := inference.Describe(sample.Values, divisor)
			if err != nil {
				return errors.Wrapf(err, "column %s", column)
			}
			results[i] = &domain.ColumnDescription{
				Column:      column,
				Skipped:     sample.Skipped,
				Description: desc,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := &domain.ColumnSummaries{Columns: make([]domain.ColumnDescription, 0, len(columns))}
	for i, r := range results {
		if r == nil {
			summaries.NonNumeric = append(summaries.NonNumeric, columns[i])
			continue
		}
		summaries.Columns = append(summaries.Columns, *r)
	}
	if len(summaries.Columns) == 0 {
		return nil, errors.InvalidInput("no column has numeric values")
	}

	s.logger.Info("Described %d columns in %.2fms (workers=%d, non-numeric=%d)",
		len(summaries.Columns), float64(time.Since(startTime).Nanoseconds())/1e6, s.workers, len(summaries.NonNumeric))
	return summaries, nil
}
