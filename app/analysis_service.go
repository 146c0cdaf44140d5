// Package app wires readers, inference and statistics into one
// analysis operation. The engine itself is synchronous from the
// caller's perspective; concurrency below is an internal detail that
// never leaks into result ordering.
package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"godescribe/domain/core"
	"godescribe/domain/summary"
	"godescribe/domain/table"
	"godescribe/internal"
	"godescribe/internal/describe"
	apperrors "godescribe/internal/errors"
	"godescribe/internal/infer"
	"godescribe/ports"
)

// Analysis is the complete result of one request: the matrix over
// numeric columns, extended profiles for every column, and the parse
// anomaly report. Created once, consumed by a renderer, then discarded.
type Analysis struct {
	ID       core.AnalysisID
	Matrix   *summary.ResultMatrix
	Profiles []summary.ColumnProfile
	Report   table.ParseReport
	Duration time.Duration
}

// AnalysisService runs analyses with a bounded worker pool for
// per-column summary computation.
type AnalysisService struct {
	workers int64
	log     *internal.Logger
}

// NewAnalysisService creates a service computing up to workers column
// summaries concurrently. workers < 1 means sequential.
func NewAnalysisService(workers int, log *internal.Logger) *AnalysisService {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &AnalysisService{workers: int64(workers), log: log}
}

// Analyze reads one dataset and produces its Analysis. Cancellation of
// ctx anywhere in the pipeline yields a CANCELLED error and no partial
// result. Recovered anomalies (padded, truncated, skipped rows,
// renamed columns) never fail the request; they ride along in the
// report.
func (s *AnalysisService) Analyze(ctx context.Context, reader ports.DatasetReader) (*Analysis, error) {
	started := time.Now()

	tbl, err := reader.ReadTable(ctx)
	if err != nil {
		if apperrors.IsCancelled(err) || ctx.Err() != nil {
			return nil, apperrors.Cancelled(err)
		}
		return nil, err
	}

	cols := infer.Classify(tbl)

	// Results land in index-addressed slots so assembly depends only on
	// header order, never on worker scheduling.
	summaries := make([]summary.Summary, len(cols))
	profiles := make([]summary.ColumnProfile, len(cols))

	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i := range cols {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, apperrors.Cancelled(err)
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			col := cols[i]
			if col.Kind == table.KindNumeric {
				summaries[i] = describe.Describe(col.Observations)
			}
			profiles[i] = describe.Profile(col)
		}(i)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Cancelled(err)
	}

	// Matrix columns: numeric columns in first-seen header order. Text
	// columns are excluded entirely rather than rendered blank.
	var columns []string
	cells := make(map[string]summary.Summary, len(cols))
	for i, col := range cols {
		if col.Kind != table.KindNumeric {
			continue
		}
		columns = append(columns, col.Name)
		cells[col.Name] = summaries[i]
	}
	matrix, err := summary.NewResultMatrix(columns, cells)
	if err != nil {
		return nil, apperrors.Wrap(err, "assembling result matrix")
	}

	analysis := &Analysis{
		ID:       core.NewAnalysisID(),
		Matrix:   matrix,
		Profiles: profiles,
		Report:   tbl.Report,
		Duration: time.Since(started),
	}

	s.log.Info("analysis %s: %d columns (%d numeric), %d rows, %d anomalies in %s",
		analysis.ID, len(cols), len(columns), len(tbl.Rows), tbl.Report.Anomalies(), analysis.Duration)
	return analysis, nil
}
