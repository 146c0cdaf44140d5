// Package excel reads .xlsx workbooks into the same Table shape the
// CSV reader produces, so everything downstream is format-agnostic.
package excel

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"godescribe/domain/table"
	apperrors "godescribe/internal/errors"
)

// Reader loads the first sheet of a workbook. Cell values arrive as
// excelize's formatted strings and go through the same inference as
// CSV cells.
type Reader struct {
	path string
	src  io.Reader
}

// NewReader reads a workbook from disk.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// NewReaderFrom reads a workbook from an in-memory stream, e.g. a
// multipart upload, without touching the filesystem.
func NewReaderFrom(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadTable reads the first sheet. Row one is the header; a workbook
// with no rows at all is fatal, same as an empty CSV.
func (r *Reader) ReadTable(ctx context.Context) (*table.Table, error) {
	f, err := r.open()
	if err != nil {
		return nil, apperrors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ParseError("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Wrapf(err, "reading sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		return nil, apperrors.ParseError("workbook is empty: no header row")
	}

	builder := table.NewBuilder(rows[0])
	for i, record := range rows[1:] {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.Cancelled(err)
			}
		}
		if isBlank(record) {
			continue
		}
		builder.Append(record)
	}
	return builder.Build(), nil
}

func (r *Reader) open() (*excelize.File, error) {
	if r.src != nil {
		return excelize.OpenReader(r.src)
	}
	return excelize.OpenFile(r.path)
}

// isBlank mirrors encoding/csv, which never yields fully empty lines.
func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
