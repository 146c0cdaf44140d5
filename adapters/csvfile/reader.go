// Package csvfile parses delimited text into a table. Quoting follows
// RFC 4180 (doubled quotes inside quoted fields, delimiters and
// newlines allowed inside quotes) via encoding/csv.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"godescribe/domain/table"
	apperrors "godescribe/internal/errors"
)

// cancelCheckInterval is how many records pass between context checks;
// a single record is never long-running, so batching the check keeps
// the hot loop cheap.
const cancelCheckInterval = 1024

// Reader streams delimited text into a Table row by row, so peak
// memory stays bounded by the table itself rather than a second copy
// of the raw input.
type Reader struct {
	src       io.Reader
	delimiter rune
}

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter overrides the comma default.
func WithDelimiter(d rune) Option {
	return func(r *Reader) {
		if d != 0 {
			r.delimiter = d
		}
	}
}

// NewReader wraps raw delimited text. The caller supplies the bytes;
// no file or network access happens here.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{src: src, delimiter: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadTable parses the input. The first non-empty record is the
// header; an input with no header at all is fatal. Short rows are
// padded, long rows truncated, and records with unparseable quoting
// are skipped - each counted in the table's ParseReport instead of
// aborting the request.
func (r *Reader) ReadTable(ctx context.Context) (*table.Table, error) {
	cr := csv.NewReader(r.src)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	builder := table.NewBuilder(header)

	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.Cancelled(err)
			}
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Row cannot be reconciled with the header; drop it and
			// keep the count. encoding/csv resumes at the next line.
			builder.Skip()
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "reading delimited input")
		}
		builder.Append(record)
	}

	return builder.Build(), nil
}

// readHeader pulls the first record. encoding/csv already skips blank
// lines, so the first record it yields is the first non-empty line.
func readHeader(cr *csv.Reader) ([]string, error) {
	record, err := cr.Read()
	if err == io.EOF {
		return nil, apperrors.ParseError("input is empty: no header row")
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return nil, &apperrors.AppError{
			Code:    apperrors.CodeParseError,
			Message: "header row is not parseable",
			Cause:   parseErr,
		}
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "reading header row")
	}
	return record, nil
}
