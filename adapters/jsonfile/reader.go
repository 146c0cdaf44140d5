// Package jsonfile flattens an array-of-objects JSON document into a
// Table. Column order is the first-seen key order across records, so
// output stays deterministic for identical input.
package jsonfile

import (
	"context"
	"io"

	"github.com/tidwall/gjson"

	"godescribe/domain/table"
	apperrors "godescribe/internal/errors"
)

// Reader turns JSON records into a Table.
type Reader struct {
	src io.Reader
}

// NewReader wraps a JSON document stream.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadTable flattens the document. Scalar values keep their JSON text;
// null and absent keys become missing cells; nested objects and arrays
// are carried as raw JSON text and will classify as text columns.
func (r *Reader) ReadTable(ctx context.Context) (*table.Table, error) {
	raw, err := io.ReadAll(r.src)
	if err != nil {
		return nil, apperrors.Wrap(err, "reading JSON input")
	}
	if !gjson.ValidBytes(raw) {
		return nil, apperrors.ParseError("input is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, apperrors.ParseError("JSON input must be an array of objects")
	}
	records := doc.Array()
	if len(records) == 0 {
		return nil, apperrors.ParseError("JSON array is empty: no records")
	}

	// First pass: header = keys in first-seen document order.
	var headers []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if !rec.IsObject() {
			continue
		}
		rec.ForEach(func(key, _ gjson.Result) bool {
			if _, ok := seen[key.Str]; !ok {
				seen[key.Str] = struct{}{}
				headers = append(headers, key.Str)
			}
			return true
		})
	}
	if len(headers) == 0 {
		return nil, apperrors.ParseError("JSON array contains no objects")
	}

	builder := table.NewBuilder(headers)
	for i, rec := range records {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.Cancelled(err)
			}
		}
		if !rec.IsObject() {
			builder.Skip()
			continue
		}
		// Indexing by key avoids gjson path syntax, so keys containing
		// dots or wildcards stay plain column names.
		vals := make(map[string]gjson.Result, len(headers))
		rec.ForEach(func(key, value gjson.Result) bool {
			vals[key.Str] = value
			return true
		})
		row := make([]string, len(headers))
		for j, name := range headers {
			row[j] = cellText(vals[name])
		}
		builder.Append(row)
	}
	return builder.Build(), nil
}

func cellText(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		if !v.Exists() {
			return ""
		}
		return v.Raw
	}
}
