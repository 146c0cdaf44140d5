package csvfile

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"godescribe/domain/table"
	apperrors "godescribe/internal/errors"
)

func read(t *testing.T, input string, opts ...Option) *table.Table {
	t.Helper()
	tbl, err := NewReader(strings.NewReader(input), opts...).ReadTable(context.Background())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	return tbl
}

func TestReadSimple(t *testing.T) {
	tbl := read(t, "a,b\n1,x\n2,y\n3,z\n")
	if !reflect.DeepEqual(tbl.Headers, []string{"a", "b"}) {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if !reflect.DeepEqual(tbl.Rows[1], table.Row{"2", "y"}) {
		t.Errorf("row 1 = %v", tbl.Rows[1])
	}
	if tbl.Report.Anomalies() != 0 {
		t.Errorf("unexpected anomalies: %+v", tbl.Report)
	}
}

func TestReadQuotedFields(t *testing.T) {
	input := "name,notes\n\"Smith, John\",\"said \"\"hi\"\"\"\n\"multi\nline\",ok\n"
	tbl := read(t, input)
	if tbl.Rows[0][0] != "Smith, John" {
		t.Errorf("embedded delimiter: %q", tbl.Rows[0][0])
	}
	if tbl.Rows[0][1] != `said "hi"` {
		t.Errorf("doubled quotes: %q", tbl.Rows[0][1])
	}
	if tbl.Rows[1][0] != "multi\nline" {
		t.Errorf("embedded newline: %q", tbl.Rows[1][0])
	}
}

func TestReadDelimiterOverride(t *testing.T) {
	tbl := read(t, "a;b\n1;2\n", WithDelimiter(';'))
	if !reflect.DeepEqual(tbl.Headers, []string{"a", "b"}) {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if !reflect.DeepEqual(tbl.Rows[0], table.Row{"1", "2"}) {
		t.Errorf("row = %v", tbl.Rows[0])
	}
}

func TestReadExtraFieldTruncated(t *testing.T) {
	tbl := read(t, "a,b\n1,x\n2,y,EXTRA\n3,z\n")
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Report.TruncatedRows != 1 {
		t.Errorf("truncated = %d, want 1", tbl.Report.TruncatedRows)
	}
	if !reflect.DeepEqual(tbl.Rows[1], table.Row{"2", "y"}) {
		t.Errorf("truncated row = %v", tbl.Rows[1])
	}
}

func TestReadShortRowPadded(t *testing.T) {
	tbl := read(t, "a,b,c\n1\n")
	if tbl.Report.PaddedRows != 1 {
		t.Errorf("padded = %d, want 1", tbl.Report.PaddedRows)
	}
	if !reflect.DeepEqual(tbl.Rows[0], table.Row{"1", "", ""}) {
		t.Errorf("padded row = %v", tbl.Rows[0])
	}
}

func TestReadUnparseableRowSkipped(t *testing.T) {
	// Bare quote in the middle of an unquoted field.
	tbl := read(t, "a,b\n1,ok\nbad\"row,oops\n3,fine\n")
	if tbl.Report.SkippedRows == 0 {
		t.Error("expected at least one skipped row")
	}
	for _, row := range tbl.Rows {
		if len(row) != 2 {
			t.Errorf("row width = %d: %v", len(row), row)
		}
	}
}

func TestReadBlankLinesIgnored(t *testing.T) {
	tbl := read(t, "\n\na\n1\n\n3\n")
	if !reflect.DeepEqual(tbl.Headers, []string{"a"}) {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank line dropped)", len(tbl.Rows))
	}
}

func TestReadDuplicateHeaders(t *testing.T) {
	tbl := read(t, "a,a,b\n1,2,3\n")
	if !reflect.DeepEqual(tbl.Headers, []string{"a", "a_2", "b"}) {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if tbl.Report.RenamedColumns != 1 {
		t.Errorf("renamed = %d", tbl.Report.RenamedColumns)
	}
	col, _ := tbl.Column("a_2")
	if !reflect.DeepEqual(col, []string{"2"}) {
		t.Errorf("renamed column data = %v", col)
	}
}

func TestReadEmptyInputIsFatal(t *testing.T) {
	for _, input := range []string{"", "\n\n\n"} {
		_, err := NewReader(strings.NewReader(input)).ReadTable(context.Background())
		if err == nil {
			t.Fatalf("input %q: expected error", input)
		}
		if apperrors.GetCode(err) != apperrors.CodeParseError {
			t.Errorf("input %q: code = %s, want PARSE_ERROR", input, apperrors.GetCode(err))
		}
	}
}

func TestReadHeaderOnly(t *testing.T) {
	tbl := read(t, "a,b\n")
	if len(tbl.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(tbl.Rows))
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"a", "b"}) {
		t.Errorf("headers = %v", tbl.Headers)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReader(strings.NewReader("a\n1\n")).ReadTable(ctx)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !apperrors.IsCancelled(err) {
		t.Errorf("code = %s, want CANCELLED", apperrors.GetCode(err))
	}
}
