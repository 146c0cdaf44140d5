package excel

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	apperrors "godescribe/internal/errors"
)

// buildWorkbook writes rows into an in-memory .xlsx.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestReadWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"a", "b"},
		{1, "x"},
		{2, "y"},
		{3, "z"},
	})

	tbl, err := NewReaderFrom(buf).ReadTable(context.Background())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"a", "b"}) {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "1" || tbl.Rows[2][1] != "z" {
		t.Errorf("cells = %v", tbl.Rows)
	}
}

func TestReadWorkbookRaggedRows(t *testing.T) {
	// GetRows returns ragged records; the builder must normalize them.
	buf := buildWorkbook(t, [][]interface{}{
		{"a", "b", "c"},
		{1},
		{1, 2, 3},
	})

	tbl, err := NewReaderFrom(buf).ReadTable(context.Background())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Errorf("row %d width = %d, want 3", i, len(row))
		}
	}
}

func TestReadWorkbookEmpty(t *testing.T) {
	buf := buildWorkbook(t, nil)
	_, err := NewReaderFrom(buf).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected error for empty workbook")
	}
	if apperrors.GetCode(err) != apperrors.CodeParseError {
		t.Errorf("code = %s, want PARSE_ERROR", apperrors.GetCode(err))
	}
}

func TestReadWorkbookNotAWorkbook(t *testing.T) {
	_, err := NewReaderFrom(bytes.NewReader([]byte("a,b\n1,2\n"))).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected error for non-xlsx bytes")
	}
}
