package summary

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func sampleMatrix(t *testing.T) *ResultMatrix {
	t.Helper()
	nan := math.NaN()
	m, err := NewResultMatrix(
		[]string{"a", "empty"},
		map[string]Summary{
			"a": {Count: 3, Mean: 2, Std: 1, Min: 1, Q1: 1.5, Median: 2, Q3: 2.5, Max: 3},
			"empty": {Count: 0, Mean: nan, Std: nan, Min: nan,
				Q1: nan, Median: nan, Q3: nan, Max: nan},
		},
	)
	if err != nil {
		t.Fatalf("NewResultMatrix: %v", err)
	}
	return m
}

func TestMatrixLookup(t *testing.T) {
	m := sampleMatrix(t)

	v, ok := m.Value(StatMean, "a")
	if !ok || v != 2 {
		t.Errorf("mean(a) = %v, %v", v, ok)
	}
	v, ok = m.Value(StatStd, "empty")
	if !ok || !math.IsNaN(v) {
		t.Errorf("std(empty) = %v, %v; want NaN, true", v, ok)
	}
	if _, ok := m.Value(StatMean, "nope"); ok {
		t.Error("unknown column should report !ok")
	}
	if _, ok := m.Value("variance", "a"); ok {
		t.Error("unknown statistic should report !ok")
	}
}

func TestMatrixOrderedLabels(t *testing.T) {
	m := sampleMatrix(t)
	wantIndex := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	if !reflect.DeepEqual(m.Index(), wantIndex) {
		t.Errorf("index = %v", m.Index())
	}
	if !reflect.DeepEqual(m.Columns(), []string{"a", "empty"}) {
		t.Errorf("columns = %v", m.Columns())
	}
}

func TestMatrixLabelsAreCopies(t *testing.T) {
	m := sampleMatrix(t)
	cols := m.Columns()
	cols[0] = "mutated"
	if m.Columns()[0] != "a" {
		t.Error("mutating Columns() result leaked into the matrix")
	}
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	m := sampleMatrix(t)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back ResultMatrix
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(back.Columns(), m.Columns()) {
		t.Fatalf("columns changed: %v vs %v", back.Columns(), m.Columns())
	}
	for _, stat := range m.Index() {
		for _, col := range m.Columns() {
			want, _ := m.Value(stat, col)
			got, ok := back.Value(stat, col)
			if !ok {
				t.Fatalf("value(%s, %s) missing after round trip", stat, col)
			}
			if math.IsNaN(want) != math.IsNaN(got) || (!math.IsNaN(want) && want != got) {
				t.Errorf("value(%s, %s) = %v, want %v", stat, col, got, want)
			}
		}
	}
}

func TestMatrixJSONNullForNaN(t *testing.T) {
	m := sampleMatrix(t)
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire struct {
		Data map[string]map[string]*float64 `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if wire.Data["empty"]["mean"] != nil {
		t.Error("NaN mean should serialize as null")
	}
	if got := wire.Data["a"]["50%"]; got == nil || *got != 2 {
		t.Errorf("median(a) on the wire = %v, want 2", got)
	}
}

func TestNewResultMatrixMissingSummary(t *testing.T) {
	if _, err := NewResultMatrix([]string{"a"}, nil); err == nil {
		t.Error("expected error for column without summary")
	}
}
