package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"godescribe/domain/summary"
)

// formatCell renders one matrix value for display. NaN prints as NaN;
// everything else uses shortest-roundtrip formatting capped at six
// significant digits, which keeps 1.4142135623 readable without lying
// about precision.
func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// TextRenderer renders the matrix as an aligned plain-text table with
// statistic labels as the first column.
type TextRenderer struct{}

// Render implements ports.Renderer.
func (TextRenderer) Render(m *summary.ResultMatrix) ([]byte, error) {
	columns := m.Columns()
	index := m.Index()

	// Grid of formatted cells, label column first.
	grid := make([][]string, 0, len(index)+1)
	head := append([]string{""}, columns...)
	grid = append(grid, head)
	for _, stat := range index {
		row := make([]string, 0, len(columns)+1)
		row = append(row, stat)
		for _, col := range columns {
			v, _ := m.Value(stat, col)
			row = append(row, formatCell(v))
		}
		grid = append(grid, row)
	}

	widths := make([]int, len(head))
	for _, row := range grid {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var buf bytes.Buffer
	for _, row := range grid {
		for i, cell := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			fmt.Fprintf(&buf, "%*s", widths[i], cell)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// HTMLRenderer paints the matrix as an HTML table fragment.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the summary table template.
func NewHTMLRenderer(tmpl *template.Template) *HTMLRenderer {
	return &HTMLRenderer{tmpl: tmpl}
}

// matrixView is the template-facing shape of a matrix.
type matrixView struct {
	Columns []string
	Rows    []matrixRowView
}

type matrixRowView struct {
	Stat  string
	Cells []string
}

// Render implements ports.Renderer.
func (r *HTMLRenderer) Render(m *summary.ResultMatrix) ([]byte, error) {
	view := matrixView{Columns: m.Columns()}
	for _, stat := range m.Index() {
		row := matrixRowView{Stat: stat}
		for _, col := range view.Columns {
			v, _ := m.Value(stat, col)
			cell := formatCell(v)
			if cell == "NaN" {
				cell = ""
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "summary.html", view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// trimExt lowercases a filename extension without the dot.
func trimExt(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
