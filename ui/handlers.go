package ui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"godescribe/adapters/csvfile"
	"godescribe/adapters/excel"
	"godescribe/adapters/jsonfile"
	"godescribe/domain/summary"
	"godescribe/domain/table"
	apperrors "godescribe/internal/errors"
	"godescribe/ports"
)

// analysisResponse is the JSON body of a successful analyze call.
type analysisResponse struct {
	ID       string                  `json:"id"`
	Matrix   *summary.ResultMatrix   `json:"matrix"`
	Profiles []summary.ColumnProfile `json:"profiles"`
	Report   table.ParseReport       `json:"report"`
}

// errorResponse is the JSON body of a failed analyze call. A failed
// analysis yields exactly one clear message, never a partial result.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) handleIndex(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
			a.log.Error("rendering index: %v", err)
		}
	}
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleAnalyze runs one analysis per upload. The dataset format is
// picked from the uploaded filename; ?delimiter= overrides the CSV
// separator and ?format=html returns a rendered table instead of JSON.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Upload.MaxBytes)
	file, header, err := r.FormFile("dataset")
	if err != nil {
		a.writeError(w, apperrors.InvalidInput("missing dataset file in form field \"dataset\""))
		return
	}
	defer file.Close()

	delimiter := a.cfg.Analysis.Delimiter
	if d := r.URL.Query().Get("delimiter"); d != "" {
		delimiter = rune(d[0])
	}

	var reader ports.DatasetReader
	switch ext := trimExt(header.Filename); ext {
	case "csv", "tsv", "txt":
		if ext == "tsv" && r.URL.Query().Get("delimiter") == "" {
			delimiter = '\t'
		}
		reader = csvfile.NewReader(file, csvfile.WithDelimiter(delimiter))
	case "xlsx":
		reader = excel.NewReaderFrom(file)
	case "json":
		reader = jsonfile.NewReader(file)
	default:
		a.writeError(w, apperrors.UnsupportedFormat(ext))
		return
	}

	analysis, err := a.service.Analyze(r.Context(), reader)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		body, err := a.renderer.Render(analysis.Matrix)
		if err != nil {
			a.writeError(w, apperrors.Wrap(err, "rendering summary table"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := analysisResponse{
		ID:       analysis.ID.String(),
		Matrix:   analysis.Matrix,
		Profiles: analysis.Profiles,
		Report:   analysis.Report,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.log.Error("encoding analysis %s: %v", analysis.ID, err)
	}
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeParseError, apperrors.CodeInvalidInput, apperrors.CodeUnsupportedFormat:
		status = http.StatusBadRequest
	case apperrors.CodeCancelled:
		// Client went away; 499 is the conventional nginx code.
		status = 499
	}
	a.log.Warn("analyze failed (%s): %v", code, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Code: code, Message: err.Error()})
}
