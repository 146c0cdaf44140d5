// Package ui exposes the engine over HTTP: a minimal upload form and
// an analyze endpoint returning the result matrix as JSON or as a
// rendered HTML table. Everything here is presentation glue; the
// engine contract lives in app and below.
package ui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"godescribe/app"
	"godescribe/internal"
	"godescribe/internal/config"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the HTTP application.
type App struct {
	router   *chi.Mux
	service  *app.AnalysisService
	renderer *HTMLRenderer
	cfg      *config.Config
	log      *internal.Logger
}

// NewApp builds the router and its dependencies.
func NewApp(cfg *config.Config, log *internal.Logger) (*App, error) {
	if log == nil {
		log = internal.DefaultLogger
	}
	tmpl, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	a := &App{
		router:   chi.NewRouter(),
		service:  app.NewAnalysisService(cfg.Analysis.Workers, log),
		renderer: NewHTMLRenderer(tmpl),
		cfg:      cfg,
		log:      log,
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/", a.handleIndex(tmpl))
	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/analyze", a.handleAnalyze)

	return a, nil
}

// Router exposes the handler for serving and tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Serve blocks on ListenAndServe.
func (a *App) Serve() error {
	addr := ":" + a.cfg.Server.Port
	a.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
