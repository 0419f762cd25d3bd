package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/archerhq/rangebook/internal/util"
)

// TemplateRenderer renders HTML pages for UI responses. Each page under
// pages/ is parsed into its own set together with the layout and shared
// partials, so every page can define its own "content" block.
type TemplateRenderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	funcs := template.FuncMap{
		"formatDate": util.FormatDate,
		"formatTime": util.FormatTime,
	}

	pageFiles, err := fs.Glob(cfg.TemplateFS, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(pageFiles) == 0 {
		return nil, errors.New("no page templates found under pages/")
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pageFile := range pageFiles {
		name := pageName(pageFile)
		t, parseErr := template.New(name).Funcs(funcs).ParseFS(cfg.TemplateFS,
			"layout.tmpl",
			"partials/*.tmpl",
			pageFile,
		)
		if parseErr != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, parseErr)
		}
		pages[name] = t
	}

	return &TemplateRenderer{pages: pages, logger: cfg.Logger}, nil
}

// pageName maps "pages/login.tmpl" to "login".
func pageName(file string) string {
	base := path.Base(file)
	return base[:len(base)-len(path.Ext(base))]
}

// Render writes the named page through the layout. The page is rendered into
// a buffer first so a template error can still produce a clean 500 instead
// of a half-written body.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, page string, data any) error {
	t, ok := tr.pages[page]
	if !ok {
		err := fmt.Errorf("unknown page template %q", page)
		tr.renderError(w, err)
		return err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		tr.renderError(w, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		// Client likely went away; nothing sensible left to do.
		return err
	}
	return nil
}

func (tr *TemplateRenderer) renderError(w http.ResponseWriter, err error) {
	if tr.logger != nil {
		tr.logger.Error("template render failed", slog.Any("error", err))
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
