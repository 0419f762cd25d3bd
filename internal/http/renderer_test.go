package httpx

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archerhq/rangebook/internal/http/ui/viewmodel"
)

func TestNewTemplateRenderer_RequiresFS(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	assert.Error(t, err)
}

func TestNewTemplateRenderer_RequiresPages(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fstest.MapFS{
			"layout.tmpl": &fstest.MapFile{Data: []byte(`{{define "layout"}}{{end}}`)},
		},
	})
	assert.Error(t, err)
}

func TestTemplateRenderer_Render(t *testing.T) {
	renderer := newTestRenderer(t)

	rec := httptest.NewRecorder()
	err := renderer.Render(rec, PageLogin, loginPage{
		Layout: viewmodel.Layout{CurrentPage: PageLogin, Notice: "Welcome back"},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-page="login"`)
	assert.Contains(t, rec.Body.String(), "Welcome back")
}

func TestTemplateRenderer_UnknownPage(t *testing.T) {
	renderer := newTestRenderer(t)

	rec := httptest.NewRecorder()
	err := renderer.Render(rec, "missing", nil)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestTemplateRenderer_FormatsViaFuncs(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"partials/noop.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "noop"}}{{end}}`)},
		"pages/demo.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "content"}}{{formatDate .Date}} {{formatTime .Start}}{{end}}`)},
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: fsys})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	data := struct {
		Date  string
		Start string
	}{Date: "2026-09-01", Start: "14:30:00"}
	require.NoError(t, renderer.Render(rec, "demo", data))
	assert.Equal(t, "Sep 1, 2026 14:30", rec.Body.String())
}
