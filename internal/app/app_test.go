package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestNewWiresSeededApp(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "diagrams", "queue.excalidraw"), `{"type":"excalidraw"}`)
	writeFile(t, filepath.Join(dir, "seed.yaml"), `
cases:
  - title: Queue
    description: Design a durable queue.
    difficulty: middle
    diagram: diagrams/queue.excalidraw
  - description: Design a URL shortener.
    difficulty: junior
`)
	writeFile(t, filepath.Join(dir, "templates", "list_cases.html"), `{{len .cases}} cases`)

	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "sqlite://")
	t.Setenv("SEED_FILE", filepath.Join(dir, "seed.yaml"))
	t.Setenv("TEMPLATES_DIR", filepath.Join(dir, "templates"))

	a, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	n, err := a.Services.Case.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rec := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cases", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2 cases", rec.Body.String())
}

func TestNewFailsOnBadDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "mysql://nope")

	_, err := New(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init database")
}

func TestLoadTemplates(t *testing.T) {
	tmpl, err := loadTemplates("")
	require.NoError(t, err)
	assert.Nil(t, tmpl)

	_, err = loadTemplates(t.TempDir())
	require.Error(t, err, "an empty templates dir is a startup error")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), `home`)
	writeFile(t, filepath.Join(dir, "error.html"), `{{.code}}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `ignored`)
	tmpl, err = loadTemplates(dir)
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index.html"))
	assert.NotNil(t, tmpl.Lookup("error.html"))
	assert.Nil(t, tmpl.Lookup("notes.txt"))
}
