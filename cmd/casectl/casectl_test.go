package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diagram = `{"type":"excalidraw","elements":[]}`

type harness struct {
	dir   string
	dbURL string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ATTACHMENT_REQUIRED", "")
	dir := t.TempDir()
	return &harness{dir: dir, dbURL: "sqlite:///" + filepath.Join(dir, "cases.db")}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--database-url", h.dbURL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestAddListShowExport(t *testing.T) {
	h := newHarness(t)
	diagramPath := h.write(t, "queue.excalidraw", diagram)

	out, err := h.run(t, "add", "--title", "My Case", "--description", "Design a queue", "--difficulty", "middle", "--diagram", diagramPath)
	require.NoError(t, err)
	assert.Equal(t, "Created case 1\n", out)

	_, err = h.run(t, "add", "--description", "Design a cache", "--difficulty", "junior")
	require.NoError(t, err)

	out, err = h.run(t, "--json", "list", "--difficulty", "middle")
	require.NoError(t, err)
	var rows []struct {
		ID    int64   `json:"id"`
		Title *string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].ID)

	out, err = h.run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Untitled case")
	assert.Contains(t, lines[2], "My Case")

	out, err = h.run(t, "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Case 2: Untitled case")
	assert.Contains(t, out, "Diagram:    none")

	out, err = h.run(t, "export", "1", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, diagram, out)

	dest := filepath.Join(h.dir, "out.excalidraw")
	_, err = h.run(t, "export", "1", "--output", dest)
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, diagram, string(got))

	_, err = h.run(t, "export", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no diagram")
}

func TestAddRejectsInvalidDiagram(t *testing.T) {
	h := newHarness(t)
	bad := h.write(t, "board.json", diagram)

	_, err := h.run(t, "add", "--description", "d", "--difficulty", "junior", "--diagram", bad)
	require.Error(t, err)

	out, err := h.run(t, "--json", "list")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestAttachmentRequiredFromEnv(t *testing.T) {
	h := newHarness(t)
	t.Setenv("ATTACHMENT_REQUIRED", "true")

	_, err := h.run(t, "add", "--description", "d", "--difficulty", "junior")
	require.Error(t, err)
}

func TestSeedAndRandom(t *testing.T) {
	h := newHarness(t)
	h.write(t, "diagrams/feed.excalidraw", diagram)
	seed := h.write(t, "seed.yaml", `
cases:
  - title: Feed
    description: Design a news feed.
    difficulty: senior
    diagram: diagrams/feed.excalidraw
`)

	out, err := h.run(t, "random")
	require.NoError(t, err)
	assert.Equal(t, "No cases yet.\n", out)

	out, err = h.run(t, "seed", seed)
	require.NoError(t, err)
	assert.Equal(t, "Seeded 1 cases\n", out)

	out, err = h.run(t, "seed", "--if-empty", seed)
	require.NoError(t, err)
	assert.Equal(t, "Store is not empty, nothing seeded\n", out)

	out, err = h.run(t, "random", "--difficulty", "senior")
	require.NoError(t, err)
	assert.Contains(t, out, "Case 1: Feed")

	_, err = h.run(t, "random", "--difficulty", "junior")
	require.Error(t, err)
}

func TestShowRejectsBadID(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid case id")

	_, err = h.run(t, "show", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case not found")
}

func TestVersionSkipsStore(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--database-url", "mysql://unsupported", "version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "casectl dev\n", out.String())
}
