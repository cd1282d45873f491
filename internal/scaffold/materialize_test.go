package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeWritesFiles(t *testing.T) {
	root := t.TempDir()

	files := FileMap{
		{Path: "a.txt", Content: "hello"},
		{Path: "src/components/App.tsx", Content: "export default function App() {}"},
	}
	require.NoError(t, Materialize(context.Background(), root, files))

	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got, err = os.ReadFile(filepath.Join(root, "src", "components", "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export default function App() {}", string(got))
}

func TestMaterializeFallbackRoundTrip(t *testing.T) {
	root := t.TempDir()

	files := Fallback("web app", "a todo list")
	require.NoError(t, Materialize(context.Background(), root, files))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(got), "content mismatch for %s", f.Path)
	}
}

func TestMaterializeRejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "project")
	require.NoError(t, os.Mkdir(root, 0o755))

	cases := []string{
		"../../etc/passwd",
		"../escape.txt",
		"src/../../escape.txt",
		"/etc/passwd",
		"..",
		".",
		"",
	}
	for _, p := range cases {
		err := Materialize(context.Background(), root, FileMap{{Path: p, Content: "x"}})
		assert.ErrorIs(t, err, ErrPathEscape, "path %q", p)
	}

	// Nothing may leak outside the project root.
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "project", entries[0].Name())

	inside, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, inside)
}

func TestMaterializeAllowsInternalDotDot(t *testing.T) {
	root := t.TempDir()

	// "src/../a.txt" resolves to "a.txt", still inside root.
	require.NoError(t, Materialize(context.Background(), root, FileMap{{Path: "src/../a.txt", Content: "ok"}}))
	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))
}

func TestMaterializeStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()

	files := FileMap{
		{Path: "first.txt", Content: "written"},
		{Path: "../escape.txt", Content: "never"},
		{Path: "second.txt", Content: "never"},
	}
	err := Materialize(context.Background(), root, files)
	require.ErrorIs(t, err, ErrPathEscape)

	// Files written before the failure stay in place; later ones are absent.
	_, err = os.Stat(filepath.Join(root, "first.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "second.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterializeLastEntryWinsOnDuplicatePath(t *testing.T) {
	root := t.TempDir()

	files := FileMap{
		{Path: "a.txt", Content: "first"},
		{Path: "a.txt", Content: "second"},
	}
	require.NoError(t, Materialize(context.Background(), root, files))

	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestMaterializeHonorsCancellation(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Materialize(ctx, root, FileMap{{Path: "a.txt", Content: "x"}})
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(filepath.Join(root, "a.txt"))
	assert.True(t, os.IsNotExist(err))
}
