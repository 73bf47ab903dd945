package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "entries")

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, s.Dir())
}

func TestFileStore_WritesMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveEntry(context.Background(), "Git", "line one\r\nline two"))

	data, err := os.ReadFile(filepath.Join(dir, "Git.md"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", string(data))
}

func TestFileStore_ListEntries_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CSS.md"), []byte("css"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".md"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Folder.md"), 0755))

	names, err := s.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CSS"}, names)
}

func TestFileStore_GetEntry_InvalidNameIsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "entries"))
	require.NoError(t, err)

	// A file outside the entries directory must not be reachable.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.md"), []byte("x"), 0644))

	_, found, err := s.GetEntry(context.Background(), "../secret")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_LastWriterWins(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	done := make(chan struct{})
	for _, body := range []string{"from A", "from B"} {
		go func(b string) {
			defer func() { done <- struct{}{} }()
			assert.NoError(t, s.SaveEntry(ctx, "Race", b))
		}(body)
	}
	<-done
	<-done

	body, found, err := s.GetEntry(ctx, "Race")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, []string{"from A", "from B"}, body)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SaveEntry(ctx, "Git", "first"))
	require.NoError(t, s.SaveEntry(ctx, "Git", "second"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Git.md", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestFileStore_ReadsNeverSeePartialBody(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	bodies := []string{strings.Repeat("a", 64<<10), strings.Repeat("b", 64<<10)}
	require.NoError(t, s.SaveEntry(ctx, "Big", bodies[0]))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 50 {
			assert.NoError(t, s.SaveEntry(ctx, "Big", bodies[i%2]))
		}
	}()

	for range 200 {
		body, found, err := s.GetEntry(ctx, "Big")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, bodies, body)
	}
	wg.Wait()
}
