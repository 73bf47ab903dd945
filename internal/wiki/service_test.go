package wiki

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/coven-wiki/internal/store"
)

// stubPicker always returns a fixed index and records the n it was given.
type stubPicker struct {
	index int
	calls []int
}

func (p *stubPicker) IntN(n int) int {
	p.calls = append(p.calls, n)
	return p.index
}

func newTestService(t *testing.T, names ...string) (*Service, *store.MockStore) {
	t.Helper()
	s := store.NewMockStore()
	for _, n := range names {
		require.NoError(t, s.SaveEntry(context.Background(), n, "# "+n))
	}
	return New(s, NewSeededPicker(1), nil), s
}

func TestService_Index(t *testing.T) {
	svc, _ := newTestService(t, "Python", "Git")

	names, err := svc.Index(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Python", "Git"}, names)
}

func TestService_Index_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	names, err := svc.Index(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestService_Article(t *testing.T) {
	svc, _ := newTestService(t, "Python")
	ctx := context.Background()

	a, err := svc.Article(ctx, "Python")
	require.NoError(t, err)
	assert.Equal(t, Article{Name: "Python", Body: "# Python"}, a)

	// Lookup is exact-case.
	_, err = svc.Article(ctx, "python")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Article(ctx, "Java")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "Django", "web\r\nframework"))

	a, err := svc.Article(ctx, "Django")
	require.NoError(t, err)
	assert.Equal(t, "web\nframework", a.Body)
	assert.Equal(t, 1, s.Len())
}

func TestService_Create_DuplicateIgnoresCase(t *testing.T) {
	svc, s := newTestService(t, "Python")
	ctx := context.Background()

	for _, candidate := range []string{"Python", "python", "PYTHON", "pYtHoN"} {
		err := svc.Create(ctx, candidate, "replacement")
		assert.ErrorIs(t, err, ErrDuplicateName, "candidate %q", candidate)
	}

	// Store unchanged.
	assert.Equal(t, 1, s.Len())
	a, err := svc.Article(ctx, "Python")
	require.NoError(t, err)
	assert.Equal(t, "# Python", a.Body)
}

func TestService_Create_SubstringIsNotDuplicate(t *testing.T) {
	svc, _ := newTestService(t, "Python")

	require.NoError(t, svc.Create(context.Background(), "Py", "short"))
}

func TestService_Create_InvalidName(t *testing.T) {
	svc, s := newTestService(t)

	err := svc.Create(context.Background(), "../etc/passwd", "x")
	assert.ErrorIs(t, err, store.ErrInvalidName)
	assert.Equal(t, 0, s.Len())
}

func TestService_Create_UniquenessInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, n := range []string{"Go", "go", "Rust", "GO", "rust", "Zig", "zIG"} {
		_ = svc.Create(ctx, n, "body")
	}

	names, err := svc.Index(ctx)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, n := range names {
		key := store.Name(n).Key()
		assert.False(t, seen[key], "duplicate case-insensitive name %q", n)
		seen[key] = true
	}
	assert.Len(t, names, 3)
}

func TestService_Edit_Overwrites(t *testing.T) {
	svc, _ := newTestService(t, "Git")
	ctx := context.Background()

	require.NoError(t, svc.Edit(ctx, "Git", "new body\r\n"))

	a, err := svc.Article(ctx, "Git")
	require.NoError(t, err)
	assert.Equal(t, "new body\n", a.Body)
}

func TestService_Edit_CreatesCaseVariant(t *testing.T) {
	svc, s := newTestService(t, "Python")
	ctx := context.Background()

	// Edit performs no duplicate check, so a case variant becomes a new unit.
	require.NoError(t, svc.Edit(ctx, "python", "lowercase"))

	assert.Equal(t, 2, s.Len())
	names, err := svc.Index(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Python", "python"}, names)

	a, err := svc.Article(ctx, "Python")
	require.NoError(t, err)
	assert.Equal(t, "# Python", a.Body)
}

func TestService_Edit_BlankBody(t *testing.T) {
	svc, _ := newTestService(t, "Git")
	ctx := context.Background()

	assert.ErrorIs(t, svc.Edit(ctx, "Git", ""), ErrEmptyBody)

	a, err := svc.Article(ctx, "Git")
	require.NoError(t, err)
	assert.Equal(t, "# Git", a.Body)
}

func TestService_Edit_WhitespaceBodyIsSaved(t *testing.T) {
	svc, _ := newTestService(t, "Git")
	ctx := context.Background()

	require.NoError(t, svc.Edit(ctx, "Git", "   "))

	a, err := svc.Article(ctx, "Git")
	require.NoError(t, err)
	assert.Equal(t, "   ", a.Body)
}

func TestService_Create_LongMultibyteName(t *testing.T) {
	svc, s := newTestService(t)

	err := svc.Create(context.Background(), strings.Repeat("😀", 80), "body")
	assert.ErrorIs(t, err, store.ErrInvalidName)
	assert.Equal(t, 0, s.Len())
}

func TestService_StorageErrorsPropagate(t *testing.T) {
	svc, s := newTestService(t, "Git")
	ctx := context.Background()
	diskErr := errors.New("disk on fire")
	s.Err = diskErr

	_, err := svc.Index(ctx)
	assert.ErrorIs(t, err, diskErr)

	_, err = svc.Article(ctx, "Git")
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Create(ctx, "New", "x"), diskErr)
	assert.ErrorIs(t, svc.Edit(ctx, "Git", "x"), diskErr)

	_, err = svc.Search(ctx, "g")
	assert.ErrorIs(t, err, diskErr)

	_, err = svc.Random(ctx)
	assert.ErrorIs(t, err, diskErr)
}

func TestService_Exists(t *testing.T) {
	svc, _ := newTestService(t, "HTML")
	ctx := context.Background()

	got, err := svc.Exists(ctx, "html")
	require.NoError(t, err)
	assert.Equal(t, "HTML", got)

	got, err = svc.Exists(ctx, "HTM")
	require.NoError(t, err)
	assert.Empty(t, got)
}
