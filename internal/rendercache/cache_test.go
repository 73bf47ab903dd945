// ABOUTME: Tests for the render cache used to skip repeated Markdown rendering.
// ABOUTME: Validates TTL expiration, size limits, eviction, hashing, and concurrency safety.

package rendercache

import (
	"fmt"
	"html/template"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2389/coven-wiki/internal/markup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func doc(html string) markup.Document {
	return markup.Document{HTML: template.HTML(html)}
}

func TestCache_Get_Missing(t *testing.T) {
	cache := New(5*time.Minute, 100)
	defer cache.Close()

	_, ok := cache.Get("never-stored")
	assert.False(t, ok)
}

func TestCache_PutAndGet(t *testing.T) {
	cache := New(5*time.Minute, 100)
	defer cache.Close()

	cache.Put("k", doc("<p>hi</p>"))

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, template.HTML("<p>hi</p>"), got.HTML)
}

func TestCache_Get_Expired(t *testing.T) {
	cache := New(10*time.Millisecond, 100)
	defer cache.Close()

	cache.Put("k", doc("x"))
	_, ok := cache.Get("k")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	cache := New(5*time.Minute, 3)
	defer cache.Close()

	cache.Put("a", doc("a"))
	cache.Put("b", doc("b"))
	cache.Put("c", doc("c"))
	cache.Put("d", doc("d"))

	assert.Equal(t, 3, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	for _, k := range []string{"b", "c", "d"} {
		_, ok := cache.Get(k)
		assert.True(t, ok, "key %s should remain", k)
	}
}

func TestCache_PutRefreshesExisting(t *testing.T) {
	cache := New(5*time.Minute, 2)
	defer cache.Close()

	cache.Put("a", doc("a1"))
	cache.Put("b", doc("b"))
	cache.Put("a", doc("a2")) // a moves to back
	cache.Put("c", doc("c"))  // evicts b

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, template.HTML("a2"), got.HTML)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}

func TestCache_RunCleanup(t *testing.T) {
	cache := New(10*time.Millisecond, 100)
	defer cache.Close()

	cache.Put("a", doc("a"))
	cache.Put("b", doc("b"))
	time.Sleep(20 * time.Millisecond)

	cache.runCleanup()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Render(t *testing.T) {
	cache := New(5*time.Minute, 100)
	defer cache.Close()
	r := markup.New(markup.Options{})

	first, err := cache.Render(r, "# Title")
	require.NoError(t, err)
	second, err := cache.Render(r, "# Title")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := cache.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	// A changed body is a different key, so the new version is rendered.
	edited, err := cache.Render(r, "# Other")
	require.NoError(t, err)
	assert.Contains(t, string(edited.HTML), "Other")
	assert.Equal(t, 2, cache.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("same"), Key("same"))
	assert.NotEqual(t, Key("a"), Key("b"))
	assert.Len(t, Key(""), 32)
}

func TestCache_CloseIdempotent(t *testing.T) {
	cache := New(time.Minute, 10)
	cache.Close()
	cache.Close()
}

func TestCache_Concurrent(t *testing.T) {
	cache := New(5*time.Minute, 50)
	defer cache.Close()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k-%d-%d", n, j%20)
				cache.Put(key, doc(key))
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 50)
}
