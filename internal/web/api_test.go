package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_Entries(t *testing.T) {
	ts := newTestSite(t, map[string]string{"Python": "p", "Git": "g"})

	rec := ts.get(t, "/api/entries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp entriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Git", "Python"}, resp.Entries)
}

func TestAPI_EntriesEmpty(t *testing.T) {
	ts := newTestSite(t, nil)

	rec := ts.get(t, "/api/entries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[]}`, rec.Body.String())
}

func TestAPI_Entry(t *testing.T) {
	ts := newTestSite(t, map[string]string{"Python": "# Python"})

	rec := ts.get(t, "/api/entries/Python")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Python","body":"# Python"}`, rec.Body.String())

	rec = ts.get(t, "/api/entries/Rust")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestAPI_Search(t *testing.T) {
	ts := newTestSite(t, map[string]string{"CSS": "c", "Sass": "s", "Git": "g"})

	rec := ts.get(t, "/api/search?q=s")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s", resp.Query)
	assert.Equal(t, "ambiguous", resp.Outcome)
	assert.Equal(t, []string{"CSS", "Sass"}, resp.Names)

	rec = ts.get(t, "/api/search?q=zzz")
	assert.JSONEq(t, `{"query":"zzz","outcome":"no_match","names":[]}`, rec.Body.String())
}

func TestAPI_StorageFailureHidesError(t *testing.T) {
	ts := newTestSite(t, nil)
	ts.store.Err = errors.New("disk on fire")

	rec := ts.get(t, "/api/entries")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
	assert.Contains(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
}
