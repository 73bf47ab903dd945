// ABOUTME: Contract tests for on-disk formats to detect breaking storage changes.
// ABOUTME: Validates the SQLite entries table and the backup record encoding.

package contract

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"slices"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/coven-wiki/internal/backup"
	"github.com/2389/coven-wiki/internal/store"
)

// expectedSchema defines the contract for our database schema.
// If a table or column is removed or renamed, these tests will fail.
var expectedSchema = map[string][]string{
	"entries": {"name", "body", "updated_at"},
}

// setupTestDB creates a temporary SQLite database with the production schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "contract_test.db")

	// The store owns its connection, so open a second one for inspection
	sqliteStore, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err, "failed to create SQLite store")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err, "failed to open database")

	t.Cleanup(func() {
		db.Close()
		sqliteStore.Close()
	})

	return db
}

// getTableColumns queries SQLite for the column names and primary key flags of a table.
func getTableColumns(ctx context.Context, db *sql.DB, tableName string) (map[string]bool, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", tableName)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		columns[name] = pk > 0
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	return columns, nil
}

func TestSchemaSurface(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for table, expectedCols := range expectedSchema {
		t.Run(table, func(t *testing.T) {
			actualCols, err := getTableColumns(ctx, db, table)
			if !assert.NoError(t, err, "failed to get columns for table %s", table) {
				return
			}
			if !assert.NotEmpty(t, actualCols, "table %s should exist and have columns", table) {
				return
			}

			for _, col := range expectedCols {
				_, ok := actualCols[col]
				assert.True(t, ok, "column %s.%s should exist", table, col)
			}

			for col := range actualCols {
				if !slices.Contains(expectedCols, col) {
					t.Logf("INFO: extra column %s.%s not in contract (consider adding)", table, col)
				}
			}
		})
	}
}

// TestEntriesKeyedByName verifies one row per exact name, so saves are upserts.
func TestEntriesKeyedByName(t *testing.T) {
	db := setupTestDB(t)

	cols, err := getTableColumns(context.Background(), db, "entries")
	require.NoError(t, err)
	assert.True(t, cols["name"], "entries.name should be the primary key")
	assert.False(t, cols["body"])
}

// TestBackupRecordEncoding pins the JSON field names of the backup format.
func TestBackupRecordEncoding(t *testing.T) {
	s := store.NewMockStore()
	require.NoError(t, s.SaveEntry(context.Background(), "Git", "# Git"))

	var buf bytes.Buffer
	_, err := backup.Export(context.Background(), s, &buf)
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	raw, err := dec.DecodeAll(buf.Bytes(), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Git","body":"# Git"}`, string(bytes.TrimSpace(raw)))
}
