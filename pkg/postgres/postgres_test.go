package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_add_index.sql": {Data: []byte("CREATE INDEX ...")},
		"migrations/001_kv_store.sql":  {Data: []byte("CREATE TABLE ...")},
		"migrations/README.md":         {Data: []byte("notes")},
		"migrations/003_later.sql":     {Data: []byte("ALTER TABLE ...")},
	}

	pending, err := pendingMigrations(fsys, map[string]bool{"002_add_index.sql": true})
	require.NoError(t, err)

	assert.Equal(t, []string{"001_kv_store.sql", "003_later.sql"}, pending)
}

func TestPendingMigrations_EmbeddedFilesPresent(t *testing.T) {
	pending, err := pendingMigrations(migrationsFS, map[string]bool{})
	require.NoError(t, err)

	assert.Contains(t, pending, "001_kv_store.sql")
}

func TestPendingMigrations_AllApplied(t *testing.T) {
	pending, err := pendingMigrations(migrationsFS, map[string]bool{"001_kv_store.sql": true})
	require.NoError(t, err)

	assert.Empty(t, pending)
}
