package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// Compile-time check that DB satisfies the shared database interface
var _ db.Database = (*DB)(nil)

func TestPendingMigrations_SkipsAppliedAndSorts(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_b.sql":   {Data: []byte("SELECT 2")},
		"migrations/001_a.sql":   {Data: []byte("SELECT 1")},
		"migrations/003_c.sql":   {Data: []byte("SELECT 3")},
		"migrations/README.md":   {Data: []byte("notes")},
		"migrations/old/004.sql": {Data: []byte("SELECT 4")},
	}

	pending, err := pendingMigrations(fsys, map[string]bool{"002_b.sql": true})
	require.NoError(t, err)

	assert.Equal(t, []string{"001_a.sql", "003_c.sql"}, pending)
}

func TestPendingMigrations_EmbeddedFiles(t *testing.T) {
	pending, err := pendingMigrations(migrationsFS, map[string]bool{})
	require.NoError(t, err)

	assert.Equal(t, []string{"001_create_participants.sql", "002_create_settings.sql"}, pending)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("2024-05-01T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())

	_, err = parseTimestamp("yesterday")
	assert.Error(t, err)

	now, err := parseTimestamp("")
	require.NoError(t, err)
	assert.False(t, now.IsZero())
}
