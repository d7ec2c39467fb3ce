package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/00001_users.sql",
		"migrations/00002_sessions.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrations_SessionsCascadeFromUsers(t *testing.T) {
	t.Parallel()

	body, err := fs.ReadFile(migrations, "migrations/00002_sessions.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "REFERENCES users (id) ON UPDATE CASCADE ON DELETE CASCADE")
	assert.Contains(t, string(body), "REFERENCES sessions (id) ON UPDATE CASCADE ON DELETE CASCADE")
}

func TestMigrate_InvalidDSN(t *testing.T) {
	t.Parallel()

	err := Migrate(context.Background(), "postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse postgres dsn")
}
