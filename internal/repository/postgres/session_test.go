package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSessionRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewSyncCheckpointRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSyncCheckpointRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSessionColumns_ExcludeToken(t *testing.T) {
	t.Parallel()

	for _, col := range strings.Split(sessionColumns, ",") {
		assert.NotEqual(t, "token", strings.TrimSpace(col))
	}
}
