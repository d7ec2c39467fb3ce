package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/mediavault-server/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestDeletedFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", deletedFilter(true))
	assert.Equal(t, " AND deleted_at IS NULL", deletedFilter(false))
}

func TestBuildUserUpdate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	email := "a@example.com"
	name := "Alice"
	flag := false

	tests := []struct {
		name     string
		update   model.UserUpdate
		wantSets []string
		wantArgs []any
	}{
		{
			name:     "empty update only bumps updated_at",
			update:   model.UserUpdate{},
			wantSets: []string{"updated_at = NOW()"},
			wantArgs: []any{id},
		},
		{
			name:     "email and name",
			update:   model.UserUpdate{Email: &email, Name: &name},
			wantSets: []string{"email = $1", "name = $2", "updated_at = NOW()"},
			wantArgs: []any{email, name, id},
		},
		{
			name:     "explicit null storage label",
			update:   model.UserUpdate{StorageLabel: model.Null[string]()},
			wantSets: []string{"storage_label = $1", "updated_at = NOW()"},
			wantArgs: []any{(*string)(nil), id},
		},
		{
			name: "quota and should change password",
			update: model.UserUpdate{
				ShouldChangePassword: &flag,
				QuotaSizeInBytes:     model.NewNullable[int64](1024),
			},
			wantSets: []string{"should_change_password = $1", "quota_size_in_bytes = $2", "updated_at = NOW()"},
			wantArgs: []any{false, int64Ptr(1024), id},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args := buildUserUpdate(id, tt.update)

			require.True(t, strings.HasPrefix(query, "UPDATE users SET "+strings.Join(tt.wantSets, ", ")+" WHERE id = $"), query)
			assert.Contains(t, query, "RETURNING "+userColumns)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUserColumns(t *testing.T) {
	t.Parallel()

	cols := strings.Split(userColumns, ",")
	assert.Len(t, cols, 15)
	assert.Contains(t, userColumns, "deleted_at")
}

func int64Ptr(v int64) *int64 {
	return &v
}
