//go:build integration

package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/dtroode/mediavault-server/internal/model"
	repo "github.com/dtroode/mediavault-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("mediavault_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}
	dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	code := m.Run()
	if err := testcontainers.TerminateContainer(container); err != nil {
		panic(err)
	}
	os.Exit(code)
}

func newUser(email string) model.User {
	return model.User{
		Email:                email,
		Name:                 "Test User",
		Password:             "hash",
		ShouldChangePassword: true,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	saved, err := ur.Create(ctx, newUser("user@example.com"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, model.UserStatusActive, saved.Status)

	t.Run("duplicate email is a constraint violation", func(t *testing.T) {
		_, err := ur.Create(ctx, newUser("user@example.com"))
		require.ErrorIs(t, err, model.ErrConstraintViolation)
	})

	t.Run("partial update", func(t *testing.T) {
		name := "Renamed"
		updated, err := ur.Update(ctx, saved.ID, model.UserUpdate{
			Name:             &name,
			StorageLabel:     model.NewNullable("renamed"),
			QuotaSizeInBytes: model.NewNullable[int64](1 << 20),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, saved.Email, updated.Email)
		require.NotNil(t, updated.StorageLabel)
		assert.Equal(t, "renamed", *updated.StorageLabel)

		cleared, err := ur.Update(ctx, saved.ID, model.UserUpdate{StorageLabel: model.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, cleared.StorageLabel)
		require.NotNil(t, cleared.QuotaSizeInBytes)
	})

	t.Run("metadata", func(t *testing.T) {
		err := ur.UpsertMetadata(ctx, model.UserMetadata{
			UserID: saved.ID,
			Key:    model.UserMetadataKeyPreferences,
			Value:  json.RawMessage(`{"avatar":{"color":"pink"}}`),
		})
		require.NoError(t, err)

		got, err := ur.GetByID(ctx, saved.ID, false)
		require.NoError(t, err)
		assert.Equal(t, model.AvatarColorPink, model.GetPreferences(got).Avatar.Color)
	})

	t.Run("soft delete and restore", func(t *testing.T) {
		deleted, err := ur.SoftDelete(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, model.UserStatusDeleted, deleted.Status)
		require.NotNil(t, deleted.DeletedAt)
		assert.Equal(t, model.AvatarColorPink, model.GetPreferences(deleted).Avatar.Color)

		_, err = ur.GetByID(ctx, saved.ID, false)
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = ur.GetByID(ctx, saved.ID, true)
		require.NoError(t, err)

		restored, err := ur.Restore(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, restored.DeletedAt)
		assert.Equal(t, model.UserStatusActive, restored.Status)
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	sr := repo.NewSessionRepository(conn)
	cr := repo.NewSyncCheckpointRepository(conn)

	owner, err := ur.Create(ctx, newUser("owner@example.com"))
	require.NoError(t, err)

	first, err := sr.Create(ctx, model.Session{Token: "hash-1", UserID: owner.ID, DeviceType: "Chrome", DeviceOS: "macOS"})
	require.NoError(t, err)
	second, err := sr.Create(ctx, model.Session{Token: "hash-2", UserID: owner.ID})
	require.NoError(t, err)

	t.Run("public projection omits token", func(t *testing.T) {
		got, err := sr.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Token)
		assert.Equal(t, "Chrome", got.DeviceType)

		list, err := sr.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, s := range list {
			assert.Empty(t, s.Token)
		}
	})

	t.Run("secret projection returns token", func(t *testing.T) {
		got, err := sr.GetByIDWithToken(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "hash-1", got.Token)
	})

	t.Run("checkpoints", func(t *testing.T) {
		err := cr.Upsert(ctx, []model.SyncCheckpoint{
			{SessionID: first.ID, Type: "AssetV1", Ack: "1"},
			{SessionID: first.ID, Type: "UserV1", Ack: "2"},
		})
		require.NoError(t, err)
		require.NoError(t, cr.Upsert(ctx, []model.SyncCheckpoint{{SessionID: first.ID, Type: "AssetV1", Ack: "3"}}))

		list, err := cr.GetBySessionID(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "3", list[0].Ack)

		require.NoError(t, cr.Delete(ctx, first.ID, []string{"UserV1"}))
		list, err = cr.GetBySessionID(ctx, first.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete all except current", func(t *testing.T) {
		require.NoError(t, sr.DeleteByUserID(ctx, owner.ID, &first.ID))

		_, err := sr.GetByID(ctx, second.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = sr.GetByID(ctx, first.ID)
		require.NoError(t, err)
	})

	t.Run("soft deleted user cannot resolve sessions", func(t *testing.T) {
		_, err := ur.SoftDelete(ctx, owner.ID)
		require.NoError(t, err)

		_, err = sr.GetByIDWithToken(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("hard delete cascades", func(t *testing.T) {
		require.NoError(t, ur.Delete(ctx, owner.ID))

		_, err := sr.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := cr.GetBySessionID(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("user id change cascades", func(t *testing.T) {
		renamed, err := ur.Create(ctx, newUser("renamed-id@example.com"))
		require.NoError(t, err)
		session, err := sr.Create(ctx, model.Session{Token: "hash-3", UserID: renamed.ID})
		require.NoError(t, err)

		newID := uuid.New()
		_, err = conn.Exec(ctx, `UPDATE users SET id = $1 WHERE id = $2`, newID, renamed.ID)
		require.NoError(t, err)

		got, err := sr.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, newID, got.UserID)

		list, err := sr.GetByUserID(ctx, renamed.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
