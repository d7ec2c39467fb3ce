package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/mediavault-server/internal/dto"
	servermocks "github.com/dtroode/mediavault-server/internal/mocks"
	"github.com/dtroode/mediavault-server/internal/model"
	"github.com/dtroode/mediavault-server/internal/testutil"
)

func newTestSession(t *testing.T) (*Session, *servermocks.SessionStore, *servermocks.SyncCheckpointStore) {
	t.Helper()
	sessions := servermocks.NewSessionStore(t)
	checkpoints := servermocks.NewSyncCheckpointStore(t)
	return NewSession(sessions, checkpoints, testutil.MakeNoopLogger()), sessions, checkpoints
}

func TestSession_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	current := uuid.New()
	other := uuid.New()
	now := time.Now()

	s, sessions, _ := newTestSession(t)
	sessions.On("GetByUserID", ctx, userID).Return([]model.Session{
		{ID: current, UserID: userID, CreatedAt: now, UpdatedAt: now, DeviceType: "iOS"},
		{ID: other, UserID: userID, CreatedAt: now, UpdatedAt: now},
	}, nil)

	resp, err := s.List(ctx, userID, current)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Current)
	assert.Equal(t, "iOS", resp[0].DeviceType)
	assert.False(t, resp[1].Current)
}

func TestSession_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("own session", func(t *testing.T) {
		t.Parallel()
		s, sessions, _ := newTestSession(t)
		sessions.On("GetByID", ctx, sessionID).Return(model.Session{ID: sessionID, UserID: userID}, nil)
		sessions.On("Delete", ctx, sessionID).Return(nil)

		require.NoError(t, s.Delete(ctx, userID, sessionID))
	})

	t.Run("foreign session looks missing", func(t *testing.T) {
		t.Parallel()
		s, sessions, _ := newTestSession(t)
		sessions.On("GetByID", ctx, sessionID).Return(model.Session{ID: sessionID, UserID: uuid.New()}, nil)

		requireAPIError(t, s.Delete(ctx, userID, sessionID), codes.NotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()
		s, sessions, _ := newTestSession(t)
		sessions.On("GetByID", ctx, sessionID).Return(model.Session{}, model.ErrNotFound)

		requireAPIError(t, s.Delete(ctx, userID, sessionID), codes.NotFound)
	})
}

func TestSession_DeleteAll_KeepsCurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	current := uuid.New()

	s, sessions, _ := newTestSession(t)
	sessions.On("DeleteByUserID", ctx, userID, &current).Return(nil)

	require.NoError(t, s.DeleteAll(ctx, userID, current))
}

func TestSession_SyncAcks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessionID := uuid.New()

	t.Run("set", func(t *testing.T) {
		t.Parallel()
		s, _, checkpoints := newTestSession(t)
		checkpoints.On("Upsert", ctx, []model.SyncCheckpoint{
			{SessionID: sessionID, Type: "AssetV1", Ack: "a"},
			{SessionID: sessionID, Type: "UserV1", Ack: "b"},
		}).Return(nil)

		err := s.SetSyncAcks(ctx, sessionID, dto.SyncAckSetRequest{Acks: []dto.SyncAck{
			{Type: "AssetV1", Ack: "a"},
			{Type: "UserV1", Ack: "b"},
		}})
		require.NoError(t, err)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		s, _, checkpoints := newTestSession(t)
		checkpoints.On("GetBySessionID", ctx, sessionID).Return([]model.SyncCheckpoint{{Type: "AssetV1", Ack: "a"}}, nil)

		acks, err := s.GetSyncAcks(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, []dto.SyncAck{{Type: "AssetV1", Ack: "a"}}, acks)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		s, _, checkpoints := newTestSession(t)
		checkpoints.On("Delete", ctx, sessionID, []string{"AssetV1"}).Return(nil)

		require.NoError(t, s.DeleteSyncAcks(ctx, sessionID, dto.SyncAckDeleteRequest{Types: []string{"AssetV1"}}))
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		s, _, checkpoints := newTestSession(t)
		checkpoints.On("Delete", ctx, sessionID, []string(nil)).Return(errors.New("db"))

		require.Error(t, s.DeleteSyncAcks(ctx, sessionID, dto.SyncAckDeleteRequest{}))
	})
}
