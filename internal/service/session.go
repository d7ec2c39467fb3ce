package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// Session manages a user's login sessions and their sync checkpoints.
type Session struct {
	sessionStore    model.SessionStore
	checkpointStore model.SyncCheckpointStore
	logger          *logger.Logger
}

func NewSession(sessionStore model.SessionStore, checkpointStore model.SyncCheckpointStore, logger *logger.Logger) *Session {
	return &Session{
		sessionStore:    sessionStore,
		checkpointStore: checkpointStore,
		logger:          logger,
	}
}

// List returns the user's sessions, marking the one the request came from.
func (s *Session) List(ctx context.Context, userID, currentID uuid.UUID) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionStore.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Session service: failed to list sessions",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, dto.MapSession(session, currentID))
	}
	return resp, nil
}

// Delete ends one of the user's sessions. Sessions of other users are reported as missing.
func (s *Session) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperrors.NewErrSessionNotFound(sessionID.String())
		}
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session.UserID != userID {
		return apperrors.NewErrSessionNotFound(sessionID.String())
	}

	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperrors.NewErrSessionNotFound(sessionID.String())
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("Session service: session deleted",
		"user_id", userID,
		"session_id", sessionID)
	return nil
}

// DeleteAll ends every session of the user except the current one.
func (s *Session) DeleteAll(ctx context.Context, userID, currentID uuid.UUID) error {
	if err := s.sessionStore.DeleteByUserID(ctx, userID, &currentID); err != nil {
		s.logger.Error("Session service: failed to delete sessions",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	s.logger.Info("Session service: other sessions deleted",
		"user_id", userID)
	return nil
}

func (s *Session) GetSyncAcks(ctx context.Context, sessionID uuid.UUID) ([]dto.SyncAck, error) {
	checkpoints, err := s.checkpointStore.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync checkpoints: %w", err)
	}

	acks := make([]dto.SyncAck, 0, len(checkpoints))
	for _, cp := range checkpoints {
		acks = append(acks, dto.MapSyncAck(cp))
	}
	return acks, nil
}

func (s *Session) SetSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckSetRequest) error {
	checkpoints := make([]model.SyncCheckpoint, 0, len(req.Acks))
	for _, ack := range req.Acks {
		checkpoints = append(checkpoints, model.SyncCheckpoint{
			SessionID: sessionID,
			Type:      ack.Type,
			Ack:       ack.Ack,
		})
	}

	if err := s.checkpointStore.Upsert(ctx, checkpoints); err != nil {
		s.logger.Error("Session service: failed to store sync acks",
			"session_id", sessionID,
			"error", err.Error())
		return fmt.Errorf("failed to store sync acks: %w", err)
	}

	s.logger.Debug("Session service: sync acks stored",
		"session_id", sessionID,
		"count", len(checkpoints))
	return nil
}

// DeleteSyncAcks resets the given checkpoint types, or all of them when none are given.
func (s *Session) DeleteSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckDeleteRequest) error {
	if err := s.checkpointStore.Delete(ctx, sessionID, req.Types); err != nil {
		return fmt.Errorf("failed to delete sync acks: %w", err)
	}
	return nil
}
