package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore defines persistence operations for login sessions.
//
// Every read except GetByIDWithToken uses the public projection and leaves
// Session.Token empty.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Session, error)
	GetByIDWithToken(ctx context.Context, id uuid.UUID) (Session, error)
	Touch(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID, except *uuid.UUID) error
}

// SyncCheckpointStore persists per-session sync acknowledgements.
type SyncCheckpointStore interface {
	Upsert(ctx context.Context, checkpoints []SyncCheckpoint) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]SyncCheckpoint, error)
	Delete(ctx context.Context, sessionID uuid.UUID, types []string) error
}

// Session binds a hashed bearer token to a user and the device it was issued to.
type Session struct {
	ID          uuid.UUID
	Token       string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeviceType  string
	DeviceOS    string
	Checkpoints []SyncCheckpoint
}

// SessionTouchInterval is how stale UpdatedAt may get before activity refreshes it.
const SessionTouchInterval = time.Hour

// SyncCheckpoint records the last acknowledged sync position of one entity
// type for a session.
type SyncCheckpoint struct {
	SessionID uuid.UUID
	Type      string
	Ack       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
