package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/mediavault-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// sessionColumns is the public projection. The token hash is only read by
// GetByIDWithToken.
const sessionColumns = `id, user_id, created_at, updated_at, device_type, device_os`

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func scanSession(row pgx.Row) (model.Session, error) {
	var session model.Session
	err := row.Scan(
		&session.ID, &session.UserID, &session.CreatedAt, &session.UpdatedAt,
		&session.DeviceType, &session.DeviceOS,
	)
	return session, err
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	query := `INSERT INTO sessions (id, token, user_id, device_type, device_os)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + sessionColumns

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	saved, err := scanSession(r.db.QueryRow(ctx, query,
		session.ID, session.Token, session.UserID, session.DeviceType, session.DeviceOS,
	))
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", classifyError(err))
	}

	return saved, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions by user id: %w", err)
	}
	defer rows.Close()

	sessions := []model.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// GetByIDWithToken returns the session including its token hash, provided
// the owning user has not been deleted.
func (r *SessionRepository) GetByIDWithToken(ctx context.Context, id uuid.UUID) (model.Session, error) {
	const query = `
        SELECT s.id, s.user_id, s.created_at, s.updated_at, s.device_type, s.device_os, s.token
        FROM sessions s
        JOIN users u ON u.id = s.user_id
        WHERE s.id = $1 AND u.deleted_at IS NULL
    `

	var session model.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.UserID, &session.CreatedAt, &session.UpdatedAt,
		&session.DeviceType, &session.DeviceOS, &session.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session with token: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Touch(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE sessions SET updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM sessions WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes every session of the user except the one given.
func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID, except *uuid.UUID) error {
	const query = `DELETE FROM sessions WHERE user_id = $1 AND ($2::uuid IS NULL OR id <> $2::uuid)`

	if _, err := r.db.Exec(ctx, query, userID, except); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}
