package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/mediavault-server/internal/model"
)

var _ model.SyncCheckpointStore = (*SyncCheckpointRepository)(nil)

type SyncCheckpointRepository struct {
	db *Connection
}

func NewSyncCheckpointRepository(db *Connection) *SyncCheckpointRepository {
	return &SyncCheckpointRepository{
		db: db,
	}
}

// Upsert writes all checkpoints in one transaction.
func (r *SyncCheckpointRepository) Upsert(ctx context.Context, checkpoints []model.SyncCheckpoint) error {
	if len(checkpoints) == 0 {
		return nil
	}

	const query = `
        INSERT INTO session_sync_checkpoints (session_id, type, ack)
        VALUES ($1, $2, $3)
        ON CONFLICT (session_id, type) DO UPDATE SET ack = EXCLUDED.ack, updated_at = NOW()
    `

	batch := &pgx.Batch{}
	for _, cp := range checkpoints {
		batch.Queue(query, cp.SessionID, cp.Type, cp.Ack)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert sync checkpoints: %w", classifyError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sync checkpoints: %w", err)
	}
	return nil
}

func (r *SyncCheckpointRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.SyncCheckpoint, error) {
	const query = `
        SELECT session_id, type, ack, created_at, updated_at
        FROM session_sync_checkpoints
        WHERE session_id = $1
        ORDER BY type
    `

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync checkpoints: %w", err)
	}
	defer rows.Close()

	checkpoints := []model.SyncCheckpoint{}
	for rows.Next() {
		var cp model.SyncCheckpoint
		if err := rows.Scan(&cp.SessionID, &cp.Type, &cp.Ack, &cp.CreatedAt, &cp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync checkpoint: %w", err)
		}
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync checkpoints: %w", err)
	}

	return checkpoints, nil
}

// Delete removes checkpoints of the session. An empty types list removes all of them.
func (r *SyncCheckpointRepository) Delete(ctx context.Context, sessionID uuid.UUID, types []string) error {
	var err error
	if len(types) == 0 {
		_, err = r.db.Exec(ctx, `DELETE FROM session_sync_checkpoints WHERE session_id = $1`, sessionID)
	} else {
		_, err = r.db.Exec(ctx, `DELETE FROM session_sync_checkpoints WHERE session_id = $1 AND type = ANY($2)`, sessionID, types)
	}
	if err != nil {
		return fmt.Errorf("failed to delete sync checkpoints: %w", err)
	}
	return nil
}
