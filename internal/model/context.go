package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager stores the authenticated identity of a request in its context.
type ContextManager interface {
	SetAuthToContext(ctx context.Context, userID, sessionID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
	GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
