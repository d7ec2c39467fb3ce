package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// Metadata keys carrying the authenticated identity. Incoming copies of
// these keys are overwritten by SetAuthToContext.
const (
	userIDKey    = "x-auth-user-id"
	sessionIDKey = "x-auth-session-id"
)

// Manager keeps the authenticated user and session in incoming gRPC metadata.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetAuthToContext returns ctx with the user and session IDs recorded.
func (m *Manager) SetAuthToContext(ctx context.Context, userID, sessionID uuid.UUID) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.MD{}
	}
	md.Set(userIDKey, userID.String())
	md.Set(sessionIDKey, sessionID.String())

	return metadata.NewIncomingContext(ctx, md)
}

func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return idFromContext(ctx, userIDKey)
}

func (m *Manager) GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return idFromContext(ctx, sessionIDKey)
}

func idFromContext(ctx context.Context, key string) (uuid.UUID, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	values := md.Get(key)
	if len(values) == 0 {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(values[0])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
