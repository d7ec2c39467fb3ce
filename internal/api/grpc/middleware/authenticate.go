package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// Authenticator resolves a bearer token to the session it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (model.Session, error)
}

// Authenticate validates bearer tokens and injects the user and session IDs into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads "authorization: Bearer <token>", resolves the session and
// returns a context carrying its identity.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	session, err := m.authenticator.Authenticate(ctx, bearerToken(ctx))
	if err != nil {
		if apiErr, ok := apperrors.As(err); ok && apiErr.GRPCCode == codes.Unauthenticated {
			return nil, status.Error(codes.Unauthenticated, apiErr.Message)
		}
		m.logger.Error("Authenticate middleware: session lookup failed",
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return m.contextManager.SetAuthToContext(ctx, session.UserID, session.ID), nil
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(values[0]), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
