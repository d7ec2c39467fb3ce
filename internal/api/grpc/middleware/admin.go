package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// AdminChecker reports whether a user holds admin privileges.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Admin rejects calls to admin-only services from non-admin users.
// It must run after Authenticate.
type Admin struct {
	checker        AdminChecker
	contextManager model.ContextManager
	logger         *logger.Logger
	prefixes       []string
}

// NewAdmin guards every method of the named gRPC services.
func NewAdmin(checker AdminChecker, contextManager model.ContextManager, logger *logger.Logger, services ...string) *Admin {
	prefixes := make([]string, 0, len(services))
	for _, s := range services {
		prefixes = append(prefixes, "/"+s+"/")
	}
	return &Admin{
		checker:        checker,
		contextManager: contextManager,
		logger:         logger,
		prefixes:       prefixes,
	}
}

func (a *Admin) guarded(fullMethod string) bool {
	for _, p := range a.prefixes {
		if strings.HasPrefix(fullMethod, p) {
			return true
		}
	}
	return false
}

// HandleGRPC is a unary server interceptor.
func (a *Admin) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !a.guarded(info.FullMethod) {
		return handler(ctx, req)
	}

	userID, ok := a.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		apiErr := apperrors.NewErrMissingAuthorizationToken()
		return nil, status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	isAdmin, err := a.checker.IsAdmin(ctx, userID)
	if err != nil {
		a.logger.Error("Admin middleware: failed to check privileges",
			"user_id", userID,
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}
	if !isAdmin {
		a.logger.Info("Admin middleware: access denied",
			"user_id", userID,
			"method", info.FullMethod)
		apiErr := apperrors.NewErrAdminRequired()
		return nil, status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	return handler(ctx, req)
}
