package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// AuthServiceName is the gRPC service exposing login and password management.
const AuthServiceName = "mediavault.v1.Auth"

// Methods callable without a bearer token.
var (
	AuthLoginMethod       = fullMethod(AuthServiceName, "Login")
	AuthAdminSignUpMethod = fullMethod(AuthServiceName, "AdminSignUp")
)

// AuthService defines login, logout and password operations.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) (dto.UserAdminResponse, error)
	AdminSignUp(ctx context.Context, req dto.SignUpRequest) (dto.UserAdminResponse, error)
}

// AuthServer is the server API for the Auth service.
type AuthServer interface {
	Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	AdminSignUp(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Logout(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ChangePassword(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod[AuthServer](AuthServiceName, "Login", AuthServer.Login),
		unaryMethod[AuthServer](AuthServiceName, "AdminSignUp", AuthServer.AdminSignUp),
		unaryMethod[AuthServer](AuthServiceName, "Logout", AuthServer.Logout),
		unaryMethod[AuthServer](AuthServiceName, "ChangePassword", AuthServer.ChangePassword),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

var _ AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Login checks credentials and returns a bearer token for a new session.
func (h *Auth) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := dto.ValidateLogin(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return reply(resp)
}

// AdminSignUp creates the first admin account.
func (h *Auth) AdminSignUp(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := dto.ValidateAdminSignUp(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.authService.AdminSignUp(ctx, req)
	if err != nil {
		h.logger.Error("Auth handler: admin sign up failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return reply(resp)
}

// Logout closes the session the request was authenticated with.
func (h *Auth) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	_, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.authService.Logout(ctx, sessionID); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"session_id", sessionID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return reply(map[string]any{"successful": true})
}

func (h *Auth) ChangePassword(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateChangePassword(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.authService.ChangePassword(ctx, userID, req)
	if err != nil {
		h.logger.Error("Auth handler: change password failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return reply(resp)
}
