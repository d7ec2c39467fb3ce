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

const UsersServiceName = "mediavault.v1.Users"

// UserService defines operations on the caller's own account.
type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (dto.UserAdminResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UserUpdateRequest) (dto.UserAdminResponse, error)
	GetMyPreferences(ctx context.Context, userID uuid.UUID) (dto.UserPreferencesResponse, error)
	UpdateMyPreferences(ctx context.Context, userID uuid.UUID, req dto.UserPreferencesUpdateRequest) (dto.UserPreferencesResponse, error)
	CreateProfileImage(ctx context.Context, userID uuid.UUID, req dto.ProfileImageUploadRequest) (dto.ProfileImageResponse, error)
	GetProfileImage(ctx context.Context, userID uuid.UUID) (dto.ProfileImageDataResponse, error)
	DeleteProfileImage(ctx context.Context, userID uuid.UUID) error
}

// UsersServer is the server API for the Users service.
type UsersServer interface {
	GetMyUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateMyUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	GetMyPreferences(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateMyPreferences(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CreateProfileImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	GetProfileImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	DeleteProfileImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: UsersServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod[UsersServer](UsersServiceName, "GetMyUser", UsersServer.GetMyUser),
		unaryMethod[UsersServer](UsersServiceName, "UpdateMyUser", UsersServer.UpdateMyUser),
		unaryMethod[UsersServer](UsersServiceName, "GetMyPreferences", UsersServer.GetMyPreferences),
		unaryMethod[UsersServer](UsersServiceName, "UpdateMyPreferences", UsersServer.UpdateMyPreferences),
		unaryMethod[UsersServer](UsersServiceName, "CreateProfileImage", UsersServer.CreateProfileImage),
		unaryMethod[UsersServer](UsersServiceName, "GetProfileImage", UsersServer.GetProfileImage),
		unaryMethod[UsersServer](UsersServiceName, "DeleteProfileImage", UsersServer.DeleteProfileImage),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

var _ UsersServer = (*User)(nil)

// User handles the self-service account endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *User) GetMyUser(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userService.GetMe(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) UpdateMyUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateUserUpdate(asMap(in))
	if err != nil {
		h.logger.Debug("User handler: rejected update",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp, err := h.userService.UpdateMe(ctx, userID, req)
	if err != nil {
		h.logger.Error("User handler: update failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) GetMyPreferences(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userService.GetMyPreferences(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) UpdateMyPreferences(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateUserPreferencesUpdate(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userService.UpdateMyPreferences(ctx, userID, req)
	if err != nil {
		h.logger.Error("User handler: preferences update failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) CreateProfileImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateProfileImageUpload(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userService.CreateProfileImage(ctx, userID, req)
	if err != nil {
		h.logger.Error("User handler: profile image upload failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) GetProfileImage(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userService.GetProfileImage(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *User) DeleteProfileImage(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.userService.DeleteProfileImage(ctx, userID); err != nil {
		return nil, handleError(err)
	}
	return emptyReply(), nil
}
