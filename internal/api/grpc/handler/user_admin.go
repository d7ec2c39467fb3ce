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

// UsersAdminServiceName is the admin-only account management service.
const UsersAdminServiceName = "mediavault.v1.UsersAdmin"

// UserAdminService defines administrative account operations.
type UserAdminService interface {
	Search(ctx context.Context, filter dto.UserSearchFilter) ([]dto.UserAdminResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error)
	Create(ctx context.Context, req dto.UserAdminCreateRequest) (dto.UserAdminResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UserAdminUpdateRequest) (dto.UserAdminResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID, req dto.UserAdminDeleteRequest) (dto.UserAdminResponse, error)
	Restore(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error)
}

// UsersAdminServer is the server API for the UsersAdmin service.
type UsersAdminServer interface {
	SearchUsers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	GetUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CreateUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	DeleteUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	RestoreUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var UsersAdminServiceDesc = grpc.ServiceDesc{
	ServiceName: UsersAdminServiceName,
	HandlerType: (*UsersAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "SearchUsers", UsersAdminServer.SearchUsers),
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "GetUser", UsersAdminServer.GetUser),
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "CreateUser", UsersAdminServer.CreateUser),
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "UpdateUser", UsersAdminServer.UpdateUser),
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "DeleteUser", UsersAdminServer.DeleteUser),
		unaryMethod[UsersAdminServer](UsersAdminServiceName, "RestoreUser", UsersAdminServer.RestoreUser),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterUsersAdminServer(s grpc.ServiceRegistrar, srv UsersAdminServer) {
	s.RegisterService(&UsersAdminServiceDesc, srv)
}

var _ UsersAdminServer = (*UserAdmin)(nil)

// UserAdmin handles account management for administrators. Target accounts
// are addressed by an "id" field in the request body.
type UserAdmin struct {
	userAdminService UserAdminService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

func NewUserAdmin(userAdminService UserAdminService, contextManager model.ContextManager, logger *logger.Logger) *UserAdmin {
	return &UserAdmin{
		userAdminService: userAdminService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

type userListResponse struct {
	Users []dto.UserAdminResponse `json:"users"`
}

func (h *UserAdmin) SearchUsers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	filter, err := dto.ValidateUserAdminSearch(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	users, err := h.userAdminService.Search(ctx, filter)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(userListResponse{Users: users})
}

func (h *UserAdmin) GetUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := parseID(asMap(in), "id")
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userAdminService.Get(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *UserAdmin) CreateUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := dto.ValidateUserAdminCreate(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("UserAdmin handler: processing create request",
		"email", req.Email)

	resp, err := h.userAdminService.Create(ctx, req)
	if err != nil {
		h.logger.Error("UserAdmin handler: create failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

// UpdateUser reports id errors together with body validation errors.
func (h *UserAdmin) UpdateUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	input := asMap(in)
	id, idErr := parseID(input, "id")
	delete(input, "id")

	req, err := dto.ValidateUserAdminUpdate(input)
	if err := mergeValidation(idErr, err); err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userAdminService.Update(ctx, id, req)
	if err != nil {
		h.logger.Error("UserAdmin handler: update failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *UserAdmin) DeleteUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	actorID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	input := asMap(in)
	id, idErr := parseID(input, "id")
	delete(input, "id")

	req, err := dto.ValidateUserAdminDelete(input)
	if err := mergeValidation(idErr, err); err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userAdminService.Delete(ctx, actorID, id, req)
	if err != nil {
		h.logger.Error("UserAdmin handler: delete failed",
			"user_id", id,
			"force", req.IsForce(),
			"error", err.Error())
		return nil, handleError(err)
	}
	return reply(resp)
}

func (h *UserAdmin) RestoreUser(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := parseID(asMap(in), "id")
	if err != nil {
		return nil, handleError(err)
	}

	resp, err := h.userAdminService.Restore(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(resp)
}
