package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"

	grpccontext "github.com/dtroode/mediavault-server/internal/api/grpc/context"
	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/mocks"
	"github.com/dtroode/mediavault-server/internal/testutil"
)

func newTestUserAdmin(t *testing.T) (*UserAdmin, *mocks.UserAdminService) {
	t.Helper()
	svc := mocks.NewUserAdminService(t)
	return NewUserAdmin(svc, grpccontext.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestUserAdmin_SearchUsers(t *testing.T) {
	t.Parallel()

	h, svc := newTestUserAdmin(t)
	svc.On("Search", mock.Anything, mock.MatchedBy(func(f dto.UserSearchFilter) bool {
		return f.IncludeDeleted()
	})).Return([]dto.UserAdminResponse{
		{UserResponse: dto.UserResponse{Email: "a@example.com"}},
		{UserResponse: dto.UserResponse{Email: "b@example.com"}},
	}, nil)

	out, err := h.SearchUsers(context.Background(), mustStruct(t, map[string]any{"withDeleted": "true"}))
	require.NoError(t, err)

	users, ok := out.AsMap()["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 2)
}

func TestUserAdmin_SearchUsers_Empty(t *testing.T) {
	t.Parallel()

	h, svc := newTestUserAdmin(t)
	svc.On("Search", mock.Anything, dto.UserSearchFilter{}).Return([]dto.UserAdminResponse{}, nil)

	out, err := h.SearchUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, out.AsMap()["users"])
}

func TestUserAdmin_GetUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Get", mock.Anything, id).Return(dto.UserAdminResponse{UserResponse: dto.UserResponse{ID: id.String()}}, nil)

	out, err := h.GetUser(context.Background(), mustStruct(t, map[string]any{"id": id.String()}))
	require.NoError(t, err)
	assert.Equal(t, id.String(), out.AsMap()["id"])
}

func TestUserAdmin_GetUser_BadID(t *testing.T) {
	t.Parallel()

	h, _ := newTestUserAdmin(t)
	_, err := h.GetUser(context.Background(), mustStruct(t, map[string]any{"id": "nope"}))
	requireCode(t, err, codes.InvalidArgument)
}

func TestUserAdmin_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Get", mock.Anything, id).Return(dto.UserAdminResponse{}, apperrors.NewErrUserNotFound(id.String()))

	_, err := h.GetUser(context.Background(), mustStruct(t, map[string]any{"id": id.String()}))
	requireCode(t, err, codes.NotFound)
}

func TestUserAdmin_CreateUser(t *testing.T) {
	t.Parallel()

	h, svc := newTestUserAdmin(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req dto.UserAdminCreateRequest) bool {
		label := req.StorageLabel.Ptr()
		return req.Email == "new@example.com" && label != nil && *label == "newlabel"
	})).Return(dto.UserAdminResponse{UserResponse: dto.UserResponse{Email: "new@example.com"}}, nil)

	out, err := h.CreateUser(context.Background(), mustStruct(t, map[string]any{
		"email":        "new@example.com",
		"password":     "secret",
		"name":         "New",
		"storageLabel": "new.label",
	}))
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.AsMap()["email"])
}

func TestUserAdmin_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	h, _ := newTestUserAdmin(t)
	_, err := h.CreateUser(context.Background(), mustStruct(t, map[string]any{
		"email":            "new@example.com",
		"quotaSizeInBytes": -1.0,
		"notify":           "yes",
	}))
	st := requireCode(t, err, codes.InvalidArgument)

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)

	var fields []string
	for _, fv := range br.GetFieldViolations() {
		fields = append(fields, fv.GetField())
	}
	assert.ElementsMatch(t, []string{"password", "name", "quotaSizeInBytes", "notify"}, fields)
}

func TestUserAdmin_UpdateUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req dto.UserAdminUpdateRequest) bool {
		return req.StorageLabel.Set && !req.StorageLabel.Valid && req.Name != nil && *req.Name == "Renamed"
	})).Return(dto.UserAdminResponse{UserResponse: dto.UserResponse{Name: "Renamed"}}, nil)

	out, err := h.UpdateUser(context.Background(), mustStruct(t, map[string]any{
		"id":           id.String(),
		"name":         "Renamed",
		"storageLabel": nil,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.AsMap()["name"])
}

func TestUserAdmin_UpdateUser_ReportsAllFields(t *testing.T) {
	t.Parallel()

	h, _ := newTestUserAdmin(t)
	_, err := h.UpdateUser(context.Background(), mustStruct(t, map[string]any{
		"email": "not-an-email",
	}))
	st := requireCode(t, err, codes.InvalidArgument)

	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.GetFieldViolations(), 2)
	assert.Equal(t, "id", br.GetFieldViolations()[0].GetField())
	assert.Equal(t, "email", br.GetFieldViolations()[1].GetField())
}

func TestUserAdmin_DeleteUser(t *testing.T) {
	t.Parallel()

	actorID, id := uuid.New(), uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Delete", mock.Anything, actorID, id, mock.MatchedBy(func(req dto.UserAdminDeleteRequest) bool {
		return req.IsForce()
	})).Return(dto.UserAdminResponse{Status: "removing"}, nil)

	out, err := h.DeleteUser(authedContext(actorID, uuid.New()), mustStruct(t, map[string]any{
		"id":    id.String(),
		"force": 1.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, "removing", out.AsMap()["status"])
}

func TestUserAdmin_DeleteUser_Self(t *testing.T) {
	t.Parallel()

	actorID := uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Delete", mock.Anything, actorID, actorID, mock.Anything).
		Return(dto.UserAdminResponse{}, apperrors.NewErrCannotDeleteSelf())

	_, err := h.DeleteUser(authedContext(actorID, uuid.New()), mustStruct(t, map[string]any{
		"id": actorID.String(),
	}))
	requireCode(t, err, codes.FailedPrecondition)
}

func TestUserAdmin_RestoreUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h, svc := newTestUserAdmin(t)
	svc.On("Restore", mock.Anything, id).Return(dto.UserAdminResponse{Status: "active"}, nil)

	out, err := h.RestoreUser(context.Background(), mustStruct(t, map[string]any{"id": id.String()}))
	require.NoError(t, err)
	assert.Equal(t, "active", out.AsMap()["status"])
}
