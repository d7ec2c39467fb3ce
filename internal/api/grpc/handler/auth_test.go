package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	grpccontext "github.com/dtroode/mediavault-server/internal/api/grpc/context"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/mocks"
	"github.com/dtroode/mediavault-server/internal/testutil"
)

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func authedContext(userID, sessionID uuid.UUID) context.Context {
	return grpccontext.NewManager().SetAuthToContext(context.Background(), userID, sessionID)
}

func requireCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status, got %v", err)
	require.Equal(t, code, st.Code())
	return st
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, dto.LoginRequest{
		Email:      "alice@example.com",
		Password:   "secret",
		DeviceType: "ios",
	}).Return(dto.LoginResponse{AccessToken: "tok", UserEmail: "alice@example.com", IsAdmin: true}, nil)

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.Login(context.Background(), mustStruct(t, map[string]any{
		"email":      " Alice@Example.com ",
		"password":   "secret",
		"deviceType": "ios",
	}))
	require.NoError(t, err)

	got := out.AsMap()
	assert.Equal(t, "tok", got["accessToken"])
	assert.Equal(t, true, got["isAdmin"])
}

func TestAuth_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())

	out, err := h.Login(context.Background(), mustStruct(t, map[string]any{"email": "nope"}))
	assert.Nil(t, out)
	requireCode(t, err, codes.InvalidArgument)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, mock.Anything).Return(dto.LoginResponse{}, apperrors.NewErrInvalidCredentials())

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.Login(context.Background(), mustStruct(t, map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	}))
	requireCode(t, err, codes.Unauthenticated)
}

func TestAuth_AdminSignUp(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("AdminSignUp", mock.Anything, dto.SignUpRequest{
		Email:    "admin@example.com",
		Password: "secret",
		Name:     "Admin",
	}).Return(dto.UserAdminResponse{IsAdmin: true, Status: "active"}, nil)

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.AdminSignUp(context.Background(), mustStruct(t, map[string]any{
		"email":    "admin@example.com",
		"password": "secret",
		"name":     "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, true, out.AsMap()["isAdmin"])
}

func TestAuth_AdminSignUp_AlreadyExists(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("AdminSignUp", mock.Anything, mock.Anything).Return(dto.UserAdminResponse{}, apperrors.NewErrAdminAlreadyExists())

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.AdminSignUp(context.Background(), mustStruct(t, map[string]any{
		"email":    "admin@example.com",
		"password": "secret",
		"name":     "Admin",
	}))
	assert.Error(t, err)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	userID, sessionID := uuid.New(), uuid.New()
	svc := mocks.NewAuthService(t)
	svc.On("Logout", mock.Anything, sessionID).Return(nil)

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.Logout(authedContext(userID, sessionID), nil)
	require.NoError(t, err)
	assert.Equal(t, true, out.AsMap()["successful"])
}

func TestAuth_Logout_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())

	_, err := h.Logout(context.Background(), nil)
	requireCode(t, err, codes.Unauthenticated)
}

func TestAuth_ChangePassword(t *testing.T) {
	t.Parallel()

	userID, sessionID := uuid.New(), uuid.New()
	svc := mocks.NewAuthService(t)
	svc.On("ChangePassword", mock.Anything, userID, dto.ChangePasswordRequest{
		Password:    "old-secret",
		NewPassword: "new-secret",
	}).Return(dto.UserAdminResponse{UserResponse: dto.UserResponse{ID: userID.String()}}, nil)

	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.ChangePassword(authedContext(userID, sessionID), mustStruct(t, map[string]any{
		"password":    "old-secret",
		"newPassword": "new-secret",
	}))
	require.NoError(t, err)
	assert.Equal(t, userID.String(), out.AsMap()["id"])
}

func TestAuth_ChangePassword_TooShort(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())

	_, err := h.ChangePassword(authedContext(uuid.New(), uuid.New()), mustStruct(t, map[string]any{
		"password":    "old-secret",
		"newPassword": "short",
	}))
	requireCode(t, err, codes.InvalidArgument)
}
