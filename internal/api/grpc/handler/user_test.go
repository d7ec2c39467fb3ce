package handler

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	grpccontext "github.com/dtroode/mediavault-server/internal/api/grpc/context"
	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/mocks"
	"github.com/dtroode/mediavault-server/internal/model"
	"github.com/dtroode/mediavault-server/internal/testutil"
)

func TestUser_GetMyUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("GetMe", mock.Anything, userID).Return(dto.UserAdminResponse{
		UserResponse: dto.UserResponse{ID: userID.String(), Email: "alice@example.com"},
		Status:       "active",
	}, nil)

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.GetMyUser(authedContext(userID, uuid.New()), nil)
	require.NoError(t, err)

	got := out.AsMap()
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "active", got["status"])
	assert.Nil(t, got["storageLabel"])
	assert.NotContains(t, got, "password")
}

func TestUser_GetMyUser_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewUser(mocks.NewUserService(t), grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.GetMyUser(context.Background(), nil)
	requireCode(t, err, codes.Unauthenticated)
}

func TestUser_UpdateMyUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("UpdateMe", mock.Anything, userID, mock.MatchedBy(func(req dto.UserUpdateRequest) bool {
		return req.Email != nil && *req.Email == "bob@example.com" && req.Name == nil && req.Password == nil
	})).Return(dto.UserAdminResponse{UserResponse: dto.UserResponse{Email: "bob@example.com"}}, nil)

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	out, err := h.UpdateMyUser(authedContext(userID, uuid.New()), mustStruct(t, map[string]any{
		"email":   "BOB@example.com",
		"isAdmin": true,
	}))
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", out.AsMap()["email"])
}

func TestUser_UpdateMyUser_Validation(t *testing.T) {
	t.Parallel()

	h := NewUser(mocks.NewUserService(t), grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.UpdateMyUser(authedContext(uuid.New(), uuid.New()), mustStruct(t, map[string]any{
		"email": 42.0,
		"name":  "",
	}))
	st := requireCode(t, err, codes.InvalidArgument)
	require.Len(t, st.Details(), 1)
}

func TestUser_UpdateMyUser_EmailTaken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("UpdateMe", mock.Anything, userID, mock.Anything).
		Return(dto.UserAdminResponse{}, apperrors.NewErrEmailIsTaken("bob@example.com"))

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.UpdateMyUser(authedContext(userID, uuid.New()), mustStruct(t, map[string]any{
		"email": "bob@example.com",
	}))
	requireCode(t, err, codes.AlreadyExists)
}

func TestUser_Preferences(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("GetMyPreferences", mock.Anything, userID).Return(dto.UserPreferencesResponse{
		Avatar: dto.AvatarPreferencesResponse{Color: model.AvatarColorBlue},
	}, nil)
	svc.On("UpdateMyPreferences", mock.Anything, userID, mock.MatchedBy(func(req dto.UserPreferencesUpdateRequest) bool {
		return req.AvatarColor != nil && *req.AvatarColor == model.AvatarColorPink
	})).Return(dto.UserPreferencesResponse{
		Avatar: dto.AvatarPreferencesResponse{Color: model.AvatarColorPink},
	}, nil)

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	ctx := authedContext(userID, uuid.New())

	out, err := h.GetMyPreferences(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"color": "blue"}, out.AsMap()["avatar"])

	out, err = h.UpdateMyPreferences(ctx, mustStruct(t, map[string]any{
		"avatar": map[string]any{"color": "pink"},
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"color": "pink"}, out.AsMap()["avatar"])
}

func TestUser_UpdateMyPreferences_InvalidColor(t *testing.T) {
	t.Parallel()

	h := NewUser(mocks.NewUserService(t), grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.UpdateMyPreferences(authedContext(uuid.New(), uuid.New()), mustStruct(t, map[string]any{
		"avatar": map[string]any{"color": "teal"},
	}))
	requireCode(t, err, codes.InvalidArgument)
}

func TestUser_ProfileImage(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	svc := mocks.NewUserService(t)
	svc.On("CreateProfileImage", mock.Anything, userID, dto.ProfileImageUploadRequest{
		Data:        png,
		ContentType: "image/png",
	}).Return(dto.ProfileImageResponse{UserID: userID.String(), ProfileImagePath: "profile/x.png"}, nil)
	svc.On("GetProfileImage", mock.Anything, userID).Return(dto.ProfileImageDataResponse{
		ContentType: "image/png",
		File:        base64.StdEncoding.EncodeToString(png),
	}, nil)
	svc.On("DeleteProfileImage", mock.Anything, userID).Return(nil)

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	ctx := authedContext(userID, uuid.New())

	out, err := h.CreateProfileImage(ctx, mustStruct(t, map[string]any{
		"file": base64.StdEncoding.EncodeToString(png),
	}))
	require.NoError(t, err)
	assert.Equal(t, "profile/x.png", out.AsMap()["profileImagePath"])

	out, err = h.GetProfileImage(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.AsMap()["contentType"])

	out, err = h.DeleteProfileImage(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, out.AsMap())
}

func TestUser_GetProfileImage_NotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("GetProfileImage", mock.Anything, userID).
		Return(dto.ProfileImageDataResponse{}, apperrors.NewErrProfileImageNotFound(userID.String()))

	h := NewUser(svc, grpccontext.NewManager(), testutil.MakeNoopLogger())
	_, err := h.GetProfileImage(authedContext(userID, uuid.New()), nil)
	requireCode(t, err, codes.NotFound)
}
