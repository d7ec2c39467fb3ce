package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// User serves the authenticated user's own account.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		storage:   storage,
		logger:    logger,
	}
}

func (s *User) findUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID, false)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperrors.NewErrUserNotFound(userID.String())
		}
		s.logger.Error("User service: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// IsAdmin reports whether the user holds admin rights.
func (s *User) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

func (s *User) GetMe(ctx context.Context, userID uuid.UUID) (dto.UserAdminResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.UserAdminResponse{}, err
	}
	return dto.MapUserAdmin(user), nil
}

// UpdateMe applies a self-service edit. An empty edit returns the current user.
func (s *User) UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UserUpdateRequest) (dto.UserAdminResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.UserAdminResponse{}, err
	}

	update := model.UserUpdate{
		Name: req.Name,
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := ensureEmailAvailable(ctx, s.userStore, *req.Email, userID); err != nil {
			return dto.UserAdminResponse{}, err
		}
		update.Email = req.Email
	}

	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return dto.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		shouldChange := false
		update.Password = &hash
		update.ShouldChangePassword = &shouldChange
	}

	if update.IsEmpty() {
		return dto.MapUserAdmin(user), nil
	}

	updated, err := s.userStore.Update(ctx, userID, update)
	if err != nil {
		email := user.Email
		if update.Email != nil {
			email = *update.Email
		}
		if conflict := userConflict(err, email, nil); conflict != nil {
			return dto.UserAdminResponse{}, conflict
		}
		s.logger.Error("User service: failed to update user",
			"user_id", userID,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", userID)
	return dto.MapUserAdmin(updated), nil
}

func (s *User) GetMyPreferences(ctx context.Context, userID uuid.UUID) (dto.UserPreferencesResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.UserPreferencesResponse{}, err
	}
	return dto.MapUserPreferences(user), nil
}

// UpdateMyPreferences stores the given overrides on top of the existing ones.
func (s *User) UpdateMyPreferences(ctx context.Context, userID uuid.UUID, req dto.UserPreferencesUpdateRequest) (dto.UserPreferencesResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.UserPreferencesResponse{}, err
	}

	overrides := map[string]any{}
	idx := -1
	for i, md := range user.Metadata {
		if md.Key == model.UserMetadataKeyPreferences {
			idx = i
			if err := json.Unmarshal(md.Value, &overrides); err != nil {
				s.logger.Warn("User service: discarding malformed preferences",
					"user_id", userID,
					"error", err.Error())
				overrides = map[string]any{}
			}
		}
	}

	if req.AvatarColor != nil {
		avatar, _ := overrides["avatar"].(map[string]any)
		if avatar == nil {
			avatar = map[string]any{}
		}
		avatar["color"] = string(*req.AvatarColor)
		overrides["avatar"] = avatar
	}

	value, err := json.Marshal(overrides)
	if err != nil {
		return dto.UserPreferencesResponse{}, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	md := model.UserMetadata{UserID: userID, Key: model.UserMetadataKeyPreferences, Value: value}
	if err := s.userStore.UpsertMetadata(ctx, md); err != nil {
		s.logger.Error("User service: failed to save preferences",
			"user_id", userID,
			"error", err.Error())
		return dto.UserPreferencesResponse{}, fmt.Errorf("failed to save preferences: %w", err)
	}

	if idx >= 0 {
		user.Metadata[idx] = md
	} else {
		user.Metadata = append(user.Metadata, md)
	}

	return dto.MapUserPreferences(user), nil
}

var profileImageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func profileImageKey(userID uuid.UUID, contentType string) string {
	return path.Join("profile", userID.String(), uuid.NewString()+profileImageExt[contentType])
}

// CreateProfileImage uploads a new profile image and drops the previous one.
func (s *User) CreateProfileImage(ctx context.Context, userID uuid.UUID, req dto.ProfileImageUploadRequest) (dto.ProfileImageResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.ProfileImageResponse{}, err
	}

	key := profileImageKey(userID, req.ContentType)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(req.Data), int64(len(req.Data)), req.ContentType); err != nil {
		s.logger.Error("User service: failed to upload profile image",
			"user_id", userID,
			"error", err.Error())
		return dto.ProfileImageResponse{}, fmt.Errorf("failed to upload profile image: %w", err)
	}

	if _, err := s.userStore.Update(ctx, userID, model.UserUpdate{ProfileImagePath: &key}); err != nil {
		s.removeObject(ctx, userID, key)
		return dto.ProfileImageResponse{}, fmt.Errorf("failed to set profile image: %w", err)
	}

	if user.ProfileImagePath != "" {
		s.removeObject(ctx, userID, user.ProfileImagePath)
	}

	s.logger.Info("User service: profile image updated",
		"user_id", userID,
		"path", key)
	return dto.MapProfileImage(userID, key), nil
}

func (s *User) GetProfileImage(ctx context.Context, userID uuid.UUID) (dto.ProfileImageDataResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return dto.ProfileImageDataResponse{}, err
	}
	if user.ProfileImagePath == "" {
		return dto.ProfileImageDataResponse{}, apperrors.NewErrProfileImageNotFound(userID.String())
	}

	rc, err := s.storage.Download(ctx, user.ProfileImagePath)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.ProfileImageDataResponse{}, apperrors.NewErrProfileImageNotFound(userID.String())
		}
		return dto.ProfileImageDataResponse{}, fmt.Errorf("failed to download profile image: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, dto.MaxProfileImageSize+1))
	if err != nil {
		return dto.ProfileImageDataResponse{}, fmt.Errorf("failed to read profile image: %w", err)
	}

	contentType := "application/octet-stream"
	for ct, ext := range profileImageExt {
		if path.Ext(user.ProfileImagePath) == ext {
			contentType = ct
		}
	}

	return dto.MapProfileImageData(contentType, data), nil
}

func (s *User) DeleteProfileImage(ctx context.Context, userID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.ProfileImagePath == "" {
		return apperrors.NewErrProfileImageNotFound(userID.String())
	}

	empty := ""
	if _, err := s.userStore.Update(ctx, userID, model.UserUpdate{ProfileImagePath: &empty}); err != nil {
		return fmt.Errorf("failed to clear profile image: %w", err)
	}
	s.removeObject(ctx, userID, user.ProfileImagePath)

	s.logger.Info("User service: profile image removed",
		"user_id", userID)
	return nil
}

// removeObject deletes a stored object. Failures leave an orphan and are only logged.
func (s *User) removeObject(ctx context.Context, userID uuid.UUID, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("User service: failed to remove profile image object",
			"user_id", userID,
			"path", key,
			"error", err.Error())
	}
}

// ensureEmailAvailable fails when another account, deleted or not, holds email.
func ensureEmailAvailable(ctx context.Context, store model.UserStore, email string, self uuid.UUID) error {
	existing, err := store.GetByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != self {
		return apperrors.NewErrEmailIsTaken(email)
	}
	return nil
}
