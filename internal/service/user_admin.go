package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// UserAdmin manages accounts on behalf of an administrator.
type UserAdmin struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

func NewUserAdmin(userStore model.UserStore, hasher model.PasswordHasher, storage model.Storage, logger *logger.Logger) *UserAdmin {
	return &UserAdmin{
		userStore: userStore,
		hasher:    hasher,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *UserAdmin) Search(ctx context.Context, filter dto.UserSearchFilter) ([]dto.UserAdminResponse, error) {
	users, err := s.userStore.List(ctx, filter.IncludeDeleted())
	if err != nil {
		s.logger.Error("UserAdmin service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := make([]dto.UserAdminResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.MapUserAdmin(u))
	}
	return resp, nil
}

func (s *UserAdmin) findUser(ctx context.Context, id uuid.UUID, withDeleted bool) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id, withDeleted)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperrors.NewErrUserNotFound(id.String())
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *UserAdmin) Get(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error) {
	user, err := s.findUser(ctx, id, true)
	if err != nil {
		return dto.UserAdminResponse{}, err
	}
	return dto.MapUserAdmin(user), nil
}

// storageLabelValue turns a sanitized-to-empty label into an explicit null.
func storageLabelValue(label model.Nullable[string]) model.Nullable[string] {
	if label.Set && label.Valid && label.Value == "" {
		return model.Null[string]()
	}
	return label
}

func (s *UserAdmin) ensureStorageLabelAvailable(ctx context.Context, label model.Nullable[string], self uuid.UUID) error {
	if !label.Set || !label.Valid {
		return nil
	}

	existing, err := s.userStore.GetByStorageLabel(ctx, label.Value)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user by storage label: %w", err)
	}
	if existing.ID != self {
		return apperrors.NewErrStorageLabelTaken(label.Value)
	}
	return nil
}

func (s *UserAdmin) Create(ctx context.Context, req dto.UserAdminCreateRequest) (dto.UserAdminResponse, error) {
	label := storageLabelValue(req.StorageLabel)

	if err := ensureEmailAvailable(ctx, s.userStore, req.Email, uuid.Nil); err != nil {
		return dto.UserAdminResponse{}, err
	}
	if err := s.ensureStorageLabelAvailable(ctx, label, uuid.Nil); err != nil {
		return dto.UserAdminResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return dto.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	shouldChangePassword := true
	if req.ShouldChangePassword != nil {
		shouldChangePassword = *req.ShouldChangePassword
	}

	user, err := s.userStore.Create(ctx, model.User{
		ID:                   uuid.New(),
		Email:                req.Email,
		Name:                 req.Name,
		Password:             hash,
		ShouldChangePassword: shouldChangePassword,
		StorageLabel:         label.Ptr(),
		QuotaSizeInBytes:     req.QuotaSizeInBytes.Ptr(),
		Status:               model.UserStatusActive,
	})
	if err != nil {
		if conflict := userConflict(err, req.Email, label.Ptr()); conflict != nil {
			return dto.UserAdminResponse{}, conflict
		}
		s.logger.Error("UserAdmin service: failed to create user",
			"email", req.Email,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("UserAdmin service: user created",
		"user_id", user.ID)

	if req.Notify != nil && *req.Notify {
		s.logger.Info("UserAdmin service: welcome notification requested",
			"user_id", user.ID,
			"email", user.Email)
	}

	return dto.MapUserAdmin(user), nil
}

func (s *UserAdmin) Update(ctx context.Context, id uuid.UUID, req dto.UserAdminUpdateRequest) (dto.UserAdminResponse, error) {
	user, err := s.findUser(ctx, id, false)
	if err != nil {
		return dto.UserAdminResponse{}, err
	}

	update := model.UserUpdate{
		Name:                 req.Name,
		ShouldChangePassword: req.ShouldChangePassword,
		StorageLabel:         storageLabelValue(req.StorageLabel),
		QuotaSizeInBytes:     req.QuotaSizeInBytes,
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := ensureEmailAvailable(ctx, s.userStore, *req.Email, id); err != nil {
			return dto.UserAdminResponse{}, err
		}
		update.Email = req.Email
	}

	if err := s.ensureStorageLabelAvailable(ctx, update.StorageLabel, id); err != nil {
		return dto.UserAdminResponse{}, err
	}

	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return dto.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		update.Password = &hash
	}

	if update.IsEmpty() {
		return dto.MapUserAdmin(user), nil
	}

	updated, err := s.userStore.Update(ctx, id, update)
	if err != nil {
		email := user.Email
		if update.Email != nil {
			email = *update.Email
		}
		if conflict := userConflict(err, email, update.StorageLabel.Ptr()); conflict != nil {
			return dto.UserAdminResponse{}, conflict
		}
		s.logger.Error("UserAdmin service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("UserAdmin service: user updated",
		"user_id", id)
	return dto.MapUserAdmin(updated), nil
}

// Delete soft-deletes the account, or removes it permanently with force.
// A forced delete also removes sessions (by cascade) and the profile image.
func (s *UserAdmin) Delete(ctx context.Context, actorID, id uuid.UUID, req dto.UserAdminDeleteRequest) (dto.UserAdminResponse, error) {
	if actorID == id {
		return dto.UserAdminResponse{}, apperrors.NewErrCannotDeleteSelf()
	}

	user, err := s.findUser(ctx, id, req.IsForce())
	if err != nil {
		return dto.UserAdminResponse{}, err
	}

	if !req.IsForce() {
		deleted, err := s.userStore.SoftDelete(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return dto.UserAdminResponse{}, apperrors.NewErrUserNotFound(id.String())
			}
			return dto.UserAdminResponse{}, fmt.Errorf("failed to soft delete user: %w", err)
		}
		s.logger.Info("UserAdmin service: user soft deleted",
			"user_id", id)
		return dto.MapUserAdmin(deleted), nil
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.UserAdminResponse{}, apperrors.NewErrUserNotFound(id.String())
		}
		s.logger.Error("UserAdmin service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to delete user: %w", err)
	}

	if user.ProfileImagePath != "" {
		if err := s.storage.Delete(ctx, user.ProfileImagePath); err != nil {
			s.logger.Warn("UserAdmin service: failed to remove profile image object",
				"user_id", id,
				"path", user.ProfileImagePath,
				"error", err.Error())
		}
	}

	s.logger.Info("UserAdmin service: user permanently deleted",
		"user_id", id)

	now := s.now()
	user.Status = model.UserStatusRemoving
	if user.DeletedAt == nil {
		user.DeletedAt = &now
	}
	return dto.MapUserAdmin(user), nil
}

func (s *UserAdmin) Restore(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error) {
	user, err := s.userStore.Restore(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.UserAdminResponse{}, apperrors.NewErrUserNotFound(id.String())
		}
		if conflict := userConflict(err, "", nil); conflict != nil {
			return dto.UserAdminResponse{}, conflict
		}
		return dto.UserAdminResponse{}, fmt.Errorf("failed to restore user: %w", err)
	}

	s.logger.Info("UserAdmin service: user restored",
		"user_id", id)
	return dto.MapUserAdmin(user), nil
}
