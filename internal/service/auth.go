package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	hasher       model.PasswordHasher
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		logger:       logger,
		now:          time.Now,
	}
}

// hashToken is the form of a bearer token kept in the sessions table.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login checks credentials and opens a new session for the device.
func (a *Auth) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", req.Email)

	user, err := a.userStore.GetByEmail(ctx, req.Email, false)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown email",
				"email", req.Email)
			return dto.LoginResponse{}, apperrors.NewErrInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", req.Email,
			"error", err.Error())
		return dto.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(user.Password, req.Password) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return dto.LoginResponse{}, apperrors.NewErrInvalidCredentials()
	}

	token, err := a.createSession(ctx, user.ID, req.DeviceType, req.DeviceOS)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return dto.MapLogin(user, token), nil
}

func (a *Auth) createSession(ctx context.Context, userID uuid.UUID, deviceType, deviceOS string) (string, error) {
	sessionID := uuid.New()

	token, err := a.tokenManager.GenerateSessionToken(sessionID, userID)
	if err != nil {
		a.logger.Error("Auth service: failed to generate session token",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	_, err = a.sessionStore.Create(ctx, model.Session{
		ID:         sessionID,
		Token:      hashToken(token),
		UserID:     userID,
		DeviceType: deviceType,
		DeviceOS:   deviceOS,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Logout ends the session the request was authenticated with.
func (a *Auth) Logout(ctx context.Context, sessionID uuid.UUID) error {
	err := a.sessionStore.Delete(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperrors.NewErrSessionNotFound(sessionID.String())
		}
		a.logger.Error("Auth service: failed to delete session",
			"session_id", sessionID,
			"error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}

	a.logger.Info("Auth service: session closed",
		"session_id", sessionID)
	return nil
}

// ChangePassword replaces the password after verifying the current one and
// clears the should-change-password flag.
func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) (dto.UserAdminResponse, error) {
	user, err := a.userStore.GetByID(ctx, userID, false)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.UserAdminResponse{}, apperrors.NewErrUserNotFound(userID.String())
		}
		return dto.UserAdminResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !a.hasher.Compare(user.Password, req.Password) {
		a.logger.Info("Auth service: wrong current password on change",
			"user_id", userID)
		return dto.UserAdminResponse{}, apperrors.NewErrWrongPassword()
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return dto.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	shouldChange := false
	updated, err := a.userStore.Update(ctx, userID, model.UserUpdate{
		Password:             &hash,
		ShouldChangePassword: &shouldChange,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to update password",
			"user_id", userID,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID)
	return dto.MapUserAdmin(updated), nil
}

// AdminSignUp creates the first administrator. It fails once any admin exists.
func (a *Auth) AdminSignUp(ctx context.Context, req dto.SignUpRequest) (dto.UserAdminResponse, error) {
	hasAdmin, err := a.userStore.HasAdmin(ctx)
	if err != nil {
		return dto.UserAdminResponse{}, fmt.Errorf("failed to check admin existence: %w", err)
	}
	if hasAdmin {
		a.logger.Info("Auth service: admin sign up rejected, admin exists")
		return dto.UserAdminResponse{}, apperrors.NewErrAdminAlreadyExists()
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return dto.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := a.userStore.Create(ctx, model.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: hash,
		IsAdmin:  true,
		Status:   model.UserStatusActive,
	})
	if err != nil {
		if conflict := userConflict(err, req.Email, nil); conflict != nil {
			return dto.UserAdminResponse{}, conflict
		}
		a.logger.Error("Auth service: failed to create admin",
			"email", req.Email,
			"error", err.Error())
		return dto.UserAdminResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	a.logger.Info("Auth service: admin signed up",
		"user_id", admin.ID)
	return dto.MapUserAdmin(admin), nil
}

// Authenticate resolves a bearer token to its session. The returned session
// never carries the token hash.
func (a *Auth) Authenticate(ctx context.Context, bearer string) (model.Session, error) {
	if bearer == "" {
		return model.Session{}, apperrors.NewErrMissingAuthorizationToken()
	}

	sessionID, userID, err := a.tokenManager.ParseSessionToken(bearer)
	if err != nil {
		a.logger.Debug("Auth service: rejected bearer token",
			"error", err.Error())
		return model.Session{}, apperrors.NewErrInvalidAuthorizationToken()
	}

	session, err := a.sessionStore.GetByIDWithToken(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, apperrors.NewErrInvalidAuthorizationToken()
		}
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	if session.UserID != userID ||
		subtle.ConstantTimeCompare([]byte(session.Token), []byte(hashToken(bearer))) != 1 {
		a.logger.Info("Auth service: bearer token does not match session",
			"session_id", sessionID)
		return model.Session{}, apperrors.NewErrInvalidAuthorizationToken()
	}
	session.Token = ""

	now := a.now()
	if now.Sub(session.UpdatedAt) > model.SessionTouchInterval {
		if err := a.sessionStore.Touch(ctx, session.ID); err != nil {
			a.logger.Warn("Auth service: failed to refresh session activity",
				"session_id", session.ID,
				"error", err.Error())
		} else {
			session.UpdatedAt = now
		}
	}

	return session, nil
}
