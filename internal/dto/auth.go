package dto

import "github.com/dtroode/mediavault-server/internal/model"

// LoginRequest carries credentials and the device opening the session.
type LoginRequest struct {
	Email      string `json:"email" validate:"email_notld"`
	Password   string `json:"password" validate:"min=1"`
	DeviceType string `json:"deviceType" validate:"max=255"`
	DeviceOS   string `json:"deviceOS" validate:"max=255"`
}

// SignUpRequest creates the first admin account.
type SignUpRequest struct {
	Email    string `json:"email" validate:"email_notld"`
	Password string `json:"password" validate:"min=1,password_len"`
	Name     string `json:"name" validate:"min=1"`
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"min=1"`
	NewPassword string `json:"newPassword" validate:"min=8,password_len"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken          string `json:"accessToken"`
	UserID               string `json:"userId"`
	UserEmail            string `json:"userEmail"`
	Name                 string `json:"name"`
	ProfileImagePath     string `json:"profileImagePath"`
	IsAdmin              bool   `json:"isAdmin"`
	ShouldChangePassword bool   `json:"shouldChangePassword"`
}

// ValidateLogin validates login credentials.
func ValidateLogin(input map[string]any) (LoginRequest, error) {
	f := newFields(input)
	req := LoginRequest{
		Email:    f.requiredString("email", ToEmail),
		Password: f.requiredString("password", nil),
	}
	if s := f.optionalString("deviceType", nil); s != nil {
		req.DeviceType = *s
	}
	if s := f.optionalString("deviceOS", nil); s != nil {
		req.DeviceOS = *s
	}

	if err := checkStruct(req, f.errs); err != nil {
		return LoginRequest{}, err
	}
	return req, nil
}

// ValidateAdminSignUp validates the first-admin sign-up payload.
func ValidateAdminSignUp(input map[string]any) (SignUpRequest, error) {
	f := newFields(input)
	req := SignUpRequest{
		Email:    f.requiredString("email", ToEmail),
		Password: f.requiredString("password", nil),
		Name:     f.requiredString("name", nil),
	}

	if err := checkStruct(req, f.errs); err != nil {
		return SignUpRequest{}, err
	}
	return req, nil
}

// ValidateChangePassword validates a password change.
func ValidateChangePassword(input map[string]any) (ChangePasswordRequest, error) {
	f := newFields(input)
	req := ChangePasswordRequest{
		Password:    f.requiredString("password", nil),
		NewPassword: f.requiredString("newPassword", nil),
	}

	if err := checkStruct(req, f.errs); err != nil {
		return ChangePasswordRequest{}, err
	}
	return req, nil
}

// MapLogin builds the login response for user and its new bearer token.
func MapLogin(user model.User, accessToken string) LoginResponse {
	return LoginResponse{
		AccessToken:          accessToken,
		UserID:               user.ID.String(),
		UserEmail:            user.Email,
		Name:                 user.Name,
		ProfileImagePath:     user.ProfileImagePath,
		IsAdmin:              user.IsAdmin,
		ShouldChangePassword: user.ShouldChangePassword,
	}
}
