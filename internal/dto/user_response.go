package dto

import (
	"time"

	"github.com/dtroode/mediavault-server/internal/model"
)

// timeLayout renders timestamps as ISO-8601 in UTC with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// UserResponse is the self-service view of an account.
type UserResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	ProfileImagePath string            `json:"profileImagePath"`
	AvatarColor      model.AvatarColor `json:"avatarColor"`
}

// UserAdminResponse is the administrative view of an account.
type UserAdminResponse struct {
	UserResponse
	StorageLabel         *string `json:"storageLabel"`
	ShouldChangePassword bool    `json:"shouldChangePassword"`
	IsAdmin              bool    `json:"isAdmin"`
	CreatedAt            string  `json:"createdAt"`
	DeletedAt            *string `json:"deletedAt"`
	UpdatedAt            string  `json:"updatedAt"`
	OAuthID              string  `json:"oauthId"`
	QuotaSizeInBytes     *int64  `json:"quotaSizeInBytes"`
	QuotaUsageInBytes    *int64  `json:"quotaUsageInBytes"`
	Status               string  `json:"status"`
}

// UserPreferencesResponse is the effective preference set of a user.
type UserPreferencesResponse struct {
	Avatar AvatarPreferencesResponse `json:"avatar"`
}

// AvatarPreferencesResponse is the avatar part of UserPreferencesResponse.
type AvatarPreferencesResponse struct {
	Color model.AvatarColor `json:"color"`
}

// MapUser projects user into the self-service view.
func MapUser(user model.User) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		Email:            user.Email,
		ProfileImagePath: user.ProfileImagePath,
		AvatarColor:      model.GetPreferences(user).Avatar.Color,
	}
}

// MapUserAdmin projects user into the administrative view. Callers must
// have checked that the requester is an admin.
func MapUserAdmin(user model.User) UserAdminResponse {
	return UserAdminResponse{
		UserResponse:         MapUser(user),
		StorageLabel:         copyPtr(user.StorageLabel),
		ShouldChangePassword: user.ShouldChangePassword,
		IsAdmin:              user.IsAdmin,
		CreatedAt:            formatTime(user.CreatedAt),
		DeletedAt:            formatTimePtr(user.DeletedAt),
		UpdatedAt:            formatTime(user.UpdatedAt),
		OAuthID:              user.OAuthID,
		QuotaSizeInBytes:     copyPtr(user.QuotaSizeInBytes),
		QuotaUsageInBytes:    copyPtr(user.QuotaUsageInBytes),
		Status:               string(user.Status),
	}
}

// MapUserPreferences projects the effective preferences of user.
func MapUserPreferences(user model.User) UserPreferencesResponse {
	prefs := model.GetPreferences(user)
	return UserPreferencesResponse{
		Avatar: AvatarPreferencesResponse{Color: prefs.Avatar.Color},
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
