package dto

import (
	"github.com/dtroode/mediavault-server/internal/model"
)

// UserUpdateRequest is a self-service profile edit. Nil fields are unchanged.
type UserUpdateRequest struct {
	Email *string `json:"email" validate:"omitnil,email_notld"`
	// Password is kept for clients that have not moved to ChangePassword.
	Password *string `json:"password" validate:"omitnil,min=1,password_len"`
	Name     *string `json:"name" validate:"omitnil,min=1"`
}

// UserSearchFilter narrows an administrative user listing.
type UserSearchFilter struct {
	WithDeleted *bool `json:"withDeleted"`
}

// UserAdminCreateRequest creates an account on behalf of an admin.
type UserAdminCreateRequest struct {
	Email                string                 `json:"email" validate:"email_notld"`
	Password             string                 `json:"password" validate:"min=1,password_len"`
	Name                 string                 `json:"name" validate:"min=1"`
	StorageLabel         model.Nullable[string] `json:"storageLabel" validate:"-"`
	QuotaSizeInBytes     model.Nullable[int64]  `json:"quotaSizeInBytes" validate:"-"`
	ShouldChangePassword *bool                  `json:"shouldChangePassword"`
	Notify               *bool                  `json:"notify"`
}

// UserAdminUpdateRequest is a partial administrative edit.
type UserAdminUpdateRequest struct {
	Email                *string                `json:"email" validate:"omitnil,email_notld"`
	Password             *string                `json:"password" validate:"omitnil,min=1,password_len"`
	Name                 *string                `json:"name" validate:"omitnil,min=1"`
	StorageLabel         model.Nullable[string] `json:"storageLabel" validate:"-"`
	QuotaSizeInBytes     model.Nullable[int64]  `json:"quotaSizeInBytes" validate:"-"`
	ShouldChangePassword *bool                  `json:"shouldChangePassword"`
}

// UserAdminDeleteRequest controls how an account is removed.
type UserAdminDeleteRequest struct {
	Force *bool `json:"force"`
}

// UserPreferencesUpdateRequest changes the caller's preference overrides.
type UserPreferencesUpdateRequest struct {
	AvatarColor *model.AvatarColor
}

// ValidateUserUpdate validates a self-service profile edit.
func ValidateUserUpdate(input map[string]any) (UserUpdateRequest, error) {
	f := newFields(input)
	req := UserUpdateRequest{
		Email:    f.optionalString("email", ToEmail),
		Password: f.optionalString("password", nil),
		Name:     f.optionalString("name", nil),
	}

	if err := checkStruct(req, f.errs); err != nil {
		return UserUpdateRequest{}, err
	}
	return req, nil
}

// ValidateUserAdminSearch validates admin user listing filters.
func ValidateUserAdminSearch(input map[string]any) (UserSearchFilter, error) {
	f := newFields(input)
	req := UserSearchFilter{
		WithDeleted: f.optionalBool("withDeleted", true),
	}

	if err := f.errs.errOrNil(); err != nil {
		return UserSearchFilter{}, err
	}
	return req, nil
}

// IncludeDeleted reports whether soft-deleted users should be listed.
func (s UserSearchFilter) IncludeDeleted() bool {
	return s.WithDeleted != nil && *s.WithDeleted
}

// ValidateUserAdminCreate validates an administrative account creation.
func ValidateUserAdminCreate(input map[string]any) (UserAdminCreateRequest, error) {
	f := newFields(input)
	req := UserAdminCreateRequest{
		Email:                f.requiredString("email", ToEmail),
		Password:             f.requiredString("password", nil),
		Name:                 f.requiredString("name", nil),
		StorageLabel:         f.nullableString("storageLabel", ToSanitized),
		QuotaSizeInBytes:     f.nullableInt64("quotaSizeInBytes"),
		ShouldChangePassword: f.optionalBool("shouldChangePassword", true),
		Notify:               f.optionalBool("notify", false),
	}

	if err := checkStruct(req, f.errs); err != nil {
		return UserAdminCreateRequest{}, err
	}
	return req, nil
}

// ValidateUserAdminUpdate validates a partial administrative account edit.
// An empty payload is a valid no-op.
func ValidateUserAdminUpdate(input map[string]any) (UserAdminUpdateRequest, error) {
	f := newFields(input)
	req := UserAdminUpdateRequest{
		Email:                f.optionalString("email", ToEmail),
		Password:             f.optionalString("password", nil),
		Name:                 f.optionalString("name", nil),
		StorageLabel:         f.nullableString("storageLabel", ToSanitized),
		QuotaSizeInBytes:     f.nullableInt64("quotaSizeInBytes"),
		ShouldChangePassword: f.optionalBool("shouldChangePassword", true),
	}

	if err := checkStruct(req, f.errs); err != nil {
		return UserAdminUpdateRequest{}, err
	}
	return req, nil
}

// ValidateUserAdminDelete validates account removal options.
func ValidateUserAdminDelete(input map[string]any) (UserAdminDeleteRequest, error) {
	f := newFields(input)
	req := UserAdminDeleteRequest{
		Force: f.optionalBool("force", true),
	}

	if err := f.errs.errOrNil(); err != nil {
		return UserAdminDeleteRequest{}, err
	}
	return req, nil
}

// IsForce reports whether the account must be removed permanently.
func (r UserAdminDeleteRequest) IsForce() bool {
	return r.Force != nil && *r.Force
}

// ValidateUserPreferencesUpdate validates {"avatar": {"color": ...}}.
func ValidateUserPreferencesUpdate(input map[string]any) (UserPreferencesUpdateRequest, error) {
	f := newFields(input)
	var req UserPreferencesUpdateRequest

	if avatar := f.optionalObject("avatar"); avatar != nil {
		nested := fields{raw: avatar, errs: &ValidationError{}}
		if color := nested.optionalString("color", nil); color != nil {
			c := model.AvatarColor(*color)
			if c.Valid() {
				req.AvatarColor = &c
			} else {
				f.errs.Add("avatar.color", "%s", constraintMessageFor("avatar.color", "avatar_color", ""))
			}
		}
		for _, fe := range nested.errs.Errors {
			f.errs.Add("avatar."+fe.Field, "avatar.%s", fe.Message)
		}
	}

	if err := f.errs.errOrNil(); err != nil {
		return UserPreferencesUpdateRequest{}, err
	}
	return req, nil
}
