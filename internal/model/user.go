package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID, withDeleted bool) (User, error)
	GetByEmail(ctx context.Context, email string, withDeleted bool) (User, error)
	GetByStorageLabel(ctx context.Context, storageLabel string) (User, error)
	HasAdmin(ctx context.Context) (bool, error)
	List(ctx context.Context, withDeleted bool) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (User, error)
	Restore(ctx context.Context, id uuid.UUID) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertMetadata(ctx context.Context, metadata UserMetadata) error
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	// UserStatusActive is a usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusRemoving is an account whose data is being purged.
	UserStatusRemoving UserStatus = "removing"
	// UserStatusDeleted is a soft-deleted account.
	UserStatusDeleted UserStatus = "deleted"
)

// User represents a stored account.
type User struct {
	ID                   uuid.UUID
	Email                string
	Name                 string
	Password             string
	ProfileImagePath     string
	IsAdmin              bool
	ShouldChangePassword bool
	OAuthID              string
	StorageLabel         *string
	QuotaSizeInBytes     *int64
	QuotaUsageInBytes    *int64
	Status               UserStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
	Metadata             []UserMetadata
}

// UserUpdate is a partial update of a user row. Nil pointers and unset
// Nullable fields are left untouched.
type UserUpdate struct {
	Email                *string
	Name                 *string
	Password             *string
	ProfileImagePath     *string
	ShouldChangePassword *bool
	StorageLabel         Nullable[string]
	QuotaSizeInBytes     Nullable[int64]
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.Password == nil && u.ProfileImagePath == nil &&
		u.ShouldChangePassword == nil && !u.StorageLabel.Set && !u.QuotaSizeInBytes.Set
}

// UserMetadataKey names a per-user metadata document.
type UserMetadataKey string

// UserMetadataKeyPreferences holds the user's preference overrides.
const UserMetadataKeyPreferences UserMetadataKey = "preferences"

// UserMetadata is a JSON document attached to a user.
type UserMetadata struct {
	UserID uuid.UUID
	Key    UserMetadataKey
	Value  json.RawMessage
}
