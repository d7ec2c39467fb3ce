package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/mediavault-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, name, password, profile_image_path, is_admin, should_change_password, oauth_id,
	storage_label, quota_size_in_bytes, quota_usage_in_bytes, status, created_at, updated_at, deleted_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		user   model.User
		status string
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Password, &user.ProfileImagePath, &user.IsAdmin,
		&user.ShouldChangePassword, &user.OAuthID, &user.StorageLabel, &user.QuotaSizeInBytes,
		&user.QuotaUsageInBytes, &status, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	user.Status = model.UserStatus(status)
	return user, err
}

func deletedFilter(withDeleted bool) string {
	if withDeleted {
		return ""
	}
	return " AND deleted_at IS NULL"
}

func (r *UserRepository) getOne(ctx context.Context, what, query string, args ...any) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", what, err)
	}

	if err := r.attachMetadata(ctx, []*model.User{&user}); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID, withDeleted bool) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1` + deletedFilter(withDeleted)
	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string, withDeleted bool) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1` + deletedFilter(withDeleted)
	return r.getOne(ctx, "email", query, email)
}

func (r *UserRepository) GetByStorageLabel(ctx context.Context, storageLabel string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE storage_label = $1`
	return r.getOne(ctx, "storage label", query, storageLabel)
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE is_admin AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, withDeleted bool) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE TRUE` + deletedFilter(withDeleted) + ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	ptrs := make([]*model.User, len(users))
	for i := range users {
		ptrs[i] = &users[i]
	}
	if err := r.attachMetadata(ctx, ptrs); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, password, profile_image_path, is_admin, should_change_password,
			  oauth_id, storage_label, quota_size_in_bytes, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING ` + userColumns

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.Password, user.ProfileImagePath, user.IsAdmin,
		user.ShouldChangePassword, user.OAuthID, user.StorageLabel, user.QuotaSizeInBytes, string(user.Status),
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", classifyError(err))
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	query, args := buildUserUpdate(id, update)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", classifyError(err))
	}

	if err := r.attachMetadata(ctx, []*model.User{&user}); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// buildUserUpdate renders an UPDATE touching only the fields set in update.
// updated_at is always bumped.
func buildUserUpdate(id uuid.UUID, update model.UserUpdate) (string, []any) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Password != nil {
		set("password", *update.Password)
	}
	if update.ProfileImagePath != nil {
		set("profile_image_path", *update.ProfileImagePath)
	}
	if update.ShouldChangePassword != nil {
		set("should_change_password", *update.ShouldChangePassword)
	}
	if update.StorageLabel.Set {
		set("storage_label", update.StorageLabel.Ptr())
	}
	if update.QuotaSizeInBytes.Set {
		set("quota_size_in_bytes", update.QuotaSizeInBytes.Ptr())
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	return query, args
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET deleted_at = NOW(), status = $2, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, string(model.UserStatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to soft delete user: %w", err)
	}

	if err := r.attachMetadata(ctx, []*model.User{&user}); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Restore(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET deleted_at = NULL, status = $2, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NOT NULL
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, string(model.UserStatusActive)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to restore user: %w", classifyError(err))
	}

	if err := r.attachMetadata(ctx, []*model.User{&user}); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Delete removes the user row. Sessions, their checkpoints and user metadata
// are removed by ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpsertMetadata(ctx context.Context, metadata model.UserMetadata) error {
	const query = `
        INSERT INTO user_metadata (user_id, key, value)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value
    `

	if _, err := r.db.Exec(ctx, query, metadata.UserID, string(metadata.Key), []byte(metadata.Value)); err != nil {
		return fmt.Errorf("failed to upsert user metadata: %w", classifyError(err))
	}
	return nil
}

func (r *UserRepository) attachMetadata(ctx context.Context, users []*model.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(users))
	byID := make(map[uuid.UUID]*model.User, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		byID[u.ID] = u
	}

	const query = `SELECT user_id, key, value FROM user_metadata WHERE user_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to get user metadata: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			md  model.UserMetadata
			key string
		)
		if err := rows.Scan(&md.UserID, &key, &md.Value); err != nil {
			return fmt.Errorf("failed to scan user metadata: %w", err)
		}
		md.Key = model.UserMetadataKey(key)
		if u, ok := byID[md.UserID]; ok {
			u.Metadata = append(u.Metadata, md)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate user metadata: %w", err)
	}

	return nil
}
