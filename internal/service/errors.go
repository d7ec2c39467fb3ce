package service

import (
	"errors"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/model"
)

// Unique constraints declared by the users migration.
const (
	constraintUserEmail        = "users_email_key"
	constraintUserStorageLabel = "users_storage_label_key"
)

// userConflict converts a unique violation on users into the matching API
// error. It returns nil for any other error.
func userConflict(err error, email string, storageLabel *string) *apperrors.APIError {
	var cv *model.ConstraintViolationError
	if !errors.As(err, &cv) {
		return nil
	}

	switch cv.Constraint {
	case constraintUserEmail:
		return apperrors.NewErrEmailIsTaken(email)
	case constraintUserStorageLabel:
		label := ""
		if storageLabel != nil {
			label = *storageLabel
		}
		return apperrors.NewErrStorageLabelTaken(label)
	default:
		return nil
	}
}
