package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullable(t *testing.T) {
	t.Parallel()

	var unset Nullable[int64]
	assert.False(t, unset.Set)
	assert.Nil(t, unset.Ptr())

	null := Null[int64]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
	assert.Nil(t, null.Ptr())

	v := NewNullable[int64](42)
	if assert.NotNil(t, v.Ptr()) {
		assert.Equal(t, int64(42), *v.Ptr())
	}
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, UserUpdate{}.IsEmpty())
	assert.False(t, UserUpdate{StorageLabel: Null[string]()}.IsEmpty())

	name := "n"
	assert.False(t, UserUpdate{Name: &name}.IsEmpty())
}

func TestConstraintViolationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key")
	err := error(&ConstraintViolationError{Constraint: "users_email_key", Err: cause})

	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "users_email_key")

	var cv *ConstraintViolationError
	assert.ErrorAs(t, err, &cv)
	assert.Equal(t, "users_email_key", cv.Constraint)
}
