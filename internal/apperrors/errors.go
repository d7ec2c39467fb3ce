// Package apperrors defines errors that are safe to return to API callers.
package apperrors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

// APIError is an error with a caller-facing message and the gRPC code it maps to.
type APIError struct {
	GRPCCode codes.Code
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrUserNotFound(id string) *APIError {
	return &APIError{GRPCCode: codes.NotFound, Message: fmt.Sprintf("user %s not found", id)}
}

func NewErrSessionNotFound(id string) *APIError {
	return &APIError{GRPCCode: codes.NotFound, Message: fmt.Sprintf("session %s not found", id)}
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{GRPCCode: codes.AlreadyExists, Message: fmt.Sprintf("email %s is already taken", email)}
}

func NewErrStorageLabelTaken(label string) *APIError {
	return &APIError{GRPCCode: codes.AlreadyExists, Message: fmt.Sprintf("storage label %s is already taken", label)}
}

func NewErrAdminAlreadyExists() *APIError {
	return &APIError{GRPCCode: codes.FailedPrecondition, Message: "the server already has an admin"}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{GRPCCode: codes.Unauthenticated, Message: "incorrect email or password"}
}

func NewErrWrongPassword() *APIError {
	return &APIError{GRPCCode: codes.InvalidArgument, Message: "wrong password"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{GRPCCode: codes.Unauthenticated, Message: "missing authorization token"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{GRPCCode: codes.Unauthenticated, Message: "invalid authorization token"}
}

func NewErrAdminRequired() *APIError {
	return &APIError{GRPCCode: codes.PermissionDenied, Message: "admin privileges required"}
}

func NewErrCannotDeleteSelf() *APIError {
	return &APIError{GRPCCode: codes.FailedPrecondition, Message: "cannot delete your own account"}
}

func NewErrInvalidArgument(msg string) *APIError {
	return &APIError{GRPCCode: codes.InvalidArgument, Message: msg}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{GRPCCode: codes.Internal, Message: "internal server error", Err: err}
}

func NewErrProfileImageNotFound(userID string) *APIError {
	return &APIError{GRPCCode: codes.NotFound, Message: fmt.Sprintf("user %s has no profile image", userID)}
}
