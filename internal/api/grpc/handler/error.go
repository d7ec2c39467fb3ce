package handler

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/model"
)

func handleError(err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return validationStatus(verr)
	}

	if apiErr, ok := apperrors.As(err); ok {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "resource not found")
	case errors.Is(err, model.ErrConstraintViolation):
		return status.Error(codes.AlreadyExists, "resource conflicts with existing data")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// validationStatus reports every failed field as a BadRequest field violation.
func validationStatus(verr *dto.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())

	br := &errdetails.BadRequest{}
	for _, fe := range verr.Errors {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       fe.Field,
			Description: fe.Message,
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
