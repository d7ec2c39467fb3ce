package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/model"
)

// Every RPC exchanges a google.protobuf.Struct holding the JSON body.
type structMethod[S any] func(srv S, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

func unaryMethod[S any](service, method string, call structMethod[S]) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(service, method),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			})
		},
	}
}

// toStruct converts a JSON-tagged response into a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("failed to convert response: %w", err)
	}
	return out, nil
}

func reply(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}

func emptyReply() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}
}

// parseID reads a required UUID field from the request body.
func parseID(input map[string]any, key string) (uuid.UUID, error) {
	raw, _ := input[key].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		verr := &dto.ValidationError{}
		verr.Add(key, "%s must be a UUID", key)
		return uuid.Nil, verr
	}
	return id, nil
}

// identity returns the user and session the request was authenticated as.
func identity(ctx context.Context, cm model.ContextManager) (uuid.UUID, uuid.UUID, error) {
	userID, okUser := cm.GetUserIDFromContext(ctx)
	sessionID, okSession := cm.GetSessionIDFromContext(ctx)
	if !okUser || !okSession {
		return uuid.Nil, uuid.Nil, apperrors.NewErrMissingAuthorizationToken()
	}
	return userID, sessionID, nil
}

func asMap(in *structpb.Struct) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	return in.AsMap()
}

// mergeValidation combines field failures from several validation steps.
func mergeValidation(errs ...error) error {
	merged := &dto.ValidationError{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *dto.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, fe := range verr.Errors {
			merged.Add(fe.Field, "%s", fe.Message)
		}
	}
	if len(merged.Errors) == 0 {
		return nil
	}
	return merged
}
