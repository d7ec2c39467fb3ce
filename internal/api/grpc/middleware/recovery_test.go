package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mediavault-server/internal/testutil"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	interceptor := NewRecovery(testutil.MakeNoopLogger())
	info := &grpc.UnaryServerInfo{FullMethod: "/mediavault.v1.Users/GetMyUser"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		panic("nil map write")
	})
	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))

	resp, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
