package middleware

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetrics_HandleGRPC(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: "/mediavault.v1.Auth/Login"}
	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	denied := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "nope")
	}

	_, _ = m.HandleGRPC(context.Background(), nil, info, ok)
	_, _ = m.HandleGRPC(context.Background(), nil, info, ok)
	_, _ = m.HandleGRPC(context.Background(), nil, info, denied)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "Unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
