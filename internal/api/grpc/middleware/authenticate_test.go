package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpccontext "github.com/dtroode/mediavault-server/internal/api/grpc/context"
	"github.com/dtroode/mediavault-server/internal/apperrors"
	"github.com/dtroode/mediavault-server/internal/mocks"
	"github.com/dtroode/mediavault-server/internal/model"
	"github.com/dtroode/mediavault-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	session := model.Session{ID: uuid.New(), UserID: uuid.New()}

	tests := []struct {
		name         string
		mdAuthHeader string
		wantBearer   string
		authErr      error
		wantGRPCCode codes.Code
	}{
		{
			name:         "missing authorization header",
			wantBearer:   "",
			authErr:      apperrors.NewErrMissingAuthorizationToken(),
			wantGRPCCode: codes.Unauthenticated,
		},
		{
			name:         "non bearer scheme",
			mdAuthHeader: "Basic dXNlcjpwYXNz",
			wantBearer:   "",
			authErr:      apperrors.NewErrMissingAuthorizationToken(),
			wantGRPCCode: codes.Unauthenticated,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			wantBearer:   "invalid",
			authErr:      apperrors.NewErrInvalidAuthorizationToken(),
			wantGRPCCode: codes.Unauthenticated,
		},
		{
			name:         "store failure",
			mdAuthHeader: "Bearer token",
			wantBearer:   "token",
			authErr:      errors.New("connection refused"),
			wantGRPCCode: codes.Internal,
		},
		{
			name:         "valid token",
			mdAuthHeader: "bearer  token ",
			wantBearer:   "token",
			wantGRPCCode: codes.OK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := grpccontext.NewManager()
			authenticator := mocks.NewAuthenticator(t)
			if tt.authErr != nil {
				authenticator.On("Authenticate", mock.Anything, tt.wantBearer).Return(model.Session{}, tt.authErr)
			} else {
				authenticator.On("Authenticate", mock.Anything, tt.wantBearer).Return(session, nil)
			}
			m := NewAuthenticate(authenticator, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantGRPCCode != codes.OK {
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				assert.Nil(t, newCtx)
				return
			}

			require.NoError(t, err)
			userID, ok := cm.GetUserIDFromContext(newCtx)
			require.True(t, ok)
			assert.Equal(t, session.UserID, userID)

			sessionID, ok := cm.GetSessionIDFromContext(newCtx)
			require.True(t, ok)
			assert.Equal(t, session.ID, sessionID)
		})
	}
}

func TestAuthenticate_OverridesClientIdentity(t *testing.T) {
	t.Parallel()

	session := model.Session{ID: uuid.New(), UserID: uuid.New()}
	cm := grpccontext.NewManager()

	authenticator := mocks.NewAuthenticator(t)
	authenticator.On("Authenticate", mock.Anything, "token").Return(session, nil)
	m := NewAuthenticate(authenticator, cm, testutil.MakeNoopLogger())

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"authorization", "Bearer token",
		"x-auth-user-id", uuid.NewString(),
	))

	newCtx, err := m.AuthFunc(ctx)
	require.NoError(t, err)

	userID, ok := cm.GetUserIDFromContext(newCtx)
	require.True(t, ok)
	assert.Equal(t, session.UserID, userID)
}
