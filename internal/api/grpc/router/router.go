package router

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/mediavault-server/internal/api/grpc/handler"
	"github.com/dtroode/mediavault-server/internal/api/grpc/middleware"
	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

// maxMessageSize fits a base64 encoded profile image plus the struct envelope.
var maxMessageSize = base64.StdEncoding.EncodedLen(dto.MaxProfileImageSize) + 1<<20

// Services bundles the application services exposed over gRPC.
type Services struct {
	Auth          handler.AuthService
	Authenticator middleware.Authenticator
	User          handler.UserService
	AdminChecker  middleware.AdminChecker
	UserAdmin     handler.UserAdminService
	Session       handler.SessionService
}

// Router represents a gRPC router for mediavault operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	metrics        *middleware.Metrics
	logger         *logger.Logger
}

// New creates new gRPC Router instance. metrics may be nil.
func New(
	services Services,
	contextManager model.ContextManager,
	metrics *middleware.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
	}
}

var publicMethods = map[string]struct{}{
	handler.AuthLoginMethod:       {},
	handler.AuthAdminSignUpMethod: {},
}

// requiresAuth selects every method except login, first-admin sign-up and health checks.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	if _, ok := publicMethods[c.FullMethod()]; ok {
		return false
	}
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)
	admin := middleware.NewAdmin(r.services.AdminChecker, r.contextManager, r.logger, handler.UsersAdminServiceName)

	unary := []grpc.UnaryServerInterceptor{
		middleware.NewRecovery(r.logger),
		logging.HandleGRPC,
	}
	if r.metrics != nil {
		unary = append(unary, r.metrics.HandleGRPC)
	}
	unary = append(unary,
		selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(requiresAuth),
		),
		admin.HandleGRPC,
	)

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	r.registerAuthRoutes(s)
	r.registerUserRoutes(s)
	r.registerSessionRoutes(s)
	healthpb.RegisterHealthServer(s, health.NewServer())

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.services.Auth, r.contextManager, r.logger)
	handler.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerUserRoutes(server *grpc.Server) {
	userHandler := handler.NewUser(r.services.User, r.contextManager, r.logger)
	handler.RegisterUsersServer(server, userHandler)

	adminHandler := handler.NewUserAdmin(r.services.UserAdmin, r.contextManager, r.logger)
	handler.RegisterUsersAdminServer(server, adminHandler)
}

func (r *Router) registerSessionRoutes(server *grpc.Server) {
	sessionHandler := handler.NewSession(r.services.Session, r.contextManager, r.logger)
	handler.RegisterSessionsServer(server, sessionHandler)
}
