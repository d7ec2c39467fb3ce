package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/mediavault-server/internal/api/grpc/context"
	"github.com/dtroode/mediavault-server/internal/api/grpc/middleware"
	"github.com/dtroode/mediavault-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/mediavault-server/internal/api/grpc/server"
	"github.com/dtroode/mediavault-server/internal/api/ops"
	"github.com/dtroode/mediavault-server/internal/config"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
	"github.com/dtroode/mediavault-server/internal/password"
	"github.com/dtroode/mediavault-server/internal/repository/postgres"
	"github.com/dtroode/mediavault-server/internal/server"
	"github.com/dtroode/mediavault-server/internal/service"
	storage "github.com/dtroode/mediavault-server/internal/storage/minio"
	"github.com/dtroode/mediavault-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	checkpointRepo := postgres.NewSyncCheckpointRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt(cfg.Password.Cost)

	profileImages, err := storage.Dial(ctx, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, sessionRepo, tokenManager, hasher, logger)
	userService := service.NewUser(userRepo, hasher, profileImages, logger)
	userAdminService := service.NewUserAdmin(userRepo, hasher, profileImages, logger)
	sessionService := service.NewSession(sessionRepo, checkpointRepo, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		logger.Fatal("failed to register metrics", "error", err)
	}

	services := router.Services{
		Auth:          authService,
		Authenticator: authService,
		User:          userService,
		AdminChecker:  userService,
		UserAdmin:     userAdminService,
		Session:       sessionService,
	}

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{
			server: registerGRPCServer(logger, services, grpcctx.NewManager(), metrics, fmt.Sprintf(":%s", cfg.GRPC.Port)),
			layer:  server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		},
		{
			server: ops.NewServer(fmt.Sprintf(":%s", cfg.HTTP.Port), db, registry, logger),
			layer:  server.NewPlainListener(),
		},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	services router.Services,
	ctxMgr model.ContextManager,
	metrics *middleware.Metrics,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(services, ctxMgr, metrics, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
