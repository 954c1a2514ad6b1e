package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/clients/compositor"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/config"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/pkg/clock"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/pkg/idgen"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/redis"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/repositories/spritesheet"
)

var (
	grpcPort      int
	redisAddr     string
	compositorURL string
	definitions   string
	document      string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Build the catalog from the configured sources and serve the sprite service over gRPC.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides config)")
	serverCmd.Flags().StringVar(&compositorURL, "compositor-url", "", "Compositing service base URL (overrides config)")
	addSourceFlags(serverCmd)
}

// addSourceFlags registers the flags that locate the catalog sources
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&definitions, "definitions", "", "Sheet definitions directory (overrides config)")
	cmd.Flags().StringVar(&document, "document", "", "Options document path (overrides config)")
}

// applySourceFlags copies explicitly set source flags onto cfg
func applySourceFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("definitions") {
		cfg.Sources.DefinitionsDir = definitions
	}
	if cmd.Flags().Changed("document") {
		cfg.Sources.Document = document
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySourceFlags(cmd, cfg)
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if redisAddr != "" {
		cfg.Redis.Endpoints = []string{redisAddr}
	}
	if compositorURL != "" {
		cfg.Compositor.BaseURL = compositorURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog := setupLogger(cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The catalog is immutable once built; without it there is nothing to serve.
	cat, report, err := loadCatalog(cfg.Sources)
	if err != nil {
		return err
	}
	slog.Info("Catalog ready",
		"slots", len(cat.SlotNames()),
		"animations", len(cat.Animations()),
		"skipped", len(report.Skipped),
	)

	redisClient, err := redis.Connect(cfg.Redis.Endpoints, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %v: %w", cfg.Redis.Endpoints, err)
	}

	spritesheetRepo, err := spritesheet.NewRedisRepository(&spritesheet.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create spritesheet repository: %w", err)
	}

	compositorClient, err := compositor.New(&compositor.Config{
		BaseURL:      cfg.Compositor.BaseURL,
		HTTPTimeout:  cfg.Compositor.Timeout,
		CacheTTL:     cfg.Compositor.CacheTTL,
		CacheSize:    cfg.Compositor.CacheSize,
		DisableCache: cfg.Compositor.DisableCache,
	})
	if err != nil {
		return fmt.Errorf("failed to create compositor client: %w", err)
	}

	characterService, err := character.NewOrchestrator(&character.Config{
		Catalog:         cat,
		Compositor:      compositorClient,
		SpritesheetRepo: spritesheetRepo,
		IDGenerator:     idgen.NewUUID(cfg.Spritesheet.IDPrefix),
		Roller:          dice.DefaultRoller,
		SpritesheetTTL:  cfg.Spritesheet.TTL,
		MaxAttempts:     cfg.Spritesheet.MaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	spriteHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create sprite handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := interceptorLogger(logger)
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("Recovered from panic", "panic", p)
			return status.Errorf(codes.Internal, "internal error")
		}),
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger, grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger, grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	v1alpha1.RegisterSpriteServiceServer(srv, spriteHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
