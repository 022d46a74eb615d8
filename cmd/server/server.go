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

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/hero-planner/internal/clients/sheets"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
	"github.com/KirkDiggler/hero-planner/internal/pkg/clock"
	"github.com/KirkDiggler/hero-planner/internal/redis"
	herocatalog "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog"
	heroprogress "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress"
)

var (
	grpcPort int
	noBot    bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Discord bot and the admin gRPC server",
	Long:  `Connect to Discord, register the slash commands and serve the admin gRPC API until interrupted.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().BoolVar(&noBot, "no-bot", false, "Serve only the admin gRPC API")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if !noBot {
		if err := cfg.ValidateBot(); err != nil {
			return err
		}
	}

	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	heroService, cleanup, err := buildHeroService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)
	if !noBot {
		g.Go(func() error {
			return runBot(gctx, cfg, heroService)
		})
	}
	g.Go(func() error {
		return serveGRPC(gctx, grpcPort, heroService)
	})

	return g.Wait()
}

func newLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.slogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// buildHeroService wires the configured catalog and progress backends
func buildHeroService(ctx context.Context, cfg *Config) (hero.Service, func(), error) {
	cleanup := func() {}

	var redisClient redis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:        10,
			MinIdleConns:    2,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      3,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}
		redisClient = client
		cleanup = func() { _ = client.Close() }
	}

	var sheetsClient sheets.Client
	if cfg.usesSheets() {
		client, err := sheets.New(ctx, &sheets.Config{CredentialsFile: cfg.GoogleCredentialsFile})
		if err != nil {
			cleanup()
			return nil, nil, errors.Wrap(err, "failed to create sheets client")
		}
		sheetsClient = client
	}

	catalog, err := buildCatalog(cfg, sheetsClient, redisClient)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	progress, err := buildProgress(cfg, sheetsClient, redisClient)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := hero.NewOrchestrator(&hero.Config{
		CatalogRepo:    catalog,
		ProgressRepo:   progress,
		StatisticsURL:  cfg.StatisticsURL,
		FilterGuideURL: cfg.FilterGuideURL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	slog.InfoContext(ctx, "hero service ready",
		"catalog", cfg.CatalogSource,
		"catalog_cache", cfg.cachesCatalog(),
		"progress", cfg.ProgressBackend,
	)

	return svc, cleanup, nil
}

func buildCatalog(cfg *Config, sheetsClient sheets.Client, redisClient redis.Client) (herocatalog.Repository, error) {
	var (
		catalog herocatalog.Repository
		err     error
	)
	switch cfg.CatalogSource {
	case CatalogSourceFile:
		catalog, err = herocatalog.NewFile(&herocatalog.FileConfig{Path: cfg.CatalogFile})
	default:
		catalog, err = herocatalog.NewSheets(&herocatalog.SheetsConfig{
			Client:                sheetsClient,
			PlannerSpreadsheetID:  cfg.PlannerSpreadsheetID,
			HeroDataSpreadsheetID: cfg.HeroDataSpreadsheetID,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hero catalog")
	}

	if !cfg.cachesCatalog() {
		return catalog, nil
	}
	cached, err := herocatalog.NewCache(&herocatalog.CacheConfig{
		Source: catalog,
		Client: redisClient,
		TTL:    cfg.CatalogCacheTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hero catalog cache")
	}
	return cached, nil
}

func buildProgress(cfg *Config, sheetsClient sheets.Client, redisClient redis.Client) (heroprogress.Repository, error) {
	var (
		progress heroprogress.Repository
		err      error
	)
	switch cfg.ProgressBackend {
	case ProgressBackendRedis:
		progress, err = heroprogress.NewRedis(&heroprogress.RedisConfig{
			Client: redisClient,
			Clock:  clock.New(),
		})
	default:
		progress, err = heroprogress.NewSheets(&heroprogress.SheetsConfig{
			Client:        sheetsClient,
			SpreadsheetID: cfg.PlannerSpreadsheetID,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create progress store")
	}
	return progress, nil
}

// serveGRPC runs the admin API until ctx is done
func serveGRPC(ctx context.Context, port int, heroService hero.Service) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recovery := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	plannerHandler, err := v1alpha1.NewPlannerHandler(&v1alpha1.PlannerHandlerConfig{
		HeroService: heroService,
	})
	if err != nil {
		return fmt.Errorf("failed to create planner handler: %w", err)
	}
	v1alpha1.RegisterPlannerServiceServer(srv, plannerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.PlannerServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting", "port", port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("gRPC server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
