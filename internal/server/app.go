// Package server wires the tokenkeeper components together and runs the
// gRPC and metrics endpoints until the context is canceled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/config"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/keys"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/reuse"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/tokenkeeper/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	redis    *redis.Client
	grpc     *gs.GRPCServer
	registry *prometheus.Registry
}

func newRepositoryManager(ctx context.Context, c *config.Config, l logging.Logger) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == config.MemoryDSN {
		l.Warn(ctx, "using in-memory storage, state is lost on restart")
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN, l)
}

// NewApp builds every component from c. Storage is opened and migrated
// here, so a failure means the server must not start.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := newRepositoryManager(ctx, c, logger.With("module", "storage"))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	provider, err := keys.NewProvider(c.SigningKey, c.SigningAlgorithm, c.Issuer)
	if err != nil {
		repos.Close()
		return nil, err
	}
	issuer := auth.NewIssuer(provider)

	app := &App{config: c, logger: logger, repos: repos}

	opts := []services.TokenOption{services.WithLogger(logger.With("module", "tokens"))}
	if c.RedisAddr != "" && c.ReuseCascadeThreshold > 0 {
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		opts = append(opts, services.WithReuseDetector(reuse.NewRedisDetector(app.redis, c.ReuseCascadeThreshold, c.ReuseWindow)))
	}

	tokens := services.NewTokenService(repos, issuer, c.AccessTokenTTL, c.RefreshTokenTTL, opts...)
	users, err := services.NewUserService(repos, tokens, services.WithUserLogger(logger.With("module", "users")))
	if err != nil {
		app.Close()
		return nil, err
	}

	app.registry = prometheus.NewRegistry()
	metrics.Initialize(app.registry)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger.With("module", "grpc"), users, tokens, issuer)
	return app, nil
}

// Close releases storage and the Redis client.
func (app *App) Close() error {
	var errs []error
	if app.redis != nil {
		errs = append(errs, app.redis.Close())
	}
	errs = append(errs, app.repos.Close())
	return errors.Join(errs...)
}

func (app *App) serveMetrics(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           metrics.Handler(app.registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "metrics endpoint started", "address", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves gRPC and, when configured, metrics. It returns once ctx is
// canceled or either endpoint fails; a failing endpoint stops the other.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")
	defer app.Close()

	var metricsLis net.Listener
	if app.config.MetricsAddr != "" {
		lis, err := net.Listen("tcp", app.config.MetricsAddr)
		if err != nil {
			return fmt.Errorf("metrics listen error: %w", err)
		}
		metricsLis = lis
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.grpc.Run(ctx)
	})

	if metricsLis != nil {
		g.Go(func() error {
			return app.serveMetrics(ctx, metricsLis)
		})
	}

	err := g.Wait()
	app.logger.Info(context.Background(), "app stopped")
	return err
}
