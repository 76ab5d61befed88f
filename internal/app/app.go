package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/vetrivel962969-dotcom/Paperid/internal/artwork"
	"github.com/vetrivel962969-dotcom/Paperid/internal/email"
	"go.uber.org/zap"
)

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

var defaultServerConfig = ServerConfig{
	ReadTimeout:     5 * time.Second,
	WriteTimeout:    10 * time.Second,
	IdleTimeout:     60 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

type App struct {
	cfg     Config
	logger  *zap.Logger
	backend *Backend
	router  *gin.Engine
	rdb     *redis.Client
	writer  *kafka.Writer
	mailer  email.Service
}

// Build connects the optional infrastructure and wires every module.
// Redis and Kafka are used only when their addresses are configured.
func Build(ctx context.Context, cfg Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	// 1. Setup Infrastructure
	if cfg.RedisAddr != "" {
		rdb, err := ConnectRedisWithRetry(ctx, cfg.RedisAddr, 5, logger)
		if err != nil {
			return nil, err
		}
		a.rdb = rdb
	}

	if cfg.KafkaBroker != "" {
		writer, err := ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, cfg.KafkaTopic, 5, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.writer = writer
	}

	// 2. Setup Third Party Services
	store, err := NewArtworkStore(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.mailer = email.NewNoopService()
	if cfg.Email.Enabled() {
		mailer, err := email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.From, "")
		if err != nil {
			a.Close()
			return nil, err
		}
		a.mailer = mailer
	}

	// 3. Register Modules & Routes
	a.backend = NewBackend(BackendDeps{
		Redis:        a.rdb,
		ArtworkStore: store,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		Logger:       logger,
	})
	a.router = NewRouter(a.backend, cfg, a.rdb, logger)

	return a, nil
}

// NewArtworkStore uploads to Cloudinary when it is configured and falls
// back to inline data URIs otherwise.
func NewArtworkStore(cfg Config) (artwork.Store, error) {
	if !cfg.Cloudinary.Enabled() {
		return artwork.InlineStore{}, nil
	}
	cld, err := artwork.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, err
	}
	return cld, nil
}

func (a *App) Router() *gin.Engine { return a.router }

func (a *App) Backend() *Backend { return a.backend }

// Run serves HTTP and the kafka loops until ctx is cancelled, then shuts
// everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	bgCtx, stopBackground := context.WithCancel(ctx)
	var wg sync.WaitGroup
	a.startOutboxWorker(bgCtx, &wg)
	a.startStatusConsumer(bgCtx, &wg)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.router,
		ReadTimeout:  defaultServerConfig.ReadTimeout,
		WriteTimeout: defaultServerConfig.WriteTimeout,
		IdleTimeout:  defaultServerConfig.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultServerConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown failed", zap.Error(err))
	}

	stopBackground()
	wg.Wait()
	a.Close()

	a.logger.Info("stopped")
	return serveErr
}

func (a *App) Close() {
	if a.writer != nil {
		if err := a.writer.Close(); err != nil {
			a.logger.Warn("failed to close kafka writer", zap.Error(err))
		}
		a.writer = nil
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
		a.rdb = nil
	}
}
