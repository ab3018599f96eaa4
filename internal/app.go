package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"files-manager-api/config"
	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/services"
	"files-manager-api/internal/infrastructure/cache"
	"files-manager-api/internal/infrastructure/db/postgres"
	"files-manager-api/internal/infrastructure/db/postgres/file"
	"files-manager-api/internal/infrastructure/db/postgres/session"
	"files-manager-api/internal/infrastructure/db/postgres/user"
	"files-manager-api/internal/infrastructure/metrics"
	"files-manager-api/internal/infrastructure/mq"
	"files-manager-api/internal/infrastructure/storage/local"
	"files-manager-api/internal/infrastructure/storage/s3"
	"files-manager-api/internal/interface/api/rest"
	"files-manager-api/internal/interface/api/rest/middleware"
	"files-manager-api/pkg/rmqconsumer"
)

const sessionPurgeInterval = 10 * time.Minute

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	sessions   *session.Store
	content    ports.ContentStore
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}

	// config
	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	migrateDsn, err := cfg.MigrateDSN()
	if err != nil {
		return nil, fmt.Errorf("db config: %w", err)
	}
	if err = postgres.Migrate(logger, migrateDsn); err != nil {
		return nil, err
	}
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("db config: %w", err)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, err
	}

	// content storage
	var content ports.ContentStore
	switch cfg.Storage.Backend {
	case config.StorageS3:
		content, err = s3.New(ctx, logger, cfg.S3)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("s3 storage: %w", err)
		}
	case config.StorageLocal:
		content = local.New(cfg.Storage.FolderPath)
		logger.Info("local content storage ready", zap.String("folder", cfg.Storage.FolderPath))
	default:
		dbPool.Close()
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		sessions: session.NewStore(dbPool),
		content:  content,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
	}

	if !cfg.MQEnabled() {
		logger.Info("rabbitmq disabled, file events are not published")
		return app, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("rabbitmq config: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}
	app.mq = rbMQ
	if err = rbMQ.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("rabbitmq init: %w", err)
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("rabbitmq consumer connect: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("rabbitmq consumer init: %w", err)
	}
	app.mqConsumer = rmqConsumer

	return app, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.sessionPurgeWorker(ctx)
		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) sessionPurgeWorker(ctx context.Context) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := a.sessions.Purge(ctx)
			if err != nil {
				a.logger.Warn("session purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				a.logger.Info("expired sessions purged", zap.Int64("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	fileRepo := file.NewRepository(a.db)
	sessionCache := cache.NewSessionCache(a.sessions, a.cfg.Session.CacheSize, a.cfg.Session.CacheTTL)

	// services
	authService := services.NewAuthService(sessionCache, userRepo, a.cfg.Session.TTL)
	userService := services.NewUserService(userRepo, a.mCounter)
	fileService := services.NewFileService(a.content, fileRepo, a.mq, a.mCounter)
	appService := services.NewAppService(sessionCache, a.db, userRepo, fileRepo)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewUserController(a.router, userService, a.logger, authService)
	rest.NewFileController(a.router, fileService, a.logger, authService)
	rest.NewAppController(a.router, appService, a.logger)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
