package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"guide-backend/internal/careers"
	"guide-backend/internal/content"
	"guide-backend/internal/resorts"
	"guide-backend/internal/services/health"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/server"
	"guide-backend/internal/shared/server/middleware"
	"guide-backend/internal/shared/storage/cache"
	"guide-backend/internal/shared/storage/object"
	localstore "guide-backend/internal/shared/storage/object/local"
	s3store "guide-backend/internal/shared/storage/object/s3"
	"guide-backend/internal/shared/telemetry"
	"guide-backend/internal/shoulder"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Bundle          *content.Bundle
	Redis           *cache.Redis
	Limiter         middleware.Limiter
	CareersService  *careers.Service
	ResortsService  *resorts.Service
	ShoulderService *shoulder.Service
	HealthService   *health.Service
	CareersHandler  *careers.Handler
	ResortsHandler  *resorts.Handler
	ShoulderHandler *shoulder.Handler
}

// Build loads content, constructs services and handlers and wires the router.
func Build(cfg config.Config) (*App, error) {
	return BuildContext(context.Background(), cfg)
}

// BuildContext is Build with a caller-supplied context for content loading.
func BuildContext(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	src, err := BuildSource(ctx, cfg.Content, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}
	bundle, err := content.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load content (%s): %w", cfg.Content.Source, err)
	}
	telemetry.Info("content.loaded", map[string]any{
		"source":   cfg.Content.Source,
		"types":    len(bundle.Types),
		"symptoms": len(bundle.Symptoms),
		"resorts":  len(bundle.Resorts),
	})

	app := &App{
		Config:  cfg,
		Bundle:  bundle,
		Limiter: middleware.NewRateLimiter(nil),
	}
	if addr := strings.TrimSpace(cfg.Redis.Addr); addr != "" {
		app.Redis = cache.NewRedis(cfg.Redis)
		if err := app.Redis.Ping(ctx); err != nil {
			telemetry.Warn("redis.unreachable", map[string]any{"addr": addr, "error": err})
		}
		app.Limiter = middleware.NewRedisRateLimiter(app.Redis.Client)
	}

	buildServices(app)

	var pinger health.Pinger
	if app.Redis != nil {
		pinger = app.Redis
	}
	app.HealthService = health.NewService(bundle, pinger)

	router, err := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Limiter:         app.Limiter,
		Health:          app.HealthService,
		CareersHandler:  app.CareersHandler,
		ResortsHandler:  app.ResortsHandler,
		ShoulderHandler: app.ShoulderHandler,
	})
	if err != nil {
		return nil, err
	}
	app.Router = router
	return app, nil
}

// BuildSource picks the content reader for the configured source.
func BuildSource(ctx context.Context, cfg config.ContentConfig, region string) (object.Reader, error) {
	switch cfg.Source {
	case "dir":
		if strings.TrimSpace(cfg.Dir) == "" {
			return nil, fmt.Errorf("content.source=dir requires content.dir")
		}
		return localstore.New(cfg.Dir), nil
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("content.source=s3 requires content.s3_bucket")
		}
		return s3store.New(ctx, region, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return content.EmbeddedSource{}, nil
	}
}

func buildServices(app *App) {
	app.CareersService = careers.NewService(app.Bundle, app.Config.Careers)
	app.ResortsService = resorts.NewService(app.Bundle, app.Config.Resorts)
	app.ShoulderService = shoulder.NewService(app.Bundle)

	app.CareersHandler = careers.NewHandler(app.CareersService)
	app.ResortsHandler = resorts.NewHandler(app.ResortsService)
	app.ShoulderHandler = shoulder.NewHandler(app.ShoulderService)
}

// Close releases external connections.
func (a *App) Close() error {
	if a.Redis != nil {
		return a.Redis.Close()
	}
	return nil
}
