package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/cache"
	middleware "github.com/nimeshabuddhika/fraud-analysis-web/pkg/middlewares"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/configs"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/handlers"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/pages"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const predictRateKey = "analysis_web:predict_rate"

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server and a cleanup func.
// It reads configuration from environment variables via configs.Load.
func NewApp(ctx context.Context, logger *zap.Logger) (*http.Server, *configs.Config, func(), error) {
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, nil, nil, err
	}

	// Redis is only needed to share the throttle between replicas
	var redisClient *redis.Client
	cleanup := func() {}
	if !utils.IsEmpty(cfg.RedisAddr) && cfg.MlRateLimitPerSec > 0 {
		client, closer, err := cache.New(ctx, redisConfig(cfg))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		redisClient = client
		cleanup = closer
		logger.Info("redis throttle enabled", zap.String("addr", cfg.RedisAddr))
	}

	p, err := predictor.NewPredictor(predictor.PredictorConfig{
		Logger:          logger.Named("predictor"),
		PredictURL:      cfg.PredictorURL,
		HTTPClient:      predictorHTTPClient(cfg),
		Limiter:         pkg.NewDistributedLimiter(redisClient, predictRateKey, cfg.MlRateLimitPerSec, cfg.MlRequestBurst, logger),
		MaxThrottleWait: cfg.MlRequestMaxThrottleWait,
		StrictResponses: cfg.PredictorStrictResponses,
	})
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	r, err := NewRouter(logger, p)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: r}
	return srv, cfg, cleanup, nil
}

func redisConfig(cfg *configs.Config) cache.Config {
	return cache.Config{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	}
}

func predictorHTTPClient(cfg *configs.Config) *http.Client {
	return utils.NewHTTPClient(
		utils.WithClientTimeout(cfg.PredictorTimeout),
		utils.WithResponseHeaderTimeout(cfg.PredictorHeaderTimeout),
		utils.WithDialerTimeout(cfg.PredictorDialTimeout),
		utils.WithMaxConnsPerHost(cfg.PredictorMaxConns),
	)
}

// NewRouter builds the Gin engine around an already constructed predictor.
func NewRouter(logger *zap.Logger, p predictor.Predictor) (*gin.Engine, error) {
	tmpl, err := pages.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceID())
	r.Use(middleware.Metrics())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", pages.StaticFS())

	handlers.NewBaseHandler(logger).RegisterRoutes(r)
	handlers.NewAnalysisHandler(logger, p).RegisterRoutes(r)

	api := r.Group("/api/v1")
	handlers.NewPredictionHandler(logger, p).RegisterRoutes(api)

	return r, nil
}
