package configs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds application configuration for analysis-web.
type Config struct {
	Port                     string        `mapstructure:"PORT" validate:"required"`
	PredictorURL             string        `mapstructure:"PREDICTOR_URL" validate:"required,url"`
	PredictorTimeout         time.Duration `mapstructure:"PREDICTOR_TIMEOUT" validate:"min=0"` // 0: no client-side deadline
	PredictorStrictResponses bool          `mapstructure:"PREDICTOR_STRICT_RESPONSES"`
	PredictorDialTimeout     time.Duration `mapstructure:"PREDICTOR_DIAL_TIMEOUT" validate:"min=0"`
	PredictorHeaderTimeout   time.Duration `mapstructure:"PREDICTOR_RESPONSE_HEADER_TIMEOUT" validate:"min=0"` // 0: no limit
	PredictorMaxConns        int           `mapstructure:"PREDICTOR_MAX_CONNS_PER_HOST" validate:"min=0"`
	MlRateLimitPerSec        int           `mapstructure:"ML_RATE_LIMIT_PER_SEC" validate:"min=0"` // 0: unthrottled
	MlRequestBurst           int           `mapstructure:"ML_REQUEST_BURST" validate:"min=1"`
	MlRequestMaxThrottleWait time.Duration `mapstructure:"ML_REQUEST_MAX_THROTTLE_WAIT" validate:"min=0"`
	RedisAddr                string        `mapstructure:"REDIS_ADDR"` // optional, shares the throttle across replicas
	RedisUsername            string        `mapstructure:"REDIS_USERNAME"`
	RedisPassword            string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                  int           `mapstructure:"REDIS_DB" validate:"min=0"`
	RedisTLS                 bool          `mapstructure:"REDIS_TLS"`
	ShutdownTimeout          time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("PREDICTOR_URL", "http://localhost:8000/predict")
	viper.SetDefault("PREDICTOR_TIMEOUT", "0s")
	viper.SetDefault("PREDICTOR_STRICT_RESPONSES", false)
	viper.SetDefault("PREDICTOR_DIAL_TIMEOUT", "5s")
	viper.SetDefault("PREDICTOR_RESPONSE_HEADER_TIMEOUT", "0s")
	viper.SetDefault("PREDICTOR_MAX_CONNS_PER_HOST", 64)
	viper.SetDefault("ML_RATE_LIMIT_PER_SEC", 0)
	viper.SetDefault("ML_REQUEST_BURST", 1)
	viper.SetDefault("ML_REQUEST_MAX_THROTTLE_WAIT", "500ms")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TLS", false)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	// Optional: Read from config.yaml if exists
	if gin.ReleaseMode == gin.Mode() {
		viper.SetConfigName("config.prod")
	} else if gin.TestMode == gin.Mode() {
		logger.Warn("running_in_test_mode")
		viper.SetConfigName("config.test")
	} else {
		logger.Warn("running_in_development_mode")
		viper.SetConfigName("config.dev")
	}
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./services/analysis-web/configs")
	_ = viper.ReadInConfig() // Ignore if no file

	var cfg Config
	if err := utils.ParseStructEnv(&cfg); err != nil {
		return nil, err
	}

	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, utils.FormatConfigErrors(logger, err, cfg)
	}
	return &cfg, nil
}
