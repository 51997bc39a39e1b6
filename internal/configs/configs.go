package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppHost                string `envconfig:"APP_HOST" default:"127.0.0.1" validate:"required"`
	AppPort                string `envconfig:"APP_PORT" default:"8080" validate:"required,numeric"`
	DatabaseDSN            string `envconfig:"DATABASE_DSN" default:"marketplace.db" validate:"required"`
	RateLimit              int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60" validate:"gt=0"`
	LockBackend            string `envconfig:"LOCK_BACKEND" default:"memory" validate:"oneof=memory redis"`
	RedisHost              string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
	RedisPort              string `envconfig:"REDIS_PORT" default:"6379"`
	RedisLockPrefix        string `envconfig:"REDIS_LOCK_PREFIX" default:"marketplace:lock:"`
	LockTTLSeconds         int    `envconfig:"LOCK_TTL_SECONDS" default:"10" validate:"gt=0"`
	SweepIntervalSeconds   int    `envconfig:"SWEEP_INTERVAL_SECONDS" default:"300" validate:"gte=0"`
	SweepWorkers           int    `envconfig:"SWEEP_WORKERS" default:"2" validate:"gt=0"`
	SweepBatchSize         int    `envconfig:"SWEEP_BATCH_SIZE" default:"50" validate:"gt=0"`
	ShutdownTimeoutSeconds int    `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"20" validate:"gt=0"`
	LogLevel               string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.LockBackend == "redis" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		return fmt.Errorf("invalid configuration: REDIS_HOST and REDIS_PORT are required when LOCK_BACKEND=redis")
	}
	return nil
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c Config) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}

func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
