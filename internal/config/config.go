package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is read from the process environment (optionally primed from a
// .env file by godotenv in each cmd).
type Config struct {
	Env  string `mapstructure:"app_env"`
	Port string `mapstructure:"port"`

	DBHost       string `mapstructure:"db_host"`
	DBPort       string `mapstructure:"db_port"`
	DBUser       string `mapstructure:"db_user"`
	DBPassword   string `mapstructure:"db_password"`
	DBName       string `mapstructure:"db_name"`
	DBSSLMode    string `mapstructure:"db_sslmode"`
	DBMaxRetries int    `mapstructure:"db_max_retries"`

	RedisAddr string `mapstructure:"redis_addr"`

	KafkaBroker        string        `mapstructure:"kafka_broker"`
	KafkaGroupID       string        `mapstructure:"kafka_group_id"`
	OutboxPollInterval time.Duration `mapstructure:"outbox_poll_interval"`
	OutboxRetention    time.Duration `mapstructure:"outbox_retention"`

	JWTSecret      string  `mapstructure:"jwt_secret"`
	RBACModelPath  string  `mapstructure:"rbac_model_path"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

// RequireKafka is used by the worker and consumer binaries.
func (c *Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "3000")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "leave")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_retries", 5)

	v.SetDefault("redis_addr", "localhost:6379")

	v.SetDefault("kafka_broker", "")
	v.SetDefault("kafka_group_id", "go-leave-notifications")
	v.SetDefault("outbox_poll_interval", "3s")
	v.SetDefault("outbox_retention", "168h")

	v.SetDefault("jwt_secret", "")
	v.SetDefault("rbac_model_path", "internal/rbac/infra/model.conf")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)
}
