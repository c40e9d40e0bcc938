package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Worker   WorkerConfig
	Market   MarketConfig
	Log      LogConfig
	Admin    AdminConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"parimutuel"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"30s"`
	LockTTL  time.Duration `env:"REDIS_LOCK_TTL" envDefault:"2m"`
}
type WorkerConfig struct {
	RecoveryInterval  time.Duration `env:"WORKER_RECOVERY_INTERVAL" envDefault:"1m"`
	RecoveryBatchSize int           `env:"WORKER_RECOVERY_BATCH_SIZE" envDefault:"10"`
	AuditInterval     time.Duration `env:"WORKER_AUDIT_INTERVAL" envDefault:"10m"`
	AuditLimit        int           `env:"WORKER_AUDIT_LIMIT" envDefault:"100"`
}
type MarketConfig struct {
	DefaultFeeBps int `env:"MARKET_DEFAULT_FEE_BPS" envDefault:"200"`
	MaxFeeBps     int `env:"MARKET_MAX_FEE_BPS" envDefault:"1000"`
}
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}
type AdminConfig struct {
	// Token guards operator routes when set.
	Token string `env:"ADMIN_TOKEN"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Market.DefaultFeeBps < 0 || cfg.Market.DefaultFeeBps > cfg.Market.MaxFeeBps {
		return nil, fmt.Errorf("failed to parse config: MARKET_DEFAULT_FEE_BPS %d outside [0, %d]",
			cfg.Market.DefaultFeeBps, cfg.Market.MaxFeeBps)
	}
	if cfg.Worker.RecoveryInterval <= 0 {
		return nil, fmt.Errorf("failed to parse config: WORKER_RECOVERY_INTERVAL must be positive, got %s", cfg.Worker.RecoveryInterval)
	}
	if cfg.Worker.AuditInterval <= 0 {
		return nil, fmt.Errorf("failed to parse config: WORKER_AUDIT_INTERVAL must be positive, got %s", cfg.Worker.AuditInterval)
	}
	return cfg, nil
}
