package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" default:"3"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" default:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" default:"30m"`
}

// RedisConfig configures the optional currency catalog cache.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" default:""`
	Password string        `env:"REDIS_PASS" default:""`
	DB       int           `env:"REDIS_DB" default:"0"`
	TTL      time.Duration `env:"REDIS_CURRENCY_TTL" default:"10m"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}
