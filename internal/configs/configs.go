package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"ordering"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	PostgresMaxOpenConns int `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"20"`
	PostgresMaxIdleConns int `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`

	// MM2CDatabaseURL points at the order-group schedule used to seed empty partitions.
	MM2CDatabaseURL string `env:"MM2C_DATABASE_URL" envDefault:""`

	MongoURI                    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/?replicaSet=rs0"`
	MongoDB                     string `env:"MONGO_DB" envDefault:"ordering"`
	MongoOrderedGroupCollection string `env:"MONGO_ORDERED_GROUP_COLLECTION" envDefault:"orderedgroups"`

	SaveOrderTimeout   time.Duration `env:"SAVE_ORDER_TIMEOUT" envDefault:"30s"`
	OrderGroupCacheTTL time.Duration `env:"ORDER_GROUP_CACHE_TTL" envDefault:"0s"`
	CacheShards        int           `env:"CACHE_SHARDS" envDefault:"16"`

	// RedisAddr switches the order group cache from in-process shards to redis.
	RedisAddr     string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	KafkaBrokers        string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic          string `env:"KAFKA_TOPIC" envDefault:"ordered-groups"`
	OrderPublishEnabled bool   `env:"ORDER_PUBLISH_ENABLED" envDefault:"false"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if c.CacheShards < 1 {
		return Config{}, fmt.Errorf("config parse: CACHE_SHARDS must be positive, got %d", c.CacheShards)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

// SourceDSN falls back to the partition database when no MM2C database is configured.
func (c Config) SourceDSN() string {
	if c.MM2CDatabaseURL != "" {
		return c.MM2CDatabaseURL
	}
	return c.PgDSN()
}

func (c Config) CachingEnabled() bool { return c.OrderGroupCacheTTL > 0 }

func (c Config) RedisEnabled() bool { return c.CachingEnabled() && c.RedisAddr != "" }
