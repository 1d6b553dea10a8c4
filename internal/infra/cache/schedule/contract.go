package schedule

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// OrganizationRepository источник данных, который кэшируется
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
}

// RedisClient подмножество команд redis.Cmdable, используемое кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Metrics счетчики попаданий в кэш
type Metrics interface {
	CacheHit(cache string)
	CacheMiss(cache string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
