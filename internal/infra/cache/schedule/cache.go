package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

const (
	cacheName = "organization_schedule"
	keyPrefix = "route-availability:schedule:"
)

// Cache read-through кэш расписаний организаций в Redis
// Ошибки Redis не прерывают чтение: запрос уходит в репозиторий
type Cache struct {
	repo    OrganizationRepository
	client  RedisClient
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCache создает кэш поверх репозитория
func NewCache(repo OrganizationRepository, client RedisClient, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		repo:    repo,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// GetByID возвращает организацию из кэша или из репозитория с последующим сохранением в кэш
// Запись после промаха делается через SETNX: значение, уже записанное Upsert, не перетирается
func (c *Cache) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	key := cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		org, decodeErr := decode(data)
		if decodeErr == nil {
			c.metrics.CacheHit(cacheName)
			return org, nil
		}
		c.logger.Warn("ScheduleCache: drop corrupted entry %s: %v", key, decodeErr)
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.Warn("ScheduleCache: delete %s failed: %v", key, err)
		}
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("ScheduleCache: get %s failed, falling back to repository: %v", key, err)
	}

	c.metrics.CacheMiss(cacheName)

	org, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, key, org)
	return org, nil
}

// Upsert пишет в репозиторий и перезаписывает запись в кэше
// Если записать в кэш не удалось, ключ удаляется, чтобы не отдавать старое расписание
func (c *Cache) Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	saved, err := c.repo.Upsert(ctx, org)
	if err != nil {
		return nil, err
	}

	key := cacheKey(saved.ID)
	data, err := encode(saved)
	if err == nil {
		err = c.client.Set(ctx, key, data, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("ScheduleCache: refresh %s failed, invalidating: %v", key, err)
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.Error("ScheduleCache: invalidate %s failed: %v", key, err)
		}
	}

	return saved, nil
}

func (c *Cache) fill(ctx context.Context, key string, org *domain.Organization) {
	data, err := encode(org)
	if err != nil {
		c.logger.Error("ScheduleCache: encode organization id=%d: %v", org.ID, err)
		return
	}
	if err := c.client.SetNX(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("ScheduleCache: set %s failed: %v", key, err)
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// cachedOrganization формат записи в Redis
type cachedOrganization struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	OpenWeekday     *types.TimeOfDay `json:"openWeekday,omitempty"`
	CloseWeekday    *types.TimeOfDay `json:"closeWeekday,omitempty"`
	OpenSaturday    *types.TimeOfDay `json:"openSaturday,omitempty"`
	CloseSaturday   *types.TimeOfDay `json:"closeSaturday,omitempty"`
	OpenSunday      *types.TimeOfDay `json:"openSunday,omitempty"`
	CloseSunday     *types.TimeOfDay `json:"closeSunday,omitempty"`
	EnabledWeekdays []string         `json:"enabledWeekdays"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func encode(org *domain.Organization) ([]byte, error) {
	s := org.Schedule
	return json.Marshal(cachedOrganization{
		ID:              org.ID,
		Name:            org.Name,
		OpenWeekday:     s.Weekday.Open,
		CloseWeekday:    s.Weekday.Close,
		OpenSaturday:    s.Saturday.Open,
		CloseSaturday:   s.Saturday.Close,
		OpenSunday:      s.Sunday.Open,
		CloseSunday:     s.Sunday.Close,
		EnabledWeekdays: s.EnabledWeekdays.Names(),
		CreatedAt:       org.CreatedAt,
		UpdatedAt:       org.UpdatedAt,
	})
}

func decode(data []byte) (*domain.Organization, error) {
	var cached cachedOrganization
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	enabled, err := domain.ParseWeekdaySet(cached.EnabledWeekdays)
	if err != nil {
		return nil, err
	}

	return &domain.Organization{
		ID:        cached.ID,
		Name:      cached.Name,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
		Schedule: domain.WeeklySchedule{
			Weekday:         domain.OpeningHours{Open: cached.OpenWeekday, Close: cached.CloseWeekday},
			Saturday:        domain.OpeningHours{Open: cached.OpenSaturday, Close: cached.CloseSaturday},
			Sunday:          domain.OpeningHours{Open: cached.OpenSunday, Close: cached.CloseSunday},
			EnabledWeekdays: enabled,
		},
	}, nil
}
