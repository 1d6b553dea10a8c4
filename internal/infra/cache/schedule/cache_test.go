package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/logger"
	"github.com/m04kA/SMC-RouteAvailability/pkg/ptr"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

type fakeRedis struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
	dels   int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	if err := f.Set(ctx, key, value, expiration).Err(); err != nil {
		return redis.NewBoolResult(false, err)
	}
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.dels++
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fakeRepo struct {
	org   *domain.Organization
	err   error
	calls int
	// afterRead вызывается после чтения, до возврата результата
	afterRead func()
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	org := f.org
	if f.afterRead != nil {
		f.afterRead()
	}
	return org, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	f.org = org
	return org, f.err
}

type countingMetrics struct {
	hits, misses int
}

func (m *countingMetrics) CacheHit(string)  { m.hits++ }
func (m *countingMetrics) CacheMiss(string) { m.misses++ }

func sampleOrganization() *domain.Organization {
	return &domain.Organization{
		ID:   5,
		Name: "Patagonia Walks",
		Schedule: domain.WeeklySchedule{
			Weekday: domain.OpeningHours{
				Open:  ptr.Ptr(types.MustTimeOfDay("09:00")),
				Close: ptr.Ptr(types.MustTimeOfDay("18:00")),
			},
			EnabledWeekdays: domain.NewWeekdaySet(time.Monday, time.Wednesday),
		},
		UpdatedAt: time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCache_ReadThrough(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	m := &countingMetrics{}
	cache := NewCache(repo, client, time.Minute, m, logger.NewNop())

	first, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)
	second, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Monday", "Wednesday"}, second.Schedule.EnabledWeekdays.Names())
	assert.Nil(t, second.Schedule.Sunday.Open)
}

func TestCache_RedisFailureFallsBack(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("connection refused")
	cache := NewCache(repo, client, time.Minute, &countingMetrics{}, logger.NewNop())

	org, err := cache.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Patagonia Walks", org.Name)
	assert.Equal(t, 1, repo.calls)
}

func TestCache_CorruptedEntryIsReloaded(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	client.data[cacheKey(5)] = `{"id":5,"openWeekday":"nine"}`
	cache := NewCache(repo, client, time.Minute, &countingMetrics{}, logger.NewNop())

	org, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "09:00", org.Schedule.Weekday.Open.String())

	_, err = cache.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestCache_RepositoryErrorIsReturned(t *testing.T) {
	notFound := errors.New("not found")
	cache := NewCache(&fakeRepo{err: notFound}, newFakeRedis(), time.Minute, &countingMetrics{}, logger.NewNop())

	_, err := cache.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, notFound)
}

func TestCache_UpsertRefreshesEntry(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	m := &countingMetrics{}
	cache := NewCache(repo, client, time.Minute, m, logger.NewNop())

	_, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)

	updated := sampleOrganization()
	updated.Name = "Patagonia Walks & Rides"
	_, err = cache.Upsert(context.Background(), updated)
	require.NoError(t, err)

	org, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Patagonia Walks & Rides", org.Name)
	assert.Equal(t, 0, client.dels)
	assert.Equal(t, 1, repo.calls)
}

func TestCache_MissDoesNotOverwriteConcurrentUpsert(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	cache := NewCache(repo, client, time.Minute, &countingMetrics{}, logger.NewNop())

	updated := sampleOrganization()
	updated.Name = "Patagonia Walks & Rides"
	repo.afterRead = func() {
		repo.afterRead = nil
		_, err := cache.Upsert(context.Background(), updated)
		require.NoError(t, err)
	}

	stale, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Patagonia Walks", stale.Name)

	org, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Patagonia Walks & Rides", org.Name)
	assert.Equal(t, 1, repo.calls)
}

func TestCache_UpsertInvalidatesWhenRefreshFails(t *testing.T) {
	repo := &fakeRepo{org: sampleOrganization()}
	client := newFakeRedis()
	cache := NewCache(repo, client, time.Minute, &countingMetrics{}, logger.NewNop())

	_, err := cache.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.Contains(t, client.data, cacheKey(5))

	client.setErr = errors.New("read only replica")
	_, err = cache.Upsert(context.Background(), sampleOrganization())
	require.NoError(t, err)

	assert.NotContains(t, client.data, cacheKey(5))
	assert.Equal(t, 1, client.dels)
}

func TestEncodeDecode_UsesTimeOfDayJSON(t *testing.T) {
	data, err := encode(sampleOrganization())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"openWeekday":"09:00"`)
	assert.NotContains(t, string(data), "openSunday")

	org, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleOrganization().Schedule, org.Schedule)
}
