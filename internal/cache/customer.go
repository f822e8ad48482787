package cache

import (
	"context"
	"errors"
	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/vmihailenco/msgpack/v5"
	"time"
)

// DefaultRedisKey is key under which customer list snapshot is stored
const DefaultRedisKey = "customers:all"

type redisCustomerListCache struct {
	client     *redis.Client
	key        string
	timeToLive time.Duration
	now        func() time.Time
}

// NewRedisCustomerListCache builds cache storing snapshot in redis, so several
// console instances share one list. Zero ttl keeps snapshot until invalidated.
func NewRedisCustomerListCache(client *redis.Client, key string, ttl time.Duration) CustomerListCache {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisCustomerListCache{client: client, key: key, timeToLive: ttl, now: time.Now}
}

func (r *redisCustomerListCache) Read(ctx context.Context) (Snapshot, bool, error) {
	res, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	var s Snapshot
	if err := msgpack.Unmarshal(res, &s); err != nil {
		return Snapshot{}, false, err
	}
	return s, true, nil
}

func (r *redisCustomerListCache) Write(ctx context.Context, s Snapshot) error {
	if s.Customers == nil {
		s.Customers = make([]model.Customer, 0)
	}
	if s.FetchedAt.IsZero() {
		s.FetchedAt = r.now()
	}
	s.FetchedAt = s.FetchedAt.UTC()

	encoded, err := msgpack.Marshal(&s)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key, encoded, r.timeToLive).Err()
}

func (r *redisCustomerListCache) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
