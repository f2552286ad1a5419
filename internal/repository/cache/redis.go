package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"aiorder/internal/models"
)

const (
	defaultRedisPrefix  = "aiorder:order_group:"
	defaultRedisTimeout = 500 * time.Millisecond
	scanBatchSize       = 100
)

// OrderGroupRedisCache keeps order-group lists in redis so that several
// service instances share one view. Every redis failure counts as a miss.
type OrderGroupRedisCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	timeout time.Duration
}

type RedisOption func(*OrderGroupRedisCache)

func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(c *OrderGroupRedisCache) { c.ttl = ttl }
}

func WithRedisPrefix(prefix string) RedisOption {
	return func(c *OrderGroupRedisCache) { c.prefix = prefix }
}

func WithRedisTimeout(d time.Duration) RedisOption {
	return func(c *OrderGroupRedisCache) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewOrderGroupRedisCache does not take ownership of client.
func NewOrderGroupRedisCache(client *redis.Client, opts ...RedisOption) *OrderGroupRedisCache {
	c := &OrderGroupRedisCache{
		client:  client,
		prefix:  defaultRedisPrefix,
		timeout: defaultRedisTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConnectRedis opens a client and pings it.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *OrderGroupRedisCache) key(q models.OrderGroupQuery) string {
	return c.prefix + listKey(q)
}

func (c *OrderGroupRedisCache) Get(q models.OrderGroupQuery) (models.OrderGroupList, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	key := c.key(q)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.OrderGroupList{}, false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("order group cache get failed")
		return models.OrderGroupList{}, false
	}

	var list models.OrderGroupList
	if err := json.Unmarshal(data, &list); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("dropping corrupt order group cache entry")
		_ = c.client.Del(ctx, key).Err()
		return models.OrderGroupList{}, false
	}
	return list, true
}

func (c *OrderGroupRedisCache) Put(q models.OrderGroupQuery, list models.OrderGroupList) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	key := c.key(q)
	data, err := json.Marshal(list)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("order group cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("order group cache put failed")
	}
}

// Invalidate drops every cached product type for the store and day.
func (c *OrderGroupRedisCache) Invalidate(companyID, storeID, orderDate string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	pattern := globEscape(c.prefix+storeDayPrefix(companyID, storeID, orderDate)) + "*"
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			logrus.WithError(err).WithField("pattern", pattern).Warn("order group cache invalidate failed")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				logrus.WithError(err).WithField("pattern", pattern).Warn("order group cache invalidate failed")
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func globEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
