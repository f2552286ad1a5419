package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"aiorder/internal/models"
	"aiorder/internal/repository/cache"
)

func upRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("redis", "7-alpine", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	var client *redis.Client
	require.NoError(t, pool.Retry(func() error {
		c, err := cache.ConnectRedis(context.Background(), fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")), "", 0)
		if err != nil {
			return err
		}
		client = c
		return nil
	}))
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestOrderGroupRedisCache_PutGetInvalidate(t *testing.T) {
	client := upRedis(t)
	cch := cache.NewOrderGroupRedisCache(client, cache.WithRedisTTL(time.Minute))

	qL := models.OrderGroupQuery{CompanyID: "1", StoreID: "16888", OrderDate: "2023-06-28", ProductType: "L"}
	qS := qL
	qS.ProductType = "S"
	other := qL
	other.OrderDate = "2023-06-29"

	_, ok := cch.Get(qL)
	require.False(t, ok)

	want := models.OrderGroupList{
		CompanyID:   "1",
		StoreID:     "16888",
		OrderDate:   "2023-06-28",
		ProductType: "L",
		VendorList:  []models.VendorOrderGroups{{SupplierCode: "V1", SupplierName: "Acme"}},
	}
	cch.Put(qL, want)
	cch.Put(qS, models.OrderGroupList{StoreID: "16888", ProductType: "S"})
	cch.Put(other, models.OrderGroupList{StoreID: "16888", ProductType: "L"})

	got, ok := cch.Get(qL)
	require.True(t, ok)
	require.Equal(t, want, got)

	ttl, err := client.TTL(context.Background(), "aiorder:order_group:1|16888|2023-06-28|L").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	cch.Invalidate("1", "16888", "2023-06-28")

	_, ok = cch.Get(qL)
	require.False(t, ok)
	_, ok = cch.Get(qS)
	require.False(t, ok)
	_, ok = cch.Get(other)
	require.True(t, ok, "other days stay cached")
}

func TestOrderGroupRedisCache_CorruptEntryIsDropped(t *testing.T) {
	client := upRedis(t)
	cch := cache.NewOrderGroupRedisCache(client, cache.WithRedisPrefix("t:"))

	key := "t:1|1|2023-06-28|U"
	require.NoError(t, client.Set(context.Background(), key, "not json", 0).Err())

	_, ok := cch.Get(models.OrderGroupQuery{CompanyID: "1", StoreID: "1", OrderDate: "2023-06-28", ProductType: "U"})
	require.False(t, ok)

	n, err := client.Exists(context.Background(), key).Result()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestOrderGroupRedisCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	defer client.Close()
	cch := cache.NewOrderGroupRedisCache(client, cache.WithRedisTimeout(100*time.Millisecond))

	q := models.OrderGroupQuery{CompanyID: "1", StoreID: "1", OrderDate: "2023-06-28", ProductType: "L"}
	cch.Put(q, models.OrderGroupList{})
	_, ok := cch.Get(q)
	require.False(t, ok)
	cch.Invalidate("1", "1", "2023-06-28")
}
