package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"aiorder/internal/configs"
	httpdelivery "aiorder/internal/delivery/http"
	"aiorder/internal/delivery/kafka"
	"aiorder/internal/metrics"
	"aiorder/internal/repository"
	"aiorder/internal/repository/cache"
	"aiorder/internal/repository/mongodb"
	"aiorder/internal/repository/postgres"
	"aiorder/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := connectPostgres(cfg, cfg.PgDSN())
	defer closeDB(db, "postgres")
	logrus.Print("connected to postgres")

	source := db
	if cfg.MM2CDatabaseURL != "" {
		source = connectPostgres(cfg, cfg.SourceDSN())
		defer closeDB(source, "mm2c")
		logrus.Print("connected to mm2c source")
	}

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("mongo connect: %s", err)
	}
	defer func() {
		if derr := mongoClient.Disconnect(context.Background()); derr != nil {
			logrus.Errorf("mongo disconnect: %v", derr)
		}
	}()
	orderedGroups := mongoClient.Database(cfg.MongoDB).Collection(cfg.MongoOrderedGroupCollection)
	if err := mongodb.NewOrderedGroupRepo(orderedGroups).EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("mongo indexes: %s", err)
	}
	logrus.Print("connected to mongo")

	var groupCache repository.OrderGroupCache
	switch {
	case cfg.RedisEnabled():
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Fatalf("redis connect: %s", err)
		}
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				logrus.Errorf("redis close: %v", cerr)
			}
		}()
		groupCache = cache.NewOrderGroupRedisCache(rdb, cache.WithRedisTTL(cfg.OrderGroupCacheTTL))
		logrus.Printf("order group cache on redis %s, ttl %s", cfg.RedisAddr, cfg.OrderGroupCacheTTL)
	case cfg.CachingEnabled():
		sc := cache.NewShardedCache(cache.WithShards(cfg.CacheShards), cache.WithShardTTL(cfg.OrderGroupCacheTTL))
		defer sc.Close()
		groupCache = cache.NewOrderGroupCache(sc)
		logrus.Printf("order group cache enabled, ttl %s", cfg.OrderGroupCacheTTL)
	}

	reg := metrics.NewRegistry()
	opts := []service.Option{
		service.WithMetrics(reg),
		service.WithSaveTimeout(cfg.SaveOrderTimeout),
	}
	if cfg.OrderPublishEnabled {
		pub := kafka.NewOrderPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("kafka close: %v", cerr)
			}
		}()
		opts = append(opts, service.WithHooks(pub))
		logrus.Printf("publishing saved orders to %s", cfg.KafkaTopic)
	}

	repo := repository.NewRepository(db, source, orderedGroups, groupCache)
	svc := service.NewService(repo, opts...)

	h := httpdelivery.NewHandler(svc, reg.Handler())
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.SaveOrderTimeout+5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	logrus.Print("service stopped")
}

func connectPostgres(cfg configs.Config, dsn string) *gorm.DB {
	db, err := postgres.ConnectDB(postgres.Config{
		DSN:          dsn,
		MaxOpenConns: cfg.PostgresMaxOpenConns,
		MaxIdleConns: cfg.PostgresMaxIdleConns,
	})
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	return db
}

func closeDB(db *gorm.DB, name string) {
	if err := db.Close(); err != nil {
		logrus.Errorf("%s close: %v", name, err)
	}
}
