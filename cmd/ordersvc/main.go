package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/ordermodule/internal/adapter/auth"
	"github.com/MikeRez0/ordermodule/internal/adapter/cache"
	"github.com/MikeRez0/ordermodule/internal/adapter/client/catalog"
	"github.com/MikeRez0/ordermodule/internal/adapter/config"
	"github.com/MikeRez0/ordermodule/internal/adapter/event"
	"github.com/MikeRez0/ordermodule/internal/adapter/handler/http"
	"github.com/MikeRez0/ordermodule/internal/adapter/logger"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage/memory"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage/repository"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/service"
	"go.uber.org/zap"
)

const (
	eventQueueSize   = 100
	eventWorkers     = 2
	invalidateSuffix = ".invalidate"
	eventsSuffix     = ".events"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	if conf.App.IssueToken != "" {
		token, err := tokenService.CreateToken(&domain.Operator{ID: conf.App.IssueToken})
		if err != nil {
			log.Error("token issuing error", zap.Error(err))
			return
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newStorage(ctx, conf, log)
	if err != nil {
		log.Error("storage error", zap.Error(err))
		return
	}

	if conf.Catalog.HostString != "" {
		client, err := catalog.NewClient(conf.Catalog, log.Named("Catalog"))
		if err != nil {
			log.Error("catalog client creating error", zap.Error(err))
			return
		}
		deps.Shipping = client.ShippingMethods()
		deps.Payment = client.PaymentMethods()
	} else {
		log.Warn("no catalog address, default methods are used")
		deps.Shipping = catalog.DefaultShippingMethods
		deps.Payment = catalog.DefaultPaymentMethods
	}

	orderCache := cache.NewMemoryCache(conf.Cache.TTL, log.Named("Cache"))
	bus := event.NewBus(log.Named("Events"))
	deps.Cache = orderCache
	deps.Publisher = bus

	if conf.Redis.URL != "" {
		rdb, err := storage.NewRedisClient(ctx, conf.Redis)
		if err != nil {
			log.Error("redis error", zap.Error(err))
			return
		}
		defer rdb.Close()

		relay := cache.NewRedisRelay(rdb, conf.Redis.Channel+invalidateSuffix, log.Named("CacheRelay"))
		if err := relay.Listen(ctx, orderCache); err != nil {
			log.Error("cache relay error", zap.Error(err))
			return
		}
		orderCache.SetRelay(relay)

		forwarder := event.NewRedisForwarder(rdb, conf.Redis.Channel+eventsSuffix, eventQueueSize,
			log.Named("EventForwarder"))
		forwarder.Run(ctx, eventWorkers)
		bus.Subscribe(domain.OrderChangedEvent, forwarder)
	}

	svc, err := service.NewService(*deps, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	search := service.NewSearchService(deps.Repository, orderCache, svc, log.Named("Search"))

	orderHandler, err := http.NewOrderHandler(svc, search, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(tokenService, orderHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

// newStorage picks postgres when a DSN is configured. Without one the DEV
// mode falls back to process memory.
func newStorage(ctx context.Context, conf *config.Config, log *zap.Logger) (*service.Dependencies, error) {
	if conf.Database.DSN == "" {
		if conf.App.Mode != config.AppModeDevelop {
			return nil, fmt.Errorf("database DSN is required in %s mode", conf.App.Mode)
		}
		log.Warn("no database configured, orders are kept in memory")
		return &service.Dependencies{
			Repository: memory.NewRepository(),
			Stores:     memory.NewStoreService(),
			Numbers:    memory.NewNumberGenerator(),
		}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db, log.Named("Repository"))
	if err != nil {
		return nil, err
	}
	return &service.Dependencies{
		Repository: repo,
		Stores:     repository.NewStoreRepository(db),
		Numbers:    repository.NewNumberGenerator(db),
	}, nil
}
