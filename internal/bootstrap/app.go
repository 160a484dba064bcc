package bootstrap

import (
	"context"
	"errors"

	"storefront_orders/internal/adapter/identity"
	"storefront_orders/internal/config"
	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/cache"
	"storefront_orders/internal/infrastructure/events"
	"storefront_orders/internal/infrastructure/payments"
	"storefront_orders/internal/usecase"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"
	"storefront_orders/pkg/retry"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds every use case of the service, built once from configuration.
type App struct {
	Config *config.Config
	Store  *Store
	Redis  *redis.Client

	Gateway        *payments.MercadoPagoGateway
	Orders         *usecase.OrderUseCase
	Exchanges      *usecase.ExchangeUseCase
	Cards          *usecase.CardUseCase
	Reconciliation *usecase.ReconciliationUseCase
	Sweeper        *usecase.ExpirationSweeper
	TopSellers     *usecase.TopSellersRefresher

	closers []func() error
}

// New connects the store, cache, broker and gateway and wires the use cases.
// Redis and Kafka are optional; without them the service falls back to an
// in-process dedupe set and log-only events.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Store: store}
	app.closers = append(app.closers, store.Close)

	var (
		orderCache interfaces.IOrderCache
		deduper    interfaces.INotificationDeduper
		publisher  interfaces.IEventPublisher = events.LogPublisher{}
	)

	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cache.RedisOptions{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Redis = client
		app.closers = append(app.closers, client.Close)
		orderCache = cache.NewRedisOrderCache(client, cfg.Redis.OrderTTL)
		deduper = cache.NewRedisNotificationDeduper(client, cfg.Redis.DedupTTL)
	} else {
		logger.Warn("[bootstrap] redis not configured, webhook dedupe is per process")
		deduper = cache.NewMemoryNotificationDeduper(cfg.Redis.DedupTTL)
	}

	if cfg.Kafka.Enabled() {
		kafka := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		app.closers = append(app.closers, kafka.Close)
		publisher = kafka
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(payments.GatewayOptions{
		AccessToken:    cfg.Gateway.AccessToken,
		Mock:           cfg.Gateway.Mock,
		BoletoMethodID: cfg.Gateway.BoletoMethodID,
		HTTPTimeout:    cfg.Gateway.Timeout,
	})
	if err != nil {
		// Orders can still be placed; every charge fails until a token is set.
		logger.Error("[bootstrap] mercado pago gateway not configured", zap.Error(err))
	} else {
		app.Gateway = mp
		gateway = mp
	}

	var verifier interfaces.INotificationVerifier
	if cfg.Gateway.WebhookSecret != "" {
		verifier = payments.NewSignatureVerifier(cfg.Gateway.WebhookSecret)
	}

	permissions := identity.NewClaimsPermissionChecker(cfg.Auth.Superusers...)

	retryCfg := retry.DefaultConfig
	if cfg.Store.Retry.MaxAttempts > 0 {
		retryCfg.MaxAttempts = cfg.Store.Retry.MaxAttempts
	}
	if cfg.Store.Retry.InitialDelay > 0 {
		retryCfg.InitialDelay = cfg.Store.Retry.InitialDelay
	}
	if cfg.Store.Retry.MaxDelay > 0 {
		retryCfg.MaxDelay = cfg.Store.Retry.MaxDelay
	}

	machineOpts := []usecase.StateMachineOption{
		usecase.WithEventPublisher(publisher),
		usecase.WithRetryConfig(retryCfg),
		usecase.WithHoldWindow(cfg.Orders.HoldWindow),
	}
	if orderCache != nil {
		machineOpts = append(machineOpts, usecase.WithOrderCache(orderCache))
	}
	machine := usecase.NewOrderStateMachine(store.Orders, store.Exchanges, store.UnitOfWork, usecase.NewInventoryLedger(), machineOpts...)

	pricing := usecase.NewPricingEngine(usecase.PricingConfig{
		OriginZip: cfg.Pricing.OriginZip,
		Tariff: usecase.TwoTierTariff{
			Local:  entities.NewMoneyFromFloat(cfg.Pricing.LocalFreight),
			Remote: entities.NewMoneyFromFloat(cfg.Pricing.RemoteFreight),
		},
		PixDiscountPercent: cfg.Pricing.PixDiscountPercent,
		BoletoFee:          entities.NewMoneyFromFloat(cfg.Pricing.BoletoFee),
	})

	customers := usecase.NewCustomerResolver(store.Customers, gateway, cfg.Gateway.Timeout)
	dispatcher := usecase.NewPaymentDispatcher(gateway, store.Orders, customers, machine, usecase.DispatcherConfig{
		Timeout:         cfg.Gateway.Timeout,
		NotificationURL: cfg.Gateway.NotificationURL,
	})

	app.Orders = usecase.NewOrderUseCase(store.Orders, store.StockLines, pricing, machine, dispatcher, permissions, orderCache,
		usecase.OrderUseCaseConfig{MaxLines: cfg.Orders.MaxLines})
	app.Exchanges = usecase.NewExchangeUseCase(store.Orders, store.Exchanges, machine, permissions)
	app.Cards = usecase.NewCardUseCase(gateway, customers, cfg.Gateway.Timeout)
	app.Reconciliation = usecase.NewReconciliationUseCase(store.Orders, gateway, machine, verifier, deduper, permissions, cfg.Gateway.Timeout)
	app.Sweeper = usecase.NewExpirationSweeper(store.Orders, machine, cfg.Orders.SweepInterval, cfg.Orders.SweepBatch)
	app.TopSellers = usecase.NewTopSellersRefresher(store.Orders, cfg.TopSellers.RefreshInterval, cfg.TopSellers.Window, cfg.TopSellers.Limit)

	logger.Info("[bootstrap] application wired",
		zap.String("store", store.Driver),
		zap.Bool("redis", app.Redis != nil),
		zap.Bool("kafka", cfg.Kafka.Enabled()),
		zap.Bool("gateway", gateway != nil),
		zap.Bool("gateway_mock", cfg.Gateway.Mock),
		zap.Bool("webhook_signature", verifier != nil),
	)
	return app, nil
}

// RedisPing returns a health check for the cache, or nil without Redis.
func (a *App) RedisPing() func(ctx context.Context) error {
	if a.Redis == nil {
		return nil
	}
	return func(ctx context.Context) error { return a.Redis.Ping(ctx).Err() }
}

// Close releases connections in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// RunBackground starts the sweeper and the top-sellers refresher. Both stop
// when ctx is done; the returned channel closes once they have.
func (a *App) RunBackground(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		finished := make(chan struct{}, 2)
		go func() { a.Sweeper.Run(ctx); finished <- struct{}{} }()
		go func() { a.TopSellers.Run(ctx); finished <- struct{}{} }()
		<-finished
		<-finished
	}()
	return done
}
