package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ddd-commerce/backend/adapters/event"
	"github.com/ddd-commerce/backend/adapters/event/listeners"
	"github.com/ddd-commerce/backend/adapters/httpserver"
	"github.com/ddd-commerce/backend/adapters/inmemstore"
	"github.com/ddd-commerce/backend/adapters/postgrestore"
	"github.com/ddd-commerce/backend/adapters/redisstore"
	"github.com/ddd-commerce/backend/adapters/services"
	"github.com/ddd-commerce/backend/domain/pubsub"
	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/ddd-commerce/backend/pkg/logger"
	"github.com/ddd-commerce/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/jmoiron/sqlx"
)

const shutdownTimeout = 10 * time.Second

// @title Commerce APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customers, products and orders with domain events.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg)
	if err != nil {
		applog.Fatal(err)
	}
	defer db.Close()

	// event forwarding is optional
	var publisher pubsub.Service
	if opts := redisstore.ParseFromConfig(cfg); opts.Enabled() {
		rdb, err := redisstore.NewConnection(ctx, opts)
		if err != nil {
			applog.Fatal(err)
		}
		defer rdb.Close()

		publisher = redisstore.NewPubSubClient(rdb)
		applog.Infow("forwarding domain events", "channel", cfg.Redis.Channel)
	}

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	// event bus
	dispatcherOptions := []event.Option{event.WithLogger(applog)}
	if cfg.Events.IsolateFailures {
		dispatcherOptions = append(dispatcherOptions, event.WithFailureIsolation())
	}
	dispatcher := event.NewEventDispatcher(dispatcherOptions...)
	listeners.Register(dispatcher, applog, publisher, cfg.Redis.Channel)
	defer dispatcher.UnregisterAll()

	// store adapters
	customerStore := postgrestore.NewCustomerStore(db)
	productStore := postgrestore.NewProductStore(db)
	orderStore := postgrestore.NewOrderStore(db)

	// internal services
	server.MapperService = services.NewMapperService()

	server.CustomerService = services.NewCustomerService(customerStore, dispatcher)
	server.ProductService = services.NewProductService(productStore, dispatcher)
	server.OrderService = services.NewOrderService(orderStore, customerStore, productStore)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			applog.Errorw("cannot shutdown server", "error", err)
		}
	}()

	applog.Infow("server started!", "addr", srv.Addr, "db_driver", cfg.DB.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(err)
		return
	}

	applog.Info("server stopped")
}

func openDB(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DB.Driver {
	case "sqlite3":
		return inmemstore.NewConnection()
	case "postgres", "":
		return postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
}
