package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/ddd-commerce/backend/adapters/event/listeners"
	"github.com/ddd-commerce/backend/adapters/redisstore"
	"github.com/ddd-commerce/backend/domain/pubsub"
	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/ddd-commerce/backend/pkg/logger"
	"go.uber.org/zap"
)

// eventtail prints the domain events the http server forwards to redis.
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

	opts := redisstore.ParseFromConfig(cfg)
	if !opts.Enabled() {
		applog.Fatal("REDIS_ADDR is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisstore.NewConnection(ctx, opts)
	if err != nil {
		applog.Fatalf("cannot connect to redis: %v", err)
	}
	defer rdb.Close()

	sub := redisstore.NewPubSubClient(rdb).Subscribe(ctx, cfg.Redis.Channel)
	defer sub.Close()

	applog.Infow("listening for events", "channel", cfg.Redis.Channel)
	if err := tail(ctx, sub, applog); err != nil {
		applog.Fatalf("cannot receive message: %v", err)
	}
}

// tail logs every forwarded event until ctx is done. Malformed messages are
// logged and skipped.
func tail(ctx context.Context, sub pubsub.Subscription, applog *zap.SugaredLogger) error {
	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}

			return err
		}

		e, err := listeners.DecodePublishedEvent(msg.Payload)
		if err != nil {
			applog.Warnw("skipping message", "channel", msg.Channel, "error", err)
			continue
		}

		applog.Infow("event received",
			"event", e.Name,
			"occurred_at", e.OccurredAt,
			"payload", e.Payload,
		)
	}
}
