package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"strconv"

	"github.com/ddd-commerce/backend/adapters/event"
	"github.com/ddd-commerce/backend/adapters/event/listeners"
	"github.com/ddd-commerce/backend/adapters/postgrestore"
	"github.com/ddd-commerce/backend/adapters/services"
	"github.com/ddd-commerce/backend/internal"
	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/ddd-commerce/backend/pkg/logger"
	"github.com/ddd-commerce/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

//go:embed products.csv
var catalogue []byte

type productRow struct {
	Name  string
	Price float64
}

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

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}
	defer db.Close()

	dispatcher := event.NewEventDispatcher(event.WithLogger(applog))
	listeners.Register(dispatcher, applog, nil, "")
	defer dispatcher.UnregisterAll()

	productService := services.NewProductService(postgrestore.NewProductStore(db), dispatcher)

	var csvService internal.CSVService = services.NewCSVService()

	rows, err := csvService.CsvToEntities(bytes.NewReader(catalogue), toProductRow)
	if err != nil {
		applog.Fatalf("cannot read catalogue: %v", err)
	}

	ctx := context.Background()
	for _, r := range rows {
		row := r.(productRow)
		if _, err := productService.Create(ctx, row.Name, row.Price); err != nil {
			applog.Fatalf("cannot create product %s: %v", row.Name, err)
		}
	}

	applog.Infof("%d products created successfully", len(rows))
}

func toProductRow(record []string) (interface{}, error) {
	if len(record) != 2 {
		return nil, fmt.Errorf("expected 2 columns, got %d", len(record))
	}

	price, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[1], err)
	}

	return productRow{Name: record[0], Price: price}, nil
}
