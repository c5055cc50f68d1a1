package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

type StoreOptions struct {
	URL       string
	Name      string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenStore connects to MongoDB and returns the gateway plus the client
// for shutdown. An empty URL yields a nil gateway: the service runs with
// the store marked unavailable, mirroring the original deployment where
// the database is optional.
func OpenStore(ctx context.Context, opt StoreOptions) (store.Gateway, *mongo.Client, error) {
	if opt.URL == "" {
		return nil, nil, nil
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("store connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("store ping: %w", err)
	}

	return store.NewMongoGateway(client.Database(opt.Name)), client, nil
}
