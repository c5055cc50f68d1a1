package main

import (
	"context"
	"log"

	"github.com/atelier-works/portfolio-backend/config"
	"github.com/atelier-works/portfolio-backend/internal/bootstrap"
	"github.com/atelier-works/portfolio-backend/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	gw, client, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
		URL:  cfg.Database.URL,
		Name: cfg.Database.Name,
	})
	if err != nil {
		// Degrade rather than die: the service still serves liveness,
		// diagnostics and empty listings without a store.
		log.Printf("[warn] operation=startup message=store unavailable: %v", err)
		gw = nil
	}
	if client != nil {
		defer func() { _ = client.Disconnect(ctx) }()
	}

	listCache, redisClient, err := bootstrap.OpenCache(ctx, cfg.Redis.Addr, cfg.Redis.ListCacheTTL)
	if err != nil {
		log.Printf("[warn] operation=startup message=cache unavailable: %v", err)
		listCache = nil
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	reporter := stats.NewScheduler(gw)
	reporter.Start()
	defer reporter.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      "portfolio-backend",
		Version:          cfg.App.Version,
		Store:            gw,
		Cache:            listCache,
		DatabaseURLSet:   cfg.Database.URL != "",
		DatabaseNameSet:  cfg.Database.Name != "",
		ContactRateRPS:   cfg.Contact.RateRPS,
		ContactRateBurst: cfg.Contact.RateBurst,
	})

	log.Printf("[info] operation=startup message=listening on :%s (version %s, env %s)",
		cfg.Server.Port, cfg.App.Version, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
