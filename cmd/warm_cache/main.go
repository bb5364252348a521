// Command warm_cache prefetches the full catalog from the recipe API
// and stores it as the Redis snapshot, so freshly deployed instances
// serve without a cold hit against the metered upstream.
package main

import (
	"context"
	"log"
	"time"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/catalog"
	"github.com/ShyneADL/recipe-app/internal/database"
	"github.com/ShyneADL/recipe-app/internal/gateway"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := gateway.NewClient(cfg)
	fetched, err := client.FetchAll(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch catalog: %v", err)
	}
	log.Printf("Fetched %d recipes and %d categories", len(fetched.Recipes), len(fetched.Categories))

	cache := catalog.New(client, redisClient)
	if err := cache.Warm(ctx, fetched.Recipes, fetched.Categories); err != nil {
		log.Fatalf("Failed to write catalog snapshot: %v", err)
	}
	log.Println("Catalog snapshot written")
}
