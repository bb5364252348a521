// Package catalog owns the in-memory copy of the upstream recipe data.
// The catalog is fetched at most once per process: concurrent first
// callers share a single in-flight request, and once a key resolves it
// is valid for the lifetime of the process. Fetch errors are never
// cached, so the next caller retries.
package catalog

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/ShyneADL/recipe-app/internal/model"
)

// Redis snapshot keys. The snapshot only exists to spare the metered
// upstream across restarts; it is not a source of truth.
const (
	SnapshotKeyRecipes    = "catalog:recipes"
	SnapshotKeyCategories = "catalog:categories"

	// SnapshotTTL matches the 24h cache expiry the web client used.
	SnapshotTTL = 24 * time.Hour
)

// Fetcher retrieves the full collections from the upstream API.
type Fetcher interface {
	FetchRecipes(ctx context.Context) ([]model.Recipe, error)
	FetchCategories(ctx context.Context) ([]model.Category, error)
}

// Cache memoizes the upstream catalog. Redis is optional: with a nil
// client the cache is purely in-memory.
type Cache struct {
	fetcher Fetcher
	redis   *redis.Client
	group   singleflight.Group

	mu         sync.RWMutex
	recipes    []model.Recipe
	categories []model.Category
	hasRecipes bool
	hasCats    bool
}

// New creates a catalog cache over the given fetcher.
func New(fetcher Fetcher, redisClient *redis.Client) *Cache {
	return &Cache{
		fetcher: fetcher,
		redis:   redisClient,
	}
}

// Recipes returns the cached recipe list, fetching it on first use.
func (c *Cache) Recipes(ctx context.Context) ([]model.Recipe, error) {
	c.mu.RLock()
	if c.hasRecipes {
		defer c.mu.RUnlock()
		return c.recipes, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("recipes", func() (interface{}, error) {
		var recipes []model.Recipe
		if c.readSnapshot(ctx, SnapshotKeyRecipes, &recipes) && len(recipes) > 0 {
			c.storeRecipes(recipes)
			return recipes, nil
		}

		recipes, err := c.fetcher.FetchRecipes(ctx)
		if err != nil {
			return nil, err
		}
		c.writeSnapshot(ctx, SnapshotKeyRecipes, recipes)
		c.storeRecipes(recipes)
		return recipes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.Recipe), nil
}

// Categories returns the cached category list, fetching it on first use.
func (c *Cache) Categories(ctx context.Context) ([]model.Category, error) {
	c.mu.RLock()
	if c.hasCats {
		defer c.mu.RUnlock()
		return c.categories, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("categories", func() (interface{}, error) {
		var categories []model.Category
		if c.readSnapshot(ctx, SnapshotKeyCategories, &categories) && len(categories) > 0 {
			c.storeCategories(categories)
			return categories, nil
		}

		categories, err := c.fetcher.FetchCategories(ctx)
		if err != nil {
			return nil, err
		}
		c.writeSnapshot(ctx, SnapshotKeyCategories, categories)
		c.storeCategories(categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.Category), nil
}

// RecipeByID finds a single recipe in the cached catalog. The second
// return value is false when the ID is not in the catalog.
func (c *Cache) RecipeByID(ctx context.Context, id int) (*model.Recipe, bool, error) {
	recipes, err := c.Recipes(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], true, nil
		}
	}
	return nil, false, nil
}

// Warm seeds the cache with a prefetched catalog and writes the Redis
// snapshot. Used by the warm_cache command.
func (c *Cache) Warm(ctx context.Context, recipes []model.Recipe, categories []model.Category) error {
	c.storeRecipes(recipes)
	c.storeCategories(categories)
	if c.redis == nil {
		return nil
	}
	if err := c.snapshotSet(ctx, SnapshotKeyRecipes, recipes); err != nil {
		return err
	}
	return c.snapshotSet(ctx, SnapshotKeyCategories, categories)
}

func (c *Cache) storeRecipes(recipes []model.Recipe) {
	c.mu.Lock()
	c.recipes = recipes
	c.hasRecipes = true
	c.mu.Unlock()
}

func (c *Cache) storeCategories(categories []model.Category) {
	c.mu.Lock()
	c.categories = categories
	c.hasCats = true
	c.mu.Unlock()
}

// readSnapshot loads a Redis snapshot into out. A missing key, a Redis
// error or a corrupt payload all report false; corrupt snapshots are
// deleted so the next restart doesn't trip over them again.
func (c *Cache) readSnapshot(ctx context.Context, key string, out interface{}) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Discarding corrupt catalog snapshot %s: %v", key, err)
		c.redis.Del(ctx, key)
		return false
	}
	return true
}

// writeSnapshot stores a Redis snapshot. Snapshot failures are logged
// and ignored: the in-memory copy is already populated.
func (c *Cache) writeSnapshot(ctx context.Context, key string, value interface{}) {
	if c.redis == nil {
		return
	}
	if err := c.snapshotSet(ctx, key, value); err != nil {
		log.Printf("Failed to write catalog snapshot %s: %v", key, err)
	}
}

func (c *Cache) snapshotSet(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, data, SnapshotTTL).Err()
}
