package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShyneADL/recipe-app/internal/model"
)

// stubFetcher counts upstream calls and can be told to fail.
type stubFetcher struct {
	recipeCalls   atomic.Int64
	categoryCalls atomic.Int64

	mu         sync.Mutex
	recipes    []model.Recipe
	categories []model.Category
	err        error

	// release, when set, blocks fetches until closed so tests can pile
	// up concurrent callers behind one in-flight request.
	release chan struct{}
}

func (f *stubFetcher) FetchRecipes(ctx context.Context) ([]model.Recipe, error) {
	f.recipeCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipes, f.err
}

func (f *stubFetcher) FetchCategories(ctx context.Context) ([]model.Category, error) {
	f.categoryCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories, f.err
}

func (f *stubFetcher) setError(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func TestRecipesFetchedOnce(t *testing.T) {
	fetcher := &stubFetcher{recipes: []model.Recipe{{ID: 1, Recipe: "Keto Bread"}}}
	cache := New(fetcher, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		recipes, err := cache.Recipes(ctx)
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
	}
	assert.Equal(t, int64(1), fetcher.recipeCalls.Load())
}

func TestConcurrentCallersShareOneFetch(t *testing.T) {
	fetcher := &stubFetcher{
		recipes: []model.Recipe{{ID: 1}},
		release: make(chan struct{}),
	}
	cache := New(fetcher, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recipes, err := cache.Recipes(ctx)
			assert.NoError(t, err)
			assert.Len(t, recipes, 1)
		}()
	}
	close(fetcher.release)
	wg.Wait()

	assert.Equal(t, int64(1), fetcher.recipeCalls.Load())
}

func TestFetchErrorIsNotCached(t *testing.T) {
	fetcher := &stubFetcher{categories: []model.Category{{ID: 1, Category: "Dinner"}}}
	fetcher.setError(errors.New("upstream down"))
	cache := New(fetcher, nil)
	ctx := context.Background()

	_, err := cache.Categories(ctx)
	require.Error(t, err)

	// Once the upstream recovers the next call succeeds.
	fetcher.setError(nil)
	categories, err := cache.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, int64(2), fetcher.categoryCalls.Load())
}

func TestRecipeByID(t *testing.T) {
	fetcher := &stubFetcher{recipes: []model.Recipe{
		{ID: 1, Recipe: "Keto Bread"},
		{ID: 2, Recipe: "Cauliflower Rice"},
	}}
	cache := New(fetcher, nil)
	ctx := context.Background()

	recipe, ok, err := cache.RecipeByID(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cauliflower Rice", recipe.Recipe)

	_, ok, err = cache.RecipeByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWarmSkipsUpstream(t *testing.T) {
	fetcher := &stubFetcher{}
	cache := New(fetcher, nil)
	ctx := context.Background()

	require.NoError(t, cache.Warm(ctx,
		[]model.Recipe{{ID: 7, Recipe: "Egg Muffins"}},
		[]model.Category{{ID: 1, Category: "Breakfast"}},
	))

	recipes, err := cache.Recipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	categories, err := cache.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	assert.Equal(t, int64(0), fetcher.recipeCalls.Load())
	assert.Equal(t, int64(0), fetcher.categoryCalls.Load())
}
