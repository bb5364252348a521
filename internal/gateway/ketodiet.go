// Package gateway talks to the keto-diet API on RapidAPI. The API has
// no server-side filtering or paging: both endpoints return the full
// collection, and everything downstream works on the cached copy.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/model"
)

// UpstreamError is returned for any non-2xx response from the recipe
// API. 401/403 are flagged separately so the UI can point at the API
// key instead of a generic failure.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	if e.BadCredentials() {
		return fmt.Sprintf("recipe API rejected credentials (%s): check RAPID_API_KEY", e.Status)
	}
	return fmt.Sprintf("recipe API request failed: %s", e.Status)
}

// BadCredentials reports whether the upstream rejected the API key.
func (e *UpstreamError) BadCredentials() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client is the keto-diet API client.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	http    *http.Client
}

// Catalog bundles the two upstream collections.
type Catalog struct {
	Recipes    []model.Recipe   `json:"recipes"`
	Categories []model.Category `json:"categories"`
}

// NewClient creates a client for the configured upstream.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.RecipeAPIBaseURL,
		apiKey:  cfg.RecipeAPIKey,
		apiHost: cfg.RecipeAPIHost,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchRecipes retrieves the full recipe collection.
func (c *Client) FetchRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := c.get(ctx, "/", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// FetchCategories retrieves the category list.
func (c *Client) FetchCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchAll issues the recipe and category requests in parallel and
// joins them. There is no ordering requirement between the two; the
// first error wins and cancels the other request.
func (c *Client) FetchAll(ctx context.Context) (*Catalog, error) {
	var catalog Catalog

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recipes, err := c.FetchRecipes(ctx)
		if err != nil {
			return err
		}
		catalog.Recipes = recipes
		return nil
	})
	g.Go(func() error {
		categories, err := c.FetchCategories(ctx)
		if err != nil {
			return err
		}
		catalog.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build recipe API request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("recipe API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode recipe API response: %w", err)
	}
	return nil
}
