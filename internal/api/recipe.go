package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShyneADL/recipe-app/internal/catalog"
	"github.com/ShyneADL/recipe-app/internal/filter"
)

type RecipeHandler struct {
	cache *catalog.Cache
}

func NewRecipeHandler(cache *catalog.Cache) *RecipeHandler {
	return &RecipeHandler{cache: cache}
}

// ListRecipes serves the discover grid: the cached catalog filtered by
// the request criteria and sliced into pages. An empty page is a valid
// 200 response, distinguishable from a load failure.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.cache.Recipes(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	criteria := criteriaFromQuery(c)
	filtered := filter.Apply(recipes, criteria)

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", filter.DefaultPageSize)

	c.JSON(http.StatusOK, RecipePage{
		Recipes:    filter.Paginate(filtered, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		Total:      len(filtered),
		TotalPages: filter.TotalPages(len(filtered), pageSize),
	})
}

// GetRecipe serves a single recipe from the cached catalog.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, found, err := h.cache.RecipeByID(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// SearchRecipes serves the free-text search page. Only the name query
// applies, so recipes outside the sidebar's default nutrient ranges
// still show up; the response shape matches ListRecipes so the grid
// renders either.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.cache.Recipes(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	criteria := filter.Unbounded()
	criteria.Query = c.Query("q")
	filtered := filter.Apply(recipes, criteria)

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", filter.DefaultPageSize)

	c.JSON(http.StatusOK, RecipePage{
		Recipes:    filter.Paginate(filtered, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		Total:      len(filtered),
		TotalPages: filter.TotalPages(len(filtered), pageSize),
	})
}

// ListCategories serves the cached category list.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.cache.Categories(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// criteriaFromQuery builds filter criteria from the request, starting
// from the identity defaults so absent parameters filter nothing.
func criteriaFromQuery(c *gin.Context) filter.Criteria {
	criteria := filter.Default()

	if v := c.Query("category"); v != "" {
		criteria.Category = v
	}
	if v := c.Query("difficulty"); v != "" {
		criteria.Difficulty = v
	}
	criteria.Query = c.Query("q")

	rangeFromQuery(c, "calories", &criteria.Calories)
	rangeFromQuery(c, "protein", &criteria.Protein)
	rangeFromQuery(c, "carbs", &criteria.Carbs)
	rangeFromQuery(c, "fats", &criteria.Fats)

	return criteria
}

func rangeFromQuery(c *gin.Context, name string, r *filter.Range) {
	if v, err := strconv.ParseFloat(c.Query(name+"_min"), 64); err == nil {
		r.Min = v
	}
	if v, err := strconv.ParseFloat(c.Query(name+"_max"), 64); err == nil {
		r.Max = v
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
