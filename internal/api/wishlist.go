package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShyneADL/recipe-app/internal/catalog"
	"github.com/ShyneADL/recipe-app/internal/model"
	"github.com/ShyneADL/recipe-app/internal/wishlist"
)

type WishlistHandler struct {
	store *wishlist.Store
	cache *catalog.Cache
}

func NewWishlistHandler(store *wishlist.Store, cache *catalog.Cache) *WishlistHandler {
	return &WishlistHandler{store: store, cache: cache}
}

// ListWishlist joins the saved recipe IDs against the cached catalog
// so the client renders full cards. IDs that no longer resolve (the
// upstream removed the recipe) are skipped, not errors.
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ids := h.store.List(uid)

	recipes, err := h.cache.Recipes(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	byID := make(map[int]*model.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	joined := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			joined = append(joined, *r)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":     ids,
		"recipes": joined,
	})
}

// ToggleWishlist flips a recipe in or out of the wishlist and returns
// the new state.
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	wishlisted, err := h.store.Toggle(uid, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         recipeID,
		"wishlisted": wishlisted,
	})
}

// GetTheme returns the saved UI theme.
func (h *WishlistHandler) GetTheme(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": h.store.Theme(uid)})
}

// SetTheme saves the UI theme choice.
func (h *WishlistHandler) SetTheme(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetTheme(uid, req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": h.store.Theme(uid)})
}
