package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ShyneADL/recipe-app/internal/gateway"
)

// RecipePage is the paginated recipe list response.
type RecipePage struct {
	Recipes    interface{} `json:"recipes"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
}

// userID pulls the authenticated user out of the request context.
func userID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// respondUpstreamError maps a catalog fetch failure to a response. A
// rejected API key gets its own message so operators can tell a config
// problem from an upstream outage.
func respondUpstreamError(c *gin.Context, err error) {
	var ue *gateway.UpstreamError
	if errors.As(err, &ue) && ue.BadCredentials() {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid or missing recipe API key"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load recipes"})
}
