package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/api"
	"github.com/ShyneADL/recipe-app/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth     *api.AuthHandler
	Recipe   *api.RecipeHandler
	Wishlist *api.WishlistHandler
	Profile  *api.ProfileHandler

	Validator    middleware.TokenValidator
	CatalogLimit *middleware.RateLimiter
	AuthLimit    *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Page-level gates. The frontend owns the markup; these routes
	// exist so direct navigation gets the same redirect behavior the
	// web client enforced.
	router.GET("/login", middleware.RedirectAuthenticated(cfg.SessionCookie), pageStub("login"))
	router.GET("/signup", middleware.RedirectAuthenticated(cfg.SessionCookie), pageStub("signup"))
	router.GET("/wishlist", middleware.RequireSessionPage(cfg.SessionCookie), pageStub("wishlist"))
	router.GET("/profile", middleware.RequireSessionPage(cfg.SessionCookie), pageStub("profile"))

	v1 := router.Group("/api/v1")

	// Public catalog routes
	catalog := v1.Group("")
	if h.CatalogLimit != nil {
		catalog.Use(h.CatalogLimit.RateLimitMiddleware())
	}
	{
		catalog.GET("/recipes", h.Recipe.ListRecipes)
		catalog.GET("/recipes/:id", h.Recipe.GetRecipe)
		catalog.GET("/categories", h.Recipe.ListCategories)
		catalog.GET("/search", h.Recipe.SearchRecipes)
	}

	// Auth routes
	auth := v1.Group("/auth")
	if h.AuthLimit != nil {
		auth.Use(h.AuthLimit.RateLimitMiddleware())
	}
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
		auth.GET("/google", h.Auth.Google)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(h.Validator, cfg.SessionCookie))
	{
		wishlist := protected.Group("/wishlist")
		{
			wishlist.GET("", h.Wishlist.ListWishlist)
			wishlist.POST("/:id/toggle", h.Wishlist.ToggleWishlist)
		}

		protected.GET("/theme", h.Wishlist.GetTheme)
		protected.PUT("/theme", h.Wishlist.SetTheme)

		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PUT("", h.Profile.UpdateProfile)
			profile.POST("/picture", h.Profile.UploadProfilePicture)
		}
	}

	return router
}

func pageStub(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}
