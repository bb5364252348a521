package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Page-level route gating. Unlike the API middleware these issue
// redirects, matching how the web client steered visitors: protected
// pages bounce anonymous visitors to the login page with the original
// destination preserved, and the auth pages bounce signed-in visitors
// home. Only cookie presence is checked here; bad tokens fail later at
// the API layer.

// RequireSessionPage guards pages like /wishlist and /profile.
func RequireSessionPage(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(cookieName); err != nil || cookie == "" {
			redirect := url.Values{"redirect": {c.Request.URL.Path}}
			c.Redirect(http.StatusFound, "/login?"+redirect.Encode())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated guards /login and /signup: an authenticated
// visitor has no business there.
func RedirectAuthenticated(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
