package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/service"
)

const (
	sessionMaxAge = 24 * 60 * 60
	stateCookie   = "oauth_state"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	authService  *service.AuthService
	oauthService *service.OAuthService
	cookieName   string
	secure       bool
}

func NewAuthHandler(authService *service.AuthService, oauthService *service.OAuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		oauthService: oauthService,
		cookieName:   cfg.SessionCookie,
		secure:       config.IsProduction(),
	}
}

func (h *AuthHandler) setSession(c *gin.Context, token string) {
	c.SetCookie(h.cookieName, token, sessionMaxAge, "/", "", h.secure, true)
}

// Register creates an account. Signup implicitly logs in: the response
// already carries a live session cookie.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Printf("Login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout clears the current session cookie. Other sessions (other
// browsers) stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me resolves the current session. An anonymous visitor gets
// {"user": null} with 200: no session is not an error.
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(h.cookieName)

	user, err := h.authService.CurrentUser(token)
	if err != nil {
		log.Printf("Failed to resolve current user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Google starts the OAuth redirect flow. There is no success return
// here; the outcome arrives at GoogleCallback.
func (h *AuthHandler) Google(c *gin.Context) {
	if !h.oauthService.Enabled() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Google login is not configured"})
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 300, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, h.oauthService.AuthURL(state))
}

// GoogleCallback completes the OAuth flow: verify state, exchange the
// code, upsert the account, set the session and head home. Failures
// land back on the login page.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	gu, err := h.oauthService.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("Google auth exchange failed: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, _, err := h.oauthService.LoginOrCreate(c.Request.Context(), gu)
	if err != nil {
		log.Printf("Google auth login failed: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.setSession(c, token)
	c.Redirect(http.StatusFound, "/")
}
