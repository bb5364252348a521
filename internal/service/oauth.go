package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/models"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleUser is the subset of the userinfo response we use.
type GoogleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OAuthService implements the redirect-based Google login flow. The
// caller never sees a success return from the initial call; the
// outcome only becomes observable when Google redirects back to the
// callback with a code.
type OAuthService struct {
	db           *gorm.DB
	authService  *AuthService
	clientID     string
	clientSecret string
	redirectURL  string
	client       *http.Client
}

func NewOAuthService(db *gorm.DB, authService *AuthService, cfg *config.Config) *OAuthService {
	return &OAuthService{
		db:           db,
		authService:  authService,
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURL:  cfg.GoogleRedirectURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether Google login is configured.
func (s *OAuthService) Enabled() bool {
	return s.clientID != ""
}

// AuthURL builds the Google authorize URL to redirect the visitor to.
func (s *OAuthService) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", s.clientID)
	q.Set("redirect_uri", s.redirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

// Exchange trades the callback code for an access token and fetches
// the user's identity.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("redirect_uri", s.redirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in response")
	}

	return s.fetchUserInfo(ctx, tokenResp.AccessToken)
}

// LoginOrCreate upserts the account for a verified Google identity and
// returns a session token. Existing email accounts are linked rather
// than duplicated.
func (s *OAuthService) LoginOrCreate(ctx context.Context, gu *GoogleUser) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("google_id = ?", gu.ID).Or("email = ?", gu.Email).First(&user).Error
	switch {
	case err == nil:
		if user.GoogleID == "" {
			user.GoogleID = gu.ID
			if err := s.db.Save(&user).Error; err != nil {
				return "", nil, err
			}
		}
	case err == gorm.ErrRecordNotFound:
		// OAuth accounts get a random unusable password hash so the
		// password login path can never match.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return "", nil, hashErr
		}
		user = models.User{
			Name:         gu.Name,
			Email:        gu.Email,
			PasswordHash: string(hash),
			GoogleID:     gu.ID,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return "", nil, err
		}
		profile := models.UserProfile{
			UserID:   user.ID,
			Username: gu.Name,
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return "", nil, err
		}
	default:
		return "", nil, err
	}

	token, err := s.authService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *OAuthService) fetchUserInfo(ctx context.Context, accessToken string) (*GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var gu GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if gu.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return &gu, nil
}
