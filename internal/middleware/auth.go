package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

const (
	accountKey   = "account"
	userKey      = "user"
	authTokenKey = "auth_token"
)

type AuthMiddleware struct {
	authService *services.AuthService
}

func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireProvider authenticates server-side callers using an access/secret key
// pair sent as "OMGServer base64(access:secret)".
func (m *AuthMiddleware) RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := parseCredentials(c, auth.SchemeServer)
		if !ok {
			return
		}

		account, err := m.authService.AuthenticateProvider(creds.ID, creds.Secret)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "client:invalid_access_secret_key",
				"Invalid access and/or secret key.")
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// RequireClient authenticates end users using an API key and an auth token
// sent as "OMGClient base64(api_key:auth_token)".
func (m *AuthMiddleware) RequireClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := parseCredentials(c, auth.SchemeClient)
		if !ok {
			return
		}

		user, err := m.authService.AuthenticateClient(creds.ID, creds.Secret)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAPIKey) {
				abortWithError(c, http.StatusUnauthorized, "client:invalid_api_key",
					"The provided API key can't be found or is invalid.")
				return
			}
			abortWithError(c, http.StatusUnauthorized, "user:access_token_not_found",
				"There is no user corresponding to the provided access_token.")
			return
		}

		c.Set(userKey, user)
		c.Set(authTokenKey, creds.Secret)
		c.Next()
	}
}

func parseCredentials(c *gin.Context, scheme string) (*auth.Credentials, bool) {
	creds, err := auth.ParseHeader(c.GetHeader("Authorization"))
	if err != nil || creds.Scheme != scheme {
		abortWithError(c, http.StatusUnauthorized, "client:invalid_auth_scheme",
			"The provided authentication scheme is not supported.")
		return nil, false
	}
	return creds, true
}

func GetAccount(c *gin.Context) *models.Account {
	account, exists := c.Get(accountKey)
	if !exists {
		return nil
	}
	return account.(*models.Account)
}

func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetAuthToken returns the raw auth token the client authenticated with.
func GetAuthToken(c *gin.Context) string {
	return c.GetString(authTokenKey)
}
