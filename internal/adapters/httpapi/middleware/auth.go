package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/config"
	userPort "yatube/internal/ports/user"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "sessionid"
	// LoginURL is where anonymous users are sent by LoginRequired.
	LoginURL = "/auth/login/"

	userKey   = "user"
	userIDKey = "userID"
)

// Authenticator resolves a session token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*userPort.UserDTO, error)
}

// SessionMiddleware loads the user behind the session cookie, if any.
// Requests without a valid cookie continue anonymously.
func SessionMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			config.Logger.Debug("Session rejected", zap.Error(err))
			c.Next()
			return
		}

		c.Set(userKey, u)
		c.Set(userIDKey, u.ID)
		c.Next()
	}
}

// LoginRequired redirects anonymous users to the login page and brings
// them back to the requested URL afterwards.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the logged-in user or nil.
func CurrentUser(c *gin.Context) *userPort.UserDTO {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*userPort.UserDTO)
	return u
}

// SetSession writes the session cookie.
func SetSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// ClearSession expires the session cookie.
func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
}
