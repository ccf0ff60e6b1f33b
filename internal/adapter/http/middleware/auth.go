package middleware

import (
	"context"
	"net/http"
	"strings"

	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg"
	"fieldtech/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token for clients that keep cookies
// instead of sending a bearer header.
const SessionCookie = "session"

const userContextKey = "user"

// TokenVerifier checks a session token and returns its user.
type TokenVerifier interface {
	Verify(token string) (interfaces.SessionUser, error)
}

// Auth requires a valid session token, read from "Authorization: Bearer"
// or, failing that, from the session cookie.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessionToken(c)
		if !ok {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		user, err := verifier.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(userContextKey, user)
		ctx := context.WithValue(c.Request.Context(), logger.UserKey, user.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// GetUser gets the authenticated user from gin context.
func GetUser(c *gin.Context) (interfaces.SessionUser, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return interfaces.SessionUser{}, false
	}
	user, ok := v.(interfaces.SessionUser)
	return user, ok
}
