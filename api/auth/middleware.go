package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/models"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "user_username"
	sessionKeyIsAdmin  = "user_is_admin"

	// ContextUserKey is the gin context key holding the *models.User.
	ContextUserKey = "user"
)

// RequireAuth rejects requests without a valid session and attaches the
// session's user to the request context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionKeyUserID)
		if userID == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		// create user model from session data
		user := &models.User{
			ID:       userID.(uint),
			Username: getSessionString(session, sessionKeyUsername),
			IsAdmin:  getSessionBool(session, sessionKeyIsAdmin),
		}

		c.Set(ContextUserKey, user)
	}
}

// RequireAdmin rejects requests from non-admin users. Must run after
// RequireAuth.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet(ContextUserKey).(*models.User)
		if !ok || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUserKey).(*models.User)
}

func getSessionString(session sessions.Session, key string) string {
	if v, ok := session.Get(key).(string); ok {
		return v
	}
	return ""
}

func getSessionBool(session sessions.Session, key string) bool {
	if v, ok := session.Get(key).(bool); ok {
		return v
	}
	return false
}
