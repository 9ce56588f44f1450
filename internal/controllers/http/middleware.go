package http

import (
	"net/http"
	"strings"

	"foodcourt/internal/domain"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// Authenticate resolves the bearer token and stashes the account on the
// gin context. Requests without a valid token are rejected.
func (h *Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := h.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	return v.(*domain.User)
}
