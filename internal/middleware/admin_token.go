package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/pkg/response"
)

// AdminTokenAuth gates the admin routes with a single shared bearer token.
// An empty configured token locks the routes entirely.
func AdminTokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		provided := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			provided = strings.TrimSpace(parts[1])
		}

		if token == "" || provided != token {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Next()
	}
}
