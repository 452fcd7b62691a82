package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-food-store/internal/auth"
	"github.com/safar/go-food-store/internal/logger"
	"go.uber.org/zap"
)

const adminContextKey = "admin"

// RequireAdminToken rejects requests without a valid bearer token issued by
// Login. The verified username is stored under "admin".
func RequireAdminToken(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			logger.FromContext(c).Warn("Rejected admin token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Set(adminContextKey, claims.Username)
		c.Next()
	}
}
