package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/services"
	"files-manager-api/internal/domain/user"
)

const (
	HeaderToken = "X-Token"
	CtxUser     = "user"
)

// AuthMiddleware resolves X-Token to a user and stores it under CtxUser.
func AuthMiddleware(logger *zap.Logger, auth ports.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := auth.ResolveUser(c.Request.Context(), c.GetHeader(HeaderToken))
		if err != nil {
			if errors.Is(err, services.ErrStorageUnavailable) {
				logger.Error("ResolveUser() error", zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					gin.H{"error": "storage unavailable"},
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Unauthorized"},
			)
			return
		}

		c.Set(CtxUser, u)

		c.Next()
	}
}

// UserFromContext returns the user set by AuthMiddleware.
func UserFromContext(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}
