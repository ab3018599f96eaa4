package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/interface/api/rest/dto/auth"
	"files-manager-api/internal/interface/api/rest/middleware"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.GET(RouteConnect, ac.ConnectHandler)
	r.GET(RouteDisconnect, ac.DisconnectHandler)

	return ac
}

// ConnectHandler exchanges HTTP Basic credentials for a session token.
func (ac *AuthController) ConnectHandler(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := ac.authService.Connect(c.Request.Context(), email, password)
	if err != nil {
		respondError(c, ac.logger, "Connect()", err)
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{Token: token})
}

func (ac *AuthController) DisconnectHandler(c *gin.Context) {
	if err := ac.authService.Disconnect(c.Request.Context(), c.GetHeader(middleware.HeaderToken)); err != nil {
		respondError(c, ac.logger, "Disconnect()", err)
		return
	}

	c.Status(http.StatusNoContent)
}
