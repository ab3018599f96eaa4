package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
)

type AppController struct {
	appService ports.AppService
	logger     *zap.Logger
}

func NewAppController(
	r *gin.Engine,
	appService ports.AppService,
	logger *zap.Logger,
) *AppController {
	ac := &AppController{
		appService: appService,
		logger:     logger,
	}

	r.GET(RouteStatus, ac.StatusHandler)
	r.GET(RouteStats, ac.StatsHandler)

	return ac
}

func (ac *AppController) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ac.appService.Status(c.Request.Context()))
}

func (ac *AppController) StatsHandler(c *gin.Context) {
	stats, err := ac.appService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, ac.logger, "Stats()", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
