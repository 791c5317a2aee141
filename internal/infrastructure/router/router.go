package router

import (
	"net/http"

	httpHandler "boardingpass-service/internal/interface/http"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/templates"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with middleware, pages, API, health and metrics routes
func NewRouter(handler *httpHandler.BoardingPassHandler, logger logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpHandler.RequestID())
	r.Use(httpHandler.RequestLogger(logger))
	r.SetHTMLTemplate(templates.Admin())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.Register(r)

	return r
}
