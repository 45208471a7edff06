package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the service routes: the form page, the submission
// endpoint, and the health and metrics probes. The page handler is optional;
// without it the service is API-only.
func NewRouter(submission *SubmissionHandler, page gin.HandlerFunc, logger *log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	if page != nil {
		router.GET("/", page)
	}
	router.POST("/api/contact-form/", submission.Handle)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
