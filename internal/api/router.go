// Package api exposes the classifier over HTTP with gin.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/session"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Classifier     Classifier
	Models         classify.Models
	Extractor      Extractor
	Sessions       *session.Store
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(Logger(log))
	router.Use(Recovery(log))
	if d.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = d.MaxUploadBytes
	}

	healthHandler := NewHealthHandler(d.Models)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	classifyHandler := NewClassifyHandler(d.Classifier, d.Extractor, d.Sessions, d.MaxUploadBytes, log)
	catalogHandler := NewCatalogHandler()

	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", classifyHandler.Classify)
		v1.POST("/classify/upload", classifyHandler.Upload)

		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id/result", classifyHandler.GetResult)
			sessions.DELETE("/:id/result", classifyHandler.ClearResult)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.Categories)
			categories.GET("/:name/jobs", catalogHandler.Jobs)
			categories.GET("/:name/skills", catalogHandler.Skills)
			categories.GET("/:name/tips", catalogHandler.Tips)
		}

		v1.GET("/insights", catalogHandler.Insights)
		v1.GET("/samples", catalogHandler.Samples)
		v1.GET("/samples/:category", catalogHandler.Sample)
	}

	return router
}
