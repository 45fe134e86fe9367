package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/talentbridge/talentbridge-backend/internal/handlers"
	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	MatchingHandler *handlers.MatchingHandler
	SSEHandler      *handlers.SSEHandler
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestLogger(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Offers
		api.POST("/offers/:id/match", cfg.MatchingHandler.MatchOffer)
		api.POST("/offers/:id/publish", cfg.MatchingHandler.PublishOffer)
		api.GET("/offers/:id/matches", cfg.MatchingHandler.GetOfferMatches)
		// Talents
		api.POST("/talents/:id/rematch", cfg.MatchingHandler.RematchTalent)
		api.PUT("/talents/:id/skills", cfg.MatchingHandler.UpdateTalentSkills)
		// Classification
		api.POST("/classify", cfg.MatchingHandler.Classify)
		// SSE
		api.GET("/sse/stream", cfg.SSEHandler.SSEStream)
	}

	return router
}
