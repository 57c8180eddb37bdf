package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studysaathi/studysaathi/internal/config"
)

// maxBodyBytes matches the largest note or chat history a client sends.
const maxBodyBytes = 10 << 20

// Router builds the gin engine serving every route.
func (s *Server) Router(cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))
	r.Use(CORS(cfg.CORS))
	r.Use(BodyLimit(maxBodyBytes))

	r.GET("/", s.welcome)
	r.GET("/api/health", s.health)

	limiter := NewRateLimiter(cfg.RateLimit)

	ai := r.Group("/api/ai")
	{
		ai.POST("/track/time", s.trackTime)
		ai.POST("/track/confidence", s.trackConfidence)
		ai.GET("/track/progress/:userId", s.topicProgress)
		ai.GET("/track/recommendations/:userId", s.recommendations)

		ai.GET("/streak/:userId", s.getStreak)
		ai.POST("/streak/update", s.updateStreak)

		ai.POST("/notes", s.saveNote)
		ai.GET("/notes/:userId", s.listNotes)

		ai.PUT("/profile", s.saveProfile)
		ai.GET("/profile/:userId", s.getProfile)

		ai.GET("/study-plan/:userId", s.activeStudyPlan)
	}

	generated := ai.Group("")
	generated.Use(limiter.Middleware())
	{
		generated.POST("/prompt", s.prompt)
		generated.POST("/chat", s.chat)
		generated.POST("/study-content", s.studyContent)
		generated.POST("/ask-doubt", s.askDoubt)
		generated.POST("/smart-suggestions", s.smartSuggestions)
		generated.POST("/popular-topics", s.popularTopics)
		generated.POST("/smart-learning", s.smartLearning)
		generated.POST("/study-plan", s.generateStudyPlan)
		generated.POST("/study-plan/adjust", s.adjustStudyPlan)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})
	return r
}

// GET /
func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to StudySaathi AI API", "status": "running"})
}

// GET /api/health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": s.now().UTC().Format(time.RFC3339)})
}
