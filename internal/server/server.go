package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"NewsLens/internal/usecase"
)

// Version reported by the status endpoints.
const Version = "1.7.0"

// Server exposes the query pipeline over HTTP.
type Server struct {
	pipeline    *usecase.Pipeline
	environment string
	logger      *slog.Logger
}

// New builds the HTTP boundary around the pipeline.
func New(pipeline *usecase.Pipeline, environment string, log *slog.Logger) *Server {
	return &Server{
		pipeline:    pipeline,
		environment: environment,
		logger:      log,
	}
}

// Router assembles the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())
	router.Use(s.cors())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.POST("/query", s.handleQuery)

	return router
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// cors applies the permissive policy the frontend expects.
func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "NewsLens API is running",
		"version": Version,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     Version,
		"environment": s.environment,
	})
}

// QueryRequest is the inbound body for the query endpoint.
type QueryRequest struct {
	Query string `json:"query"`
}

// handleQuery runs the pipeline. Pipeline-internal failures never surface
// as HTTP errors; only malformed requests yield a 4xx.
func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a query field"})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query field is required"})
		return
	}

	s.info("processing query", "query", req.Query, "request_id", c.GetString("request_id"))

	summary := s.pipeline.Process(c.Request.Context(), req.Query)

	s.info("query processed", "sources", len(summary.Sources), "request_id", c.GetString("request_id"))
	c.JSON(http.StatusOK, summary)
}

func (s *Server) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}
