package server

import (
	"fmt"
	"log/slog"

	"ctchen222/minimax-tic-tac-toe/internal/api/controller"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

func NewServer(analysisController *controller.AnalysisController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), traceRequests())

	s := &Server{engine: engine}
	s.registerHandlers(analysisController)
	return s
}

func (s *Server) registerHandlers(analysisController *controller.AnalysisController) {
	s.engine.GET("/healthz", controller.Health)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/analyze", analysisController.Analyze)
}

// Engine returns the HTTP handler serving every route.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// traceRequests opens a span per request and logs its outcome.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := tracer.Start(c.Request.Context(), fmt.Sprintf("server %s %s", c.Request.Method, route), trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
		))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "Server error")
		}
		slog.DebugContext(ctx, "request served", "http.method", c.Request.Method, "http.route", route, "http.status_code", status)
	}
}
