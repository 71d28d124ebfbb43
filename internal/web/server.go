package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/releaser/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Services are the use cases exposed over HTTP.
type Services struct {
	Projects service.ProjectService
	Issues   service.IssueService
	Releases service.ReleaseService
	Opinions service.OpinionService
}

// Server is the releaser JSON API.
type Server struct {
	svc    Services
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates the API server and registers its routes.
func NewServer(svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := gin.New()

	s := &Server{
		svc:    svc,
		logger: logger,
		router: router,
	}

	router.Use(gin.Recovery(), s.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)

		api.GET("/projects/:projectID/releases", s.handleListReleases)
		api.POST("/projects/:projectID/releases", s.handleCreateRelease)
		api.GET("/releases/:releaseID", s.handleGetRelease)
		api.PATCH("/releases/:releaseID", s.handleUpdateRelease)
		api.DELETE("/releases/:releaseID", s.handleDeleteRelease)

		api.POST("/releases/:releaseID/opinions", s.handleAddOpinion)
		api.DELETE("/opinions/:opinionID", s.handleDeleteOpinion)

		api.GET("/projects/:projectID/issues", s.handleListIssues)
		api.POST("/projects/:projectID/issues", s.handleCreateIssue)
		api.PATCH("/issues/:issueID/lifecycle", s.handleUpdateLifeCycle)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}
