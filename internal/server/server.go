package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvet/interviewd/internal/interview"
)

// Server is the thin HTTP layer over the orchestrator. It binds typed
// request bodies, delegates, and maps the error taxonomy to status codes.
type Server struct {
	orchestrator *interview.Orchestrator
	store        interview.Store
	router       *gin.Engine
}

// NewServer creates a new Server and registers its routes
func NewServer(orchestrator *interview.Orchestrator, store interview.Store) *Server {
	s := &Server{
		orchestrator: orchestrator,
		store:        store,
		router:       gin.Default(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/interview/start", s.handleStart)
	s.router.POST("/interview/:id/answer", s.handleAnswer)
	s.router.POST("/interview/:id/end", s.handleEnd)

	s.router.GET("/interviews", s.handleList)
	s.router.GET("/interview/:id", s.handleGet)
	s.router.DELETE("/interview/:id", s.handleDelete)
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the underlying handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, interview.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, interview.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, interview.ErrModelUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
