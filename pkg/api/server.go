// Package api exposes the HTTP surface: request submission, run
// inspection and cancellation, conversation history, and health.
package api

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/pkg/queue"
	"github.com/scenecraft/scenecraft/pkg/services"
)

// RunService is the run lifecycle surface the handlers need.
type RunService interface {
	CreateRun(ctx context.Context, input services.CreateRunInput) (*ent.AgentRun, error)
	GetRun(ctx context.Context, runID string) (*ent.AgentRun, error)
	ListRuns(ctx context.Context, status string, limit int) ([]*ent.AgentRun, error)
	CancelRun(ctx context.Context, runID string) error
}

// ConversationService is the conversation surface the handlers need.
type ConversationService interface {
	CreateConversation(ctx context.Context) (*ent.Conversation, error)
	AddUserMessage(ctx context.Context, conversationID, content string) (*ent.Message, error)
	GetMessages(ctx context.Context, conversationID string) ([]*ent.Message, error)
	ListConversations(ctx context.Context, limit int) ([]*ent.Conversation, error)
}

// Pool is the worker pool surface the handlers need.
type Pool interface {
	CheckBacklog(ctx context.Context) error
	CancelRun(runID string) bool
	Health() *queue.PoolHealth
}

// Server wires the echo router over the service layer.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	db          *stdsql.DB
	runService  RunService
	convService ConversationService
	pool        Pool
}

// NewServer creates the API server and registers all routes.
func NewServer(db *stdsql.DB, runs RunService, convs ConversationService, pool Pool) *Server {
	s := &Server{
		db:          db,
		runService:  runs,
		convService: convs,
		pool:        pool,
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/requests", s.submitRequestHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	v1.GET("/conversations", s.listConversationsHandler)
	v1.POST("/conversations", s.createConversationHandler)
	v1.GET("/conversations/:id/messages", s.getMessagesHandler)

	s.echo = e
	return s
}

// Start serves HTTP on addr; blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP makes the server usable as a plain handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
