// Package handlers implements the HTTP handlers for Sky Herald: the
// trusted ingestion endpoint that accepts portal events, and the
// JWT-guarded inbox API the web frontend polls.
package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"sky-herald.io/herald/ent"
	"sky-herald.io/herald/internal/api/middleware"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/notification"
)

// Ingestor materializes an event into notification records and enqueues
// them for channel fan-out.
type Ingestor interface {
	Ingest(ctx context.Context, event domain.Event) (*notification.Result, error)
	QueueLen() int
}

// Server implements all API handlers.
type Server struct {
	client   *ent.Client
	pool     *pgxpool.Pool
	jwtCfg   middleware.JWTConfig
	ingestor Ingestor
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	JWTCfg    middleware.JWTConfig
	Ingestor  Ingestor
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:   deps.EntClient,
		pool:     deps.Pool,
		jwtCfg:   deps.JWTCfg,
		ingestor: deps.Ingestor,
	}
}

// envelope is the response shape shared by the ingestion endpoints.
type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
