package api

import (
	"net/http"

	feeddomain "github.com/ppgiii/ViZ/internal/domain/feed"
	"github.com/ppgiii/ViZ/pkg/httplib/healthcheck"
	"github.com/ppgiii/ViZ/pkg/logger"
)

// Server exposes the feed over a JSON API alongside the chart page and the
// websocket attach endpoint.
type Server struct {
	usecase feeddomain.Usecase
	ws      http.Handler
	web     http.Handler
	logger  logger.Interface
}

// NewServer creates a new Server.
func NewServer(usecase feeddomain.Usecase, ws, web http.Handler, logger logger.Interface) *Server {
	return &Server{
		usecase: usecase,
		ws:      ws,
		web:     web,
		logger:  logger,
	}
}

// Handler builds the route table wrapped with the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.web)
	mux.Handle("/ws", s.ws)
	mux.HandleFunc("/api/feed", s.handleFeed)
	mux.HandleFunc("/api/ticker", s.handleTicker)

	handler := requestContext(requestLogger(s.logger, mux))

	return healthcheck.HealthCheck{}.Handler(handler)
}
