// Package mockapi implements a development stand-in for the Remote Order
// Service. It serves the same flat REST surface the production service
// exposes (the original deployment was a json-server instance), and doubles
// as the backend for the store and client tests.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"orderdesk/internal/models"
	"orderdesk/pkg/logger"
)

// Server serves an in-memory order dataset over the order service REST API.
type Server struct {
	router  *mux.Router
	logger  logger.Logger
	orders  []models.Order
	details map[int]models.OrderDetail
}

// New creates a Server for the given dataset. A nil dataset serves the
// built-in seed data.
func New(l logger.Logger, dataset *Dataset) *Server {
	if dataset == nil {
		dataset = Seed()
	}

	s := &Server{
		router:  mux.NewRouter(),
		logger:  l,
		orders:  dataset.Orders,
		details: dataset.Details,
	}

	s.setupRoutes()
	return s
}

// Router returns the server's HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all the routes for the mock service
func (s *Server) setupRoutes() {
	s.router.Use(s.loggingMiddleware)

	s.router.HandleFunc("/health", s.healthCheckHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/orders", s.getOrdersHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/order_details/{id}", s.getOrderDetailHandler).Methods(http.MethodGet)
}

// Middleware for logging requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		s.logger.Info("Request processed",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"duration", time.Since(start),
			"remoteAddr", r.RemoteAddr,
		)
	})
}

// respondWithError sends a JSON response with an error message
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)

	if err != nil {
		s.logger.Error("Failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
