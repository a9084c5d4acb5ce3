package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/astfn/as-enum/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	aserrors "github.com/astfn/as-enum/pkg/errors"
)

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// system endpoints bypass rate limiting
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for pattern, h := range s.config.Handlers {
		mux.HandleFunc(pattern, s.withMiddleware(h))
	}

	return mux
}

// RootResponse describes the service and its routes.
type RootResponse struct {
	Name      string   `json:"name" yaml:"name"`
	Version   string   `json:"version" yaml:"version"`
	Ready     bool     `json:"ready" yaml:"ready"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Routes    []string `json:"routes" yaml:"routes"`
}

func (s *Server) rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteError(w, r, http.StatusMethodNotAllowed, aserrors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{"method": r.Method})
			return
		}
		if r.URL.Path != "/" {
			WriteError(w, r, http.StatusNotFound, aserrors.ErrCodeNotFound,
				"Route not found", false, map[string]any{"path": r.URL.Path})
			return
		}

		slog.Debug("handling root route",
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		resp := RootResponse{
			Name:      s.config.Name,
			Version:   s.config.Version,
			Ready:     s.isReady(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Routes:    s.routes(),
		}

		serializer.RespondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) routes() []string {
	routes := []string{"/health", "/ready", "/metrics"}
	for pattern := range s.config.Handlers {
		if pattern != "/" {
			routes = append(routes, pattern)
		}
	}
	slices.Sort(routes)
	return routes
}
