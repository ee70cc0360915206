// Package http exposes the dashboard pipeline as a JSON API. Rendering is
// a sink: every dashboard endpoint returns the derived view value and the
// chart layer consumes it as-is.
package http

import (
	"context"
	"net/http"
	"time"

	"findash/internal/middleware/ratelimit"
	"findash/internal/middleware/trace"
	"findash/internal/services"
)

type Server struct {
	httpServer *http.Server
	svc        *services.DashboardService
	limiter    *ratelimit.Limiter
}

func NewServer(addr string, svc *services.DashboardService) *Server {
	s := &Server{
		svc:     svc,
		limiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/projects", s.handleAddProject)
	mux.HandleFunc("GET /api/projects/{name}/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/projects/{name}/transactions", s.handleAddTransaction)
	mux.HandleFunc("DELETE /api/projects/{name}/transactions/{index}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	tracer := trace.NewMiddleware(clientIP)
	handler := tracer.Middleware(s.limiter.Middleware(mux))

	s.httpServer = &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
