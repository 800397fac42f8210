// pkg/diag/server.go
package diag

import (
	"context"
	"net"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/slipstream-mp/slipstream-server/pkg/config"
	"github.com/slipstream-mp/slipstream-server/pkg/middleware/logger"
	"github.com/slipstream-mp/slipstream-server/pkg/middleware/metrics"
	"github.com/slipstream-mp/slipstream-server/pkg/subsystem"
	"github.com/slipstream-mp/slipstream-server/pkg/transport/httpx"
)

// SubsystemName keys this server's own entry in the status registry.
const SubsystemName = "HTTPServer"

// StatusRegistry is the slice of the registry contract the server needs:
// write its own key, read all of them.
type StatusRegistry interface {
	subsystem.StatusWriter
	subsystem.StatusReader
}

// Server is the embedded diagnostics listener. It owns its lifecycle
// explicitly: New wires routes, Start binds and serves, Stop drains. No
// detached goroutine outlives Stop.
type Server struct {
	cfg config.HTTP
	reg StatusRegistry
	srv *http.Server
	ln  net.Listener
	log *zap.Logger
}

func New(cfg config.HTTP, reg StatusRegistry, r httpx.Router, logMW *logger.Middleware, metricsHandler http.Handler, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, reg: reg, log: log}

	r.Use(chimd.RequestID, chimd.Recoverer)
	r.Use(logMW.Middleware())
	r.Use(metrics.Collect())

	r.Get("/", http.HandlerFunc(handleRoot))
	r.Get("/health", http.HandlerFunc(s.handleHealth))
	r.Get(magicPath, http.HandlerFunc(handleMagic))
	r.Handle(http.MethodGet, "/metrics", metricsHandler)
	if cfg.AdminSecret != "" {
		r.Get("/status", guard(cfg.AdminSecret, http.HandlerFunc(s.handleStatus)))
	}

	s.srv = &http.Server{
		Handler:      r.Mux(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler exposes the wired routes; tests exercise them without a listener.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Start publishes Starting, binds the configured address and begins serving
// in the background. Good is published once the listener is up; on error the
// last published state is left as-is and the caller decides what to do with
// the failure.
func (s *Server) Start() error {
	s.reg.Set(SubsystemName, subsystem.Starting)
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	s.ln = ln
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error("http server failed", zap.Error(err))
		}
	}()
	s.reg.Set(SubsystemName, subsystem.Good)
	s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr reports the bound address; empty before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop drains in-flight requests and records the shutdown in the registry.
func (s *Server) Stop(ctx context.Context) error {
	s.reg.Set(SubsystemName, subsystem.ShuttingDown)
	err := s.srv.Shutdown(ctx)
	s.reg.Set(SubsystemName, subsystem.Shutdown)
	return err
}
