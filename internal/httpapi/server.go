// Package httpapi exposes the report engine over JSON for dashboard front-ends.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vahanlens/vahanlens/internal/contract"
	"go.uber.org/zap"
)

// Server serves the dashboard API on top of a record store.
type Server struct {
	log     *zap.Logger
	addr    string
	store   contract.RecordStore
	baseCfg *contract.Config
	httpSrv *http.Server
}

// NewServer builds the router and wires all dashboard endpoints.
func NewServer(log *zap.Logger, baseCfg *contract.Config, store contract.RecordStore) *Server {
	s := &Server{log: log, addr: baseCfg.ServeAddr, store: store, baseCfg: baseCfg}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/api/filters", s.handleFilters())
	r.Get("/api/summary", s.handleSummary())
	r.Get("/api/growth/yoy", s.handleGrowthYoY())
	r.Get("/api/growth/qoq", s.handleGrowthQoQ())
	r.Get("/api/share", s.handleShare())
	r.Get("/api/trends", s.handleTrends())

	s.httpSrv = &http.Server{Addr: s.addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	return s
}

// Handler exposes the underlying router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// NewLogger builds the production JSON logger used by the serve command.
func NewLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	log, _ := cfg.Build()
	return log
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
