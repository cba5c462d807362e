// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/internal/config"
	"github.com/katalvlaran/decenttree/logger"
	"github.com/katalvlaran/decenttree/starttree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves tree construction over HTTP.
type Server struct {
	cfg      config.ServerConfig
	build    config.BuildConfig
	registry *starttree.Registry
	log      logger.Logger
	prom     *prometheus.Registry
	metrics  *metrics
	cache    *resultCache
	bridge   *boundary.Bridge
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithRegistry serves the algorithms of r instead of starttree.Default.
func WithRegistry(r *starttree.Registry) Option {
	return func(s *Server) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the request and construction logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPrometheusRegistry registers metrics on reg and serves it at /metrics.
func WithPrometheusRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.prom = reg
		}
	}
}

// New builds a Server and its routes.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg.Server,
		build:    cfg.Build,
		registry: starttree.Default,
		log:      logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prom == nil {
		s.prom = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.prom)
	s.cache = newResultCache(s.cfg.CacheSize, s.build.Precision)
	s.bridge = boundary.New(boundary.WithRegistry(s.registry), boundary.WithLogger(s.log))
	s.engine = s.routes()

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.prom, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.GET("/algorithms", s.handleAlgorithms)
	v1.POST("/trees", s.handleTrees)

	return r
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
