// Package server exposes route diversification over HTTP.
//
// Every request without a session runs on a fresh copy of the network, so
// the answer only depends on the request. Sessions keep their own visit
// counters across requests and produce progressively different routes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/internal/telemetry"
)

// Server limits.
const (
	maxK            = 50
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// Deps holds everything the server needs.
type Deps struct {
	Log         *logrus.Logger
	Graph       *core.Graph
	DefaultK    int
	CORSOrigins []string
	SessionTTL  time.Duration
	Version     string
}

// Server is the HTTP front end of the diversification engine.
type Server struct {
	log      *logrus.Logger
	graph    *core.Graph
	k        int
	version  string
	sessions *Sessions
	engine   *gin.Engine
}

// New builds the server and its router.
func New(deps Deps) *Server {
	s := &Server{
		log:      deps.Log,
		graph:    deps.Graph,
		k:        deps.DefaultK,
		version:  deps.Version,
		sessions: NewSessions(deps.Graph, deps.SessionTTL),
	}
	s.engine = s.router(deps.CORSOrigins)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Sessions returns the session registry.
func (s *Server) Sessions() *Sessions { return s.sessions }

// Run serves on addr and sweeps idle sessions until ctx is cancelled or
// the listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.WithField("addr", addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		return s.sessions.Janitor(ctx, sweepInterval)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) router(origins []string) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(requestID())
	r.Use(ginLogger(s.log))
	r.Use(gin.Recovery())
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       1 * time.Hour,
		}))
	}
	r.Use(telemetry.Middleware())

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(telemetry.Handler()))

	api := r.Group("/api")
	api.GET("/graph", s.network)
	api.POST("/routes", s.routes)
	api.POST("/sessions", s.createSession)
	api.GET("/sessions/:id", s.getSession)
	api.DELETE("/sessions/:id", s.deleteSession)
	api.POST("/sessions/:id/reset", s.resetSession)

	return r
}

// requestID tags every request with a fresh server-side id.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(requestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}
