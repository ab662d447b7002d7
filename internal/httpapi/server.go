// SPDX-License-Identifier: MIT

// Package httpapi is the gin HTTP surface of the route planner: airports,
// graph rebuilds, route and reachability queries, and the risk calculator.
//
// Errors map to status codes in one place (statusFor):
//
//	dijkstra.ErrNoRoute         → 404 with {"route": null}
//	planner.ErrNotInitialized   → 503
//	invalid query or node list  → 400
//	anything else               → 500
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/planner"
)

// HeaderRequestID carries the request correlation id in both directions.
const HeaderRequestID = "X-Request-ID"

// Loader produces the airport list for POST /api/graph/reload.
type Loader func(ctx context.Context) ([]core.Node, error)

// NodeSaver persists the node list of a successful rebuild.
type NodeSaver interface {
	SaveNodes(ctx context.Context, nodes []core.Node) error
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLoader enables POST /api/graph/reload.
func WithLoader(l Loader) Option {
	return func(s *Server) { s.loader = l }
}

// WithNodeSaver stores every node list that was published successfully.
func WithNodeSaver(ns NodeSaver) Option {
	return func(s *Server) { s.saver = ns }
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithAllowOrigins restricts CORS to the listed origins; none allows all.
func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// Server serves one Planner over HTTP.
type Server struct {
	planner *planner.Planner
	log     *slog.Logger
	loader  Loader
	saver   NodeSaver
	metrics http.Handler
	origins []string

	reloads singleflight.Group
}

// New returns a Server for p.
func New(p *planner.Planner, opts ...Option) *Server {
	s := &Server{planner: p, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router builds the gin engine with middleware and routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		s.requestID(),
		s.accessLog(),
		s.recovery(),
		cors.New(s.corsConfig()),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.GET("/airports", s.listAirports)
	api.GET("/graph", s.getGraph)
	api.POST("/graph", s.postGraph)
	api.POST("/graph/reload", s.reloadGraph)
	api.GET("/route", s.getRoute)
	api.GET("/reachable", s.getReachable)
	api.POST("/risk", s.postRisk)

	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if len(s.origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.origins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AddAllowHeaders(HeaderRequestID)
	config.AddExposeHeaders(HeaderRequestID)

	return config
}
