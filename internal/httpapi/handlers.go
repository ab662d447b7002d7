// SPDX-License-Identifier: MIT

package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airroute/builder"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/internal/catalog"
	"github.com/katalvlaran/airroute/internal/logging"
	"github.com/katalvlaran/airroute/planner"
	"github.com/katalvlaran/airroute/risk"
)

// ErrReloadDisabled is returned by POST /api/graph/reload without a Loader.
var ErrReloadDisabled = errors.New("httpapi: no catalogue configured for reload")

type errorResponse struct {
	Error string `json:"error"`
}

type airportsResponse struct {
	Snapshot string      `json:"snapshot"`
	Count    int         `json:"count"`
	Airports []core.Node `json:"airports"`
}

type graphResponse struct {
	Snapshot *planner.Snapshot `json:"snapshot"`
	Airports []core.Node       `json:"airports,omitempty"`
	Edges    []core.Edge       `json:"edges,omitempty"`
}

type routeResponse struct {
	*dijkstra.Result
	Legs                          int       `json:"legs"`
	RiskProfile                   []float64 `json:"riskProfile"`
	ExponentialFailureProbability float64   `json:"exponentialFailureProbability"`
}

type reachableResponse struct {
	From         string                `json:"from"`
	MaxLegs      int                   `json:"maxLegs"`
	Avoid        []string              `json:"avoid,omitempty"`
	Destinations []planner.Destination `json:"destinations"`
}

type riskRequest struct {
	Segments []risk.Segment `json:"segments"`
}

type riskSegment struct {
	risk.Segment
	Probability float64 `json:"probability"`
}

type riskResponse struct {
	Segments    []riskSegment `json:"segments"`
	Probability float64       `json:"probability"`
	Percent     string        `json:"percent"`
}

func (s *Server) listAirports(c *gin.Context) {
	snap := s.planner.Snapshot()
	if snap == nil {
		s.fail(c, planner.ErrNotInitialized)
		return
	}
	nodes := snap.Graph.Nodes()
	c.JSON(http.StatusOK, airportsResponse{Snapshot: snap.ID, Count: len(nodes), Airports: nodes})
}

// getGraph returns the snapshot summary; ?detail=false drops airports and edges.
func (s *Server) getGraph(c *gin.Context) {
	snap := s.planner.Snapshot()
	if snap == nil {
		s.fail(c, planner.ErrNotInitialized)
		return
	}
	resp := graphResponse{Snapshot: snap}
	if c.DefaultQuery("detail", "true") != "false" {
		resp.Airports = snap.Graph.Nodes()
		resp.Edges = snap.Graph.Edges()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) postGraph(c *gin.Context) {
	var doc catalog.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snap, err := s.rebuild(c.Request.Context(), doc.Nodes)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// reloadGraph reruns the Loader. Concurrent reloads share one execution.
func (s *Server) reloadGraph(c *gin.Context) {
	if s.loader == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: ErrReloadDisabled.Error()})
		return
	}

	// The shared call must not die with whichever caller started it.
	ctx := context.WithoutCancel(c.Request.Context())
	v, err, shared := s.reloads.Do("reload", func() (interface{}, error) {
		nodes, err := s.loader(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalogue: %w", err)
		}
		return s.rebuild(ctx, nodes)
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	logging.FromContext(c.Request.Context()).Debug("catalogue reloaded", "shared", shared)
	c.JSON(http.StatusOK, v)
}

// rebuild publishes nodes and then persists them. A persistence failure is
// logged but does not undo the published snapshot.
func (s *Server) rebuild(ctx context.Context, nodes []core.Node) (*planner.Snapshot, error) {
	snap, err := s.planner.InitializeGraph(ctx, nodes)
	if err != nil {
		return nil, err
	}
	if s.saver != nil {
		if err := s.saver.SaveNodes(ctx, nodes); err != nil {
			logging.FromContext(ctx).Warn("persist catalogue failed", "snapshot", snap.ID, "error", err)
		}
	}

	return snap, nil
}

func (s *Server) getRoute(c *gin.Context) {
	res, err := s.planner.FindOptimalRoute(c.Request.Context(),
		c.Query("from"), c.Query("to"), c.Query("criterion"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, routeResponse{
		Result:                        res,
		Legs:                          res.Legs(),
		RiskProfile:                   res.RiskProfile(),
		ExponentialFailureProbability: res.ExponentialFailureProbability(),
	})
}

func (s *Server) getReachable(c *gin.Context) {
	maxLegs := 0
	if v := c.Query("maxLegs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("maxLegs must be a non-negative integer, got %q", v)})
			return
		}
		maxLegs = n
	}

	// avoid accepts repeated parameters and comma-separated lists.
	var avoid []string
	for _, v := range c.QueryArray("avoid") {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				avoid = append(avoid, id)
			}
		}
	}

	from := c.Query("from")
	dest, err := s.planner.Reachable(c.Request.Context(), from, maxLegs, avoid...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reachableResponse{From: from, MaxLegs: maxLegs, Avoid: avoid, Destinations: dest})
}

func (s *Server) postRisk(c *gin.Context) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	total, err := risk.PathProbability(req.Segments)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	out := riskResponse{
		Segments:    make([]riskSegment, 0, len(req.Segments)),
		Probability: total,
		Percent:     fmt.Sprintf("%.2f", total*100),
	}
	for _, seg := range req.Segments {
		out.Segments = append(out.Segments, riskSegment{
			Segment:     seg,
			Probability: risk.FailureProbability(seg.Rate, seg.Hours),
		})
	}
	c.JSON(http.StatusOK, out)
}

// fail writes the error body matching err. No-route answers carry an
// explicit null route so clients can branch on it.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logging.FromContext(c.Request.Context()).Error("request failed", "path", c.Request.URL.Path, "error", err)
	}
	if errors.Is(err, dijkstra.ErrNoRoute) {
		c.JSON(status, gin.H{"route": nil, "error": "no route found"})
		return
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dijkstra.ErrNoRoute):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrNotInitialized):
		return http.StatusServiceUnavailable
	case planner.IsInvalidInput(err), invalidNodes(err):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// invalidNodes reports whether a rebuild failed on the submitted node list.
func invalidNodes(err error) bool {
	return errors.Is(err, builder.ErrNoNodes) ||
		errors.Is(err, builder.ErrBadCoordinates) ||
		errors.Is(err, core.ErrEmptyNodeID) ||
		errors.Is(err, core.ErrDuplicateNode)
}
