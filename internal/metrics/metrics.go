// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for graph rebuilds and route
// queries. A Collector implements planner.Recorder.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/planner"
)

const namespace = "airroute"

// Collector owns a private registry so tests and multiple servers in one
// process never collide on metric names.
type Collector struct {
	reg *prometheus.Registry

	rebuildTotal    *prometheus.CounterVec
	rebuildDuration prometheus.Histogram
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge
	graphComponents prometheus.Gauge

	queryTotal    *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry. withRuntime adds the
// Go runtime and process collectors.
func New(withRuntime bool) *Collector {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Collector{
		reg: reg,

		// rebuildTotal counts InitializeGraph calls by result
		rebuildTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_rebuild_total",
			Help:      "Total graph rebuilds by result",
		}, []string{"result"}),

		rebuildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_rebuild_duration_seconds",
			Help:      "Graph rebuild duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}),

		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Airports in the current graph",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Segments in the current graph",
		}),
		graphComponents: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_components",
			Help:      "Connected components of the current graph",
		}),

		// queryTotal counts route queries by criterion and outcome
		queryTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_query_total",
			Help:      "Total route queries by criterion and outcome",
		}, []string{"criterion", "outcome"}),

		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_query_duration_seconds",
			Help:      "Route query duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
		}, []string{"criterion"}),
	}
}

var _ planner.Recorder = (*Collector)(nil)

// ObserveRebuild records one InitializeGraph call. Gauges follow the
// published snapshot and are left alone on failure.
func (c *Collector) ObserveRebuild(s *planner.Snapshot, d time.Duration, err error) {
	c.rebuildDuration.Observe(d.Seconds())
	if err != nil {
		c.rebuildTotal.WithLabelValues("error").Inc()
		return
	}
	c.rebuildTotal.WithLabelValues("ok").Inc()
	if s != nil {
		c.graphNodes.Set(float64(s.Nodes))
		c.graphEdges.Set(float64(s.Edges))
		c.graphComponents.Set(float64(s.Components))
	}
}

// ObserveQuery records one route query.
func (c *Collector) ObserveQuery(criterion, outcome string, d time.Duration) {
	if !known(criterion) {
		criterion = "other"
	}
	c.queryTotal.WithLabelValues(criterion, outcome).Inc()
	c.queryDuration.WithLabelValues(criterion).Observe(d.Seconds())
}

// known keeps user-supplied criterion strings out of the label space.
func known(criterion string) bool {
	for _, c := range dijkstra.Criteria() {
		if string(c) == criterion {
			return true
		}
	}

	return false
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

// Handler serves the exposition format for the private registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}
