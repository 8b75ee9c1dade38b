// Package metrics exposes the core engine's activity as Prometheus
// metrics, grounded on the prometheus/client_golang usage seen
// throughout the retrieval pack (e.g. gloudx-ues-lite,
// sourcegraph-zoekt, ssargent-freyjadb). It implements rtree.Observer
// so it can be installed on a *rtree.Tree without that package
// importing prometheus at all.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lambertmata/rtreed/rtree"
)

// Collector observes tree activity and publishes it under its own
// registry, so multiple trees (or test runs) never collide on metric
// registration.
type Collector struct {
	registry *prometheus.Registry

	tuplesInserted prometheus.Counter
	nodeSplits     prometheus.Counter
	searchResults  prometheus.Histogram
	treeHeight     prometheus.Gauge
}

// New creates a Collector with its own registry.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		tuplesInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtreed",
			Name:      "tuples_inserted_total",
			Help:      "Total number of tuples inserted into the tree.",
		}),
		nodeSplits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtreed",
			Name:      "node_splits_total",
			Help:      "Total number of node splits (leaf or internal) performed.",
		}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rtreed",
			Name:      "search_results",
			Help:      "Number of tuples returned per Search call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		treeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rtreed",
			Name:      "tree_height",
			Help:      "Current height of the tree (0 when the root is a leaf).",
		}),
	}

	reg.MustRegister(c.tuplesInserted, c.nodeSplits, c.searchResults, c.treeHeight)
	return c
}

var _ rtree.Observer = (*Collector)(nil)

func (c *Collector) TupleInserted()        { c.tuplesInserted.Inc() }
func (c *Collector) NodeSplit()            { c.nodeSplits.Inc() }
func (c *Collector) SearchCompleted(n int) { c.searchResults.Observe(float64(n)) }

// ObserveHeight records the tree's current height, computed by the
// caller (the core does not track height directly).
func (c *Collector) ObserveHeight(h int) {
	c.treeHeight.Set(float64(h))
}

// Handler returns an http.Handler serving this collector's metrics in
// the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
