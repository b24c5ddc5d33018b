// Package metrics exports Louvain run progress as Prometheus metrics.
//
// A Collector registers its series once and yields louvain options that
// feed them:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	d, err := louvain.Louvain(g, c.Options()...)
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlouvain/louvain"
)

// Namespace prefixes every series name.
const Namespace = "lvlouvain"

// Collector holds the Louvain series.
type Collector struct {
	Levels          prometheus.Counter
	Sweeps          prometheus.Counter
	Moves           prometheus.Counter
	LevelModularity *prometheus.GaugeVec
	LevelNodes      *prometheus.GaugeVec
	LevelDuration   prometheus.Histogram
}

// NewCollector creates the series and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registry panics, as with promauto.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Levels: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "levels_total",
			Help:      "Total number of Louvain levels closed",
		}),
		Sweeps: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sweeps_total",
			Help:      "Total number of local-moving sweeps",
		}),
		Moves: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "moves_total",
			Help:      "Total number of node moves between communities",
		}),
		LevelModularity: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "level_modularity",
			Help:      "Modularity of the partition closed at each level",
		}, []string{"level"}),
		LevelNodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "level_nodes",
			Help:      "Vertices of the graph each level ran on",
		}, []string{"level"}),
		LevelDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "level_duration_seconds",
			Help:      "Wall time spent per level",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
	}
}

// ObserveSweep records one sweep and its moves.
func (c *Collector) ObserveSweep(level, sweep, moves int) {
	c.Sweeps.Inc()
	c.Moves.Add(float64(moves))
}

// ObserveLevel records a closed level.
func (c *Collector) ObserveLevel(s louvain.LevelStats) {
	lvl := strconv.Itoa(s.Level)
	c.Levels.Inc()
	c.LevelModularity.WithLabelValues(lvl).Set(s.Modularity)
	c.LevelNodes.WithLabelValues(lvl).Set(float64(s.Nodes))
	c.LevelDuration.Observe(s.Duration.Seconds())
}

// Options returns the louvain hooks that feed c.
func (c *Collector) Options() []louvain.Option {
	return []louvain.Option{
		louvain.WithOnSweep(c.ObserveSweep),
		louvain.WithOnLevel(c.ObserveLevel),
	}
}
