package evaluation

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "boarding"

var strategyLabels = []string{"strategy"}

// EpisodeStepBuckets and EpisodeTickBuckets cover cabins up to a few hundred seats.
var (
	EpisodeStepBuckets = prometheus.ExponentialBuckets(4, 2, 8)
	EpisodeTickBuckets = prometheus.ExponentialBuckets(8, 2, 10)
)

// Collector exports comparison results as Prometheus metrics on its own registry.
type Collector struct {
	registry   *prometheus.Registry
	episodes   *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	ticks      *prometheus.HistogramVec
	meanReward *prometheus.GaugeVec
}

// NewCollector creates a Collector with every metric registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		episodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: metricsSubsystem,
				Name:      "episodes_total",
				Help:      "Number of boarding episodes played per strategy.",
			},
			strategyLabels,
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: metricsSubsystem,
				Name:      "episode_steps",
				Help:      "Releases needed to board every passenger.",
				Buckets:   EpisodeStepBuckets,
			},
			strategyLabels,
		),
		ticks: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: metricsSubsystem,
				Name:      "episode_ticks",
				Help:      "Simulation ticks until the aisle drained.",
				Buckets:   EpisodeTickBuckets,
			},
			strategyLabels,
		),
		meanReward: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Subsystem: metricsSubsystem,
				Name:      "mean_reward",
				Help:      "Mean total episode reward of the latest evaluation.",
			},
			strategyLabels,
		),
	}
	c.registry.MustRegister(c.episodes, c.steps, c.ticks, c.meanReward)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Record adds every episode in results to the metrics.
func (c *Collector) Record(results []Result) {
	for _, r := range results {
		for _, ep := range r.Episodes {
			c.episodes.WithLabelValues(r.Strategy).Inc()
			c.steps.WithLabelValues(r.Strategy).Observe(float64(ep.Steps))
			c.ticks.WithLabelValues(r.Strategy).Observe(float64(ep.Ticks))
		}
		c.meanReward.WithLabelValues(r.Strategy).Set(r.MeanReward)
	}
}

// WriteTextfile writes the metrics to path in the node-exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
