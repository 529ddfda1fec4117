package server

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// collectTimeout bounds one resolution per scrape, so a hung git cannot
// stall /metrics even when describe_timeout is unbounded.
const collectTimeout = 10 * time.Second

// BuildInfoCollector exports the resolved build identity as a constant
// gauge, resolved again on every scrape.
type BuildInfoCollector struct {
	source    InfoSource
	descBuild *prometheus.Desc
	timeout   time.Duration
}

// NewBuildInfoCollector creates a Prometheus collector for source.
func NewBuildInfoCollector(source InfoSource) *BuildInfoCollector {
	return &BuildInfoCollector{
		source:  source,
		timeout: collectTimeout,
		descBuild: prometheus.NewDesc(
			"overviewer_build_info",
			"Resolved Overviewer version and commit, always 1.",
			[]string{"version", "commit"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *BuildInfoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.descBuild
}

// Collect implements prometheus.Collector.
func (c *BuildInfoCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	info := c.source.Info(ctx)

	ch <- prometheus.MustNewConstMetric(
		c.descBuild,
		prometheus.GaugeValue,
		1,
		info.Version, info.Commit)
}
