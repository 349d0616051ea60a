package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// siteMetrics holds the server's Prometheus metrics on an isolated registry
// so they don't collide with the global default registry.
type siteMetrics struct {
	registry      *prometheus.Registry
	pageRenders   *prometheus.CounterVec
	renderSeconds prometheus.Histogram
}

var mtr = newSiteMetrics()

func newSiteMetrics() *siteMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &siteMetrics{
		registry: reg,
		pageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lectern_page_renders_total",
				Help: "Total page render attempts by result.",
			},
			[]string{"result"},
		),
		renderSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lectern_page_render_duration_seconds",
				Help:    "Time spent rendering pages, including the sidebar.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.pageRenders, m.renderSeconds)
	return m
}

func metricsHandler() http.Handler {
	return promhttp.HandlerFor(mtr.registry, promhttp.HandlerOpts{})
}
