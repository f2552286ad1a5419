package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	SaveCommitted      prometheus.Counter
	SaveAborted        prometheus.Counter
	SaveLatencySec     prometheus.Histogram
	PartitionSeeded    prometheus.Counter
	PostCommitFailed   prometheus.Counter
	OrderGroupCacheHit prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	committed := prometheus.NewCounter(prometheus.CounterOpts{Name: "aiorder_save_committed_total"})
	aborted := prometheus.NewCounter(prometheus.CounterOpts{Name: "aiorder_save_aborted_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aiorder_save_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	seeded := prometheus.NewCounter(prometheus.CounterOpts{Name: "aiorder_partition_seeded_total"})
	hookFailed := prometheus.NewCounter(prometheus.CounterOpts{Name: "aiorder_post_commit_failed_total"})
	cacheHit := prometheus.NewCounter(prometheus.CounterOpts{Name: "aiorder_order_group_cache_hit_total"})

	r.MustRegister(committed, aborted, latency, seeded, hookFailed, cacheHit,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return &Registry{
		reg:                r,
		SaveCommitted:      committed,
		SaveAborted:        aborted,
		SaveLatencySec:     latency,
		PartitionSeeded:    seeded,
		PostCommitFailed:   hookFailed,
		OrderGroupCacheHit: cacheHit,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
