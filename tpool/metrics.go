package tpool

import "github.com/prometheus/client_golang/prometheus"

// Stats is a point-in-time snapshot of a pool's activity counters.
// Submitted counts tasks accepted by Submit; Completed and Failed count
// finished tasks by outcome. Queued is the current queue depth and may be
// stale by the time the caller looks at it.
type Stats struct {
	Workers   int
	Queued    int
	Submitted uint64
	Completed uint64
	Failed    uint64
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.workerCount,
		Queued:    p.queue.size(),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}

// Collector adapts a Pool to prometheus.Collector so its counters can be
// scraped. Register one collector per pool, distinguishing pools by name:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(tpool.NewCollector(pool, "image-resize"))
type Collector struct {
	pool *Pool

	workers   *prometheus.Desc
	queued    *prometheus.Desc
	submitted *prometheus.Desc
	completed *prometheus.Desc
	failed    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector exposing the pool's stats under the
// tpool_* metric names, labeled with the given pool name.
func NewCollector(p *Pool, name string) *Collector {
	labels := prometheus.Labels{"pool": name}
	return &Collector{
		pool: p,
		workers: prometheus.NewDesc(
			"tpool_workers",
			"Fixed number of workers in the pool.",
			nil, labels,
		),
		queued: prometheus.NewDesc(
			"tpool_queued_tasks",
			"Tasks currently waiting in the queue.",
			nil, labels,
		),
		submitted: prometheus.NewDesc(
			"tpool_submitted_tasks_total",
			"Tasks accepted by Submit.",
			nil, labels,
		),
		completed: prometheus.NewDesc(
			"tpool_completed_tasks_total",
			"Tasks that finished without error.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			"tpool_failed_tasks_total",
			"Tasks that finished with an error or panic.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.queued
	ch <- c.submitted
	ch <- c.completed
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stats()
	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(s.Workers))
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(s.Queued))
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(s.Completed))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
}
