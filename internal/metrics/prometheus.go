package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "hako"

// PrometheusCollector records locker assignment activity in Prometheus.
type PrometheusCollector struct {
	created      *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	degraded     *prometheus.CounterVec
	syncRuns     prometheus.Counter
	syncResults  *prometheus.CounterVec
	syncDuration prometheus.Histogram
}

// Label values known up front, exported as zero so dashboards see every
// series before the first booking.
var (
	rejectReasons   = []string{"unavailable", "capacity", "no_free_locker"}
	degradedReasons = []string{"fallback_dimensions", "oversize", "rejected"}
	syncOutcomes    = []string{"created", "updated", "failed"}
)

// NewPrometheus creates a collector and registers it.
//
// Parameters:
//   - reg: registerer to use (prometheus.DefaultRegisterer if nil)
//   - namespace: metric namespace ("hako" if empty)
//
// It panics if the metrics are already registered on reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	p := &PrometheusCollector{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "locker",
			Name:      "assignments_created_total",
			Help:      "Locker assignments persisted, by whether capacity was exceeded.",
		}, []string{"oversize"}),

		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "locker",
			Name:      "assignments_rejected_total",
			Help:      "Locker assignment attempts refused, by reason.",
		}, []string{"reason"}),

		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "packing",
			Name:      "degraded_total",
			Help:      "Packing results built from fallback data or exceeding capacity, by reason.",
		}, []string{"reason"}),

		syncRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Appointment sync runs.",
		}),

		syncResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "assignments_total",
			Help:      "Assignments touched by sync runs, by outcome.",
		}, []string{"outcome"}),

		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Duration of appointment sync runs.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
	}

	p.created.WithLabelValues("false")
	p.created.WithLabelValues("true")
	for _, r := range rejectReasons {
		p.rejected.WithLabelValues(r)
	}
	for _, r := range degradedReasons {
		p.degraded.WithLabelValues(r)
	}
	for _, o := range syncOutcomes {
		p.syncResults.WithLabelValues(o)
	}

	reg.MustRegister(p.created, p.rejected, p.degraded, p.syncRuns, p.syncResults, p.syncDuration)

	return p
}

func (p *PrometheusCollector) AssignmentCreated(oversize bool) {
	p.created.WithLabelValues(strconv.FormatBool(oversize)).Inc()
}

func (p *PrometheusCollector) AssignmentRejected(reason string) {
	p.rejected.WithLabelValues(reason).Inc()
}

func (p *PrometheusCollector) PackingDegraded(reason string) {
	p.degraded.WithLabelValues(reason).Inc()
}

func (p *PrometheusCollector) SyncCompleted(created, updated, failed int, took time.Duration) {
	p.syncRuns.Inc()
	p.syncResults.WithLabelValues("created").Add(float64(created))
	p.syncResults.WithLabelValues("updated").Add(float64(updated))
	p.syncResults.WithLabelValues("failed").Add(float64(failed))
	p.syncDuration.Observe(took.Seconds())
}
