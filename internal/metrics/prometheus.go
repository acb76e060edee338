package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	batchDuration     prometheus.Histogram
	batchPeriods      prometheus.Histogram
	periodsGenerated  prometheus.Counter
	teamSizeHist      prometheus.Histogram
	constraintRelaxed *prometheus.CounterVec
	gapFillReplaced   prometheus.Counter
	gapFillUnfilled   prometheus.Counter
	giniGauge         prometheus.Gauge
	cvGauge           prometheus.Gauge
	estimatorUpdates  *prometheus.CounterVec
	driftCorrections  prometheus.Counter
	storeOpDuration   *prometheus.HistogramVec
	storeErrors       *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "gieplan" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "gieplan"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one batch generation call in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		})
		p.batchPeriods = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "batch_periods",
			Help:      "Number of periods generated per batch call.",
			Buckets:   []float64{1, 2, 4, 8, 13, 26, 52, 104},
		})
		p.periodsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "periods_generated_total",
			Help:      "Total period assignments generated.",
		})
		p.teamSizeHist = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "period_team_size",
			Help:      "Primary team size per generated period (undersized periods skew low).",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		})
		p.constraintRelaxed = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "constraint_relaxations_total",
			Help:      "Total constraint relaxations by warning code.",
		}, []string{"code"})
		p.gapFillReplaced = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "gap_fill_replacements_total",
			Help:      "Total replacements inserted by gap filling.",
		})
		p.gapFillUnfilled = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "gap_fill_unfilled_total",
			Help:      "Total slots left short because no replacement was eligible.",
		})
		p.giniGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "fairness",
			Name:      "gini",
			Help:      "Gini coefficient of the most recent batch.",
		})
		p.cvGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "fairness",
			Name:      "coefficient_of_variation",
			Help:      "Coefficient of variation of the most recent batch.",
		})
		p.estimatorUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "estimator",
			Name:      "updates_total",
			Help:      "Total estimator updates by observation outcome.",
		}, []string{"assigned"})
		p.driftCorrections = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "estimator",
			Name:      "drift_corrections_total",
			Help:      "Total drift corrections applied to estimator means.",
		})
		p.storeOpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of store operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		}, []string{"backend", "op"})
		p.storeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "operation_errors_total",
			Help:      "Total failed store operations.",
		}, []string{"backend", "op"})

		collectors := []prometheus.Collector{
			p.batchDuration, p.batchPeriods, p.periodsGenerated, p.teamSizeHist,
			p.constraintRelaxed, p.gapFillReplaced, p.gapFillUnfilled,
			p.giniGauge, p.cvGauge,
			p.estimatorUpdates, p.driftCorrections,
			p.storeOpDuration, p.storeErrors,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is fine when multiple schedulers share
			// a registry; keep the first registration.
			_ = p.reg.Register(c)
		}
	})
}

// RecordBatchDuration records the wall time and size of one generation call.
func (p *PrometheusCollector) RecordBatchDuration(duration float64, periods int) {
	p.ensureRegistered()
	p.batchDuration.Observe(duration)
	p.batchPeriods.Observe(float64(periods))
}

// RecordPeriodGenerated records one generated period and its team size.
func (p *PrometheusCollector) RecordPeriodGenerated(teamSize int) {
	p.ensureRegistered()
	p.periodsGenerated.Inc()
	p.teamSizeHist.Observe(float64(teamSize))
}

// RecordConstraintRelaxed records a constraint relaxation by warning code.
func (p *PrometheusCollector) RecordConstraintRelaxed(code string) {
	p.ensureRegistered()
	p.constraintRelaxed.WithLabelValues(code).Inc()
}

// RecordGapFill records the outcome of one gap-fill call.
func (p *PrometheusCollector) RecordGapFill(replaced, unfilled int) {
	p.ensureRegistered()
	p.gapFillReplaced.Add(float64(replaced))
	p.gapFillUnfilled.Add(float64(unfilled))
}

// SetGini sets the Gini gauge for the most recent batch.
func (p *PrometheusCollector) SetGini(value float64) {
	p.ensureRegistered()
	p.giniGauge.Set(value)
}

// SetCV sets the coefficient-of-variation gauge for the most recent batch.
func (p *PrometheusCollector) SetCV(value float64) {
	p.ensureRegistered()
	p.cvGauge.Set(value)
}

// RecordEstimatorUpdate records one filter update by observation outcome.
func (p *PrometheusCollector) RecordEstimatorUpdate(assigned bool) {
	p.ensureRegistered()
	label := "false"
	if assigned {
		label = "true"
	}
	p.estimatorUpdates.WithLabelValues(label).Inc()
}

// RecordDriftCorrection records a drift correction applied to a mean.
func (p *PrometheusCollector) RecordDriftCorrection() {
	p.ensureRegistered()
	p.driftCorrections.Inc()
}

// RecordStoreOperation records one store operation's latency.
func (p *PrometheusCollector) RecordStoreOperation(backend, operation string, duration float64) {
	p.ensureRegistered()
	p.storeOpDuration.WithLabelValues(backend, operation).Observe(duration)
}

// RecordStoreError records a failed store operation.
func (p *PrometheusCollector) RecordStoreError(backend, operation string) {
	p.ensureRegistered()
	p.storeErrors.WithLabelValues(backend, operation).Inc()
}
