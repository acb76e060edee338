// Package metrics provides MetricsCollector implementations: a no-op
// default and a Prometheus-backed collector.
package metrics

import "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SchedulerMetrics implementation

// RecordBatchDuration discards the batch duration metric.
func (n *NopMetrics) RecordBatchDuration(_ /* duration */ float64, _ /* periods */ int) {
	// No-op
}

// RecordPeriodGenerated discards the period generation metric.
func (n *NopMetrics) RecordPeriodGenerated(_ /* teamSize */ int) {
	// No-op
}

// RecordConstraintRelaxed discards the constraint relaxation metric.
func (n *NopMetrics) RecordConstraintRelaxed(_ /* code */ string) {
	// No-op
}

// RecordGapFill discards the gap-fill outcome metric.
func (n *NopMetrics) RecordGapFill(_ /* replaced */, _ /* unfilled */ int) {
	// No-op
}

// SetGini discards the Gini gauge.
func (n *NopMetrics) SetGini(_ /* value */ float64) {
	// No-op
}

// SetCV discards the coefficient-of-variation gauge.
func (n *NopMetrics) SetCV(_ /* value */ float64) {
	// No-op
}

// EstimatorMetrics implementation

// RecordEstimatorUpdate discards the estimator update metric.
func (n *NopMetrics) RecordEstimatorUpdate(_ /* assigned */ bool) {
	// No-op
}

// RecordDriftCorrection discards the drift correction metric.
func (n *NopMetrics) RecordDriftCorrection() {
	// No-op
}

// StoreMetrics implementation

// RecordStoreOperation discards the store operation metric.
func (n *NopMetrics) RecordStoreOperation(_ /* backend */, _ /* operation */ string, _ /* duration */ float64) {
	// No-op
}

// RecordStoreError discards the store error metric.
func (n *NopMetrics) RecordStoreError(_ /* backend */, _ /* operation */ string) {
	// No-op
}
