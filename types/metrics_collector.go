package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods must be safe for concurrent use.
//
// This interface composes smaller, domain-focused interfaces so callers can
// implement only the slice they instrument and embed a no-op for the rest.
type MetricsCollector interface {
	SchedulerMetrics
	EstimatorMetrics
	StoreMetrics
}

// SchedulerMetrics defines metrics for batch generation and gap filling.
type SchedulerMetrics interface {
	// RecordBatchDuration records the wall time of one generation call.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - periods: Number of periods generated
	RecordBatchDuration(duration float64, periods int)

	// RecordPeriodGenerated records one generated period and its team size.
	RecordPeriodGenerated(teamSize int)

	// RecordConstraintRelaxed records a constraint relaxation by warning code.
	RecordConstraintRelaxed(code string)

	// RecordGapFill records the outcome of one gap-fill call.
	//
	// Parameters:
	//   - replaced: Number of periods where a replacement was inserted
	//   - unfilled: Number of slots left short
	RecordGapFill(replaced, unfilled int)

	// SetGini sets the Gini coefficient of the most recent batch (gauge).
	SetGini(value float64)

	// SetCV sets the coefficient of variation of the most recent batch (gauge).
	SetCV(value float64)
}

// EstimatorMetrics defines metrics for the per-member rate estimator.
type EstimatorMetrics interface {
	// RecordEstimatorUpdate records one filter update.
	//
	// Parameters:
	//   - assigned: Whether the update observed an assignment
	RecordEstimatorUpdate(assigned bool)

	// RecordDriftCorrection records a drift correction applied to a mean.
	RecordDriftCorrection()
}

// StoreMetrics defines metrics for persistence backends.
type StoreMetrics interface {
	// RecordStoreOperation records one store operation's latency.
	//
	// Parameters:
	//   - backend: Backend name ("memory", "natskv", "sqlite")
	//   - operation: Operation type ("save_table", "load_table", "save_batch", "load_batch", "list")
	//   - duration: Time taken in seconds
	RecordStoreOperation(backend, operation string, duration float64)

	// RecordStoreError records a failed store operation.
	RecordStoreError(backend, operation string)
}
