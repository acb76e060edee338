package gieplan

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	logger     Logger
	metrics    MetricsCollector
	rand       RandSource
	onboarding OnboardingPolicy
}

// WithLogger sets a logger, replacing the default log/slog adapter.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stdout, nil)))
//	sched, err := gieplan.New(cfg, gieplan.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "gieplan")
//	sched, err := gieplan.New(cfg, gieplan.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithRandSource sets the random source consumed by the stochastic
// selector, replacing the default PCG source seeded from Config.Seed.
//
// Parameters:
//   - rand: RandSource implementation (e.g. a fixed-sequence fake in tests)
//
// Returns:
//   - Option: Functional option for New
func WithRandSource(rand RandSource) Option {
	return func(o *schedulerOptions) {
		o.rand = rand
	}
}

// WithOnboarding sets the newcomer-onboarding policy.
//
// Parameters:
//   - policy: OnboardingPolicy implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	sched, err := gieplan.New(cfg, gieplan.WithOnboarding(strategy.NewVirtualHistory(8)))
func WithOnboarding(policy OnboardingPolicy) Option {
	return func(o *schedulerOptions) {
		o.onboarding = policy
	}
}
