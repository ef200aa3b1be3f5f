package classmix

// Option configures an Optimizer with optional dependencies.
type Option func(*optimizerOptions)

// optimizerOptions holds optional Optimizer configuration.
type optimizerOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets run event hooks.
//
// Hooks run synchronously inside the optimization loop; see types.Hooks for
// the callback contract.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &classmix.Hooks{
//	    OnSwapApplied: func(ctx context.Context, sw classmix.Swap) error {
//	        return recordSwap(sw)
//	    },
//	}
//	opt, err := classmix.New(&cfg, classmix.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *optimizerOptions) {
		o.hooks = hooks
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
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "classmix")
//	opt, err := classmix.New(&cfg, classmix.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *optimizerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	opt, err := classmix.New(&cfg, classmix.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *optimizerOptions) {
		o.logger = logger
	}
}
