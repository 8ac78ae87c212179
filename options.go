package ferrite

// registryOptions holds configuration applied when constructing a
// [Registry] via [NewRegistryWithOptions].
type registryOptions struct {
	logger         Logger
	strictProtocol bool
	metricsEnabled bool
}

// RegistryOption configures a [Registry] at construction.
type RegistryOption interface {
	applyRegistry(*registryOptions)
}

type registryOptionFunc func(*registryOptions)

func (f registryOptionFunc) applyRegistry(opts *registryOptions) { f(opts) }

// WithLogger routes the registry's own diagnostics through logger instead
// of the process-wide logger installed via [SetStructuredLogger]. Other
// diagnostics of this package (such as the abandoned-guard warning of
// [ValueGuard]) still go to the process-wide logger.
func WithLogger(logger Logger) RegistryOption {
	return registryOptionFunc(func(opts *registryOptions) {
		opts.logger = logger
	})
}

// WithStrictProtocol enables panic-on-illegal-transition checking (see
// [SharedState.Transition]) for every variable the registry subsequently
// initializes. Intended for development and test builds; the
// per-transition check it adds is skipped entirely when disabled, which is
// the default.
func WithStrictProtocol(enabled bool) RegistryOption {
	return registryOptionFunc(func(opts *registryOptions) {
		opts.strictProtocol = enabled
	})
}

// WithMetrics enables counter collection on the registry, retrievable via
// [Registry.Metrics]. Disable in production if the atomic updates on every
// registration, claim and [Registry.CheckEmpty] call are not worth the
// visibility.
func WithMetrics(enabled bool) RegistryOption {
	return registryOptionFunc(func(opts *registryOptions) {
		opts.metricsEnabled = enabled
	})
}

func resolveRegistryOptions(opts []RegistryOption) *registryOptions {
	cfg := &registryOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyRegistry(cfg)
	}
	return cfg
}

// NewRegistryWithOptions returns an empty registry configured by opts. Nil
// options are skipped.
func NewRegistryWithOptions(opts ...RegistryOption) *Registry {
	cfg := resolveRegistryOptions(opts)
	r := &Registry{vars: make(map[string]*Variable)}
	r.strict.Store(cfg.strictProtocol)
	r.logger = cfg.logger
	if cfg.metricsEnabled {
		r.metrics = &Metrics{}
	}
	return r
}
