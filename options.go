package gmrf

// Option configures a Distribution at construction time.
type Option func(*Distribution)

// WithEngine replaces the built-in sparse Cholesky engine.
// Panics if eng is nil (programmer error, not a user condition).
func WithEngine(eng Engine) Option {
	if eng == nil {
		panic("gmrf: WithEngine: nil engine")
	}
	return func(d *Distribution) {
		d.engine = eng
	}
}
