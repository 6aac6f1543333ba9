package ironpress

// config holds internal Compressor configuration
type config struct {
	InitialCapacity int
}

// Option configures a Compressor
type Option interface {
	apply(*config)
}

// funcOpt wraps a function as an Option
type funcOpt func(*config)

func (f funcOpt) apply(c *config) {
	f(c)
}

// WithInitialCapacity pre-sizes the reusable output buffer so payloads up
// to roughly n bytes never trigger growth (default: 0 = allocate on first
// use, sized by the estimator)
func WithInitialCapacity(n int) Option {
	return funcOpt(func(c *config) {
		c.InitialCapacity = n
	})
}

// defaultConfig returns sensible defaults
func defaultConfig() config {
	return config{
		InitialCapacity: 0,
	}
}
