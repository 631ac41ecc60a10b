package treeset

// Config holds construction-time settings for a Set.
type Config struct {
	// name labels the set in log output
	name string

	// poolNodes recycles retired nodes through a sync.Pool
	poolNodes bool
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		name:      "treeset",
		poolNodes: false,
	}
}

// WithName sets the label used when the set logs.
func WithName(name string) Option {
	return func(c *Config) { c.name = name }
}

// WithNodePool enables or disables recycling of removed nodes.
func WithNodePool(enabled bool) Option {
	return func(c *Config) { c.poolNodes = enabled }
}

func buildConfig(opts []Option) Config {
	cfg := NewConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
