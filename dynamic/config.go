package dynamic

// Logger receives diagnostics from Compile. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Config configures path compilation.
type Config struct {
	// MaxSteps bounds the number of steps in a compiled path. Zero means no
	// limit.
	MaxSteps int

	// Logger receives a debug entry per compiled path and a warning per
	// rejected one.
	Logger Logger
}

// DefaultConfig returns the configuration Compile starts from.
func DefaultConfig() Config {
	return Config{
		MaxSteps: 64,
		Logger:   nopLogger{},
	}
}

// Validate checks the configuration and fills in a missing logger.
func (c *Config) Validate() error {
	if c.MaxSteps < 0 {
		return ErrInvalidMaxSteps
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	return nil
}

// Option adjusts the Config used by Compile.
type Option func(*Config) error

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return ErrNilLogger
		}
		c.Logger = l
		return nil
	}
}

// WithMaxSteps bounds the path length; zero disables the bound.
func WithMaxSteps(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return ErrInvalidMaxSteps
		}
		c.MaxSteps = n
		return nil
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) error {
		*c = cfg
		return nil
	}
}
