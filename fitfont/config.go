package fitfont

import (
	"errors"
	"fmt"
	"math"
)

// Default values used when an option is not supplied.
const (
	DefaultMinimumScaleFactor = 0.01
	DefaultPercentage         = 1.0
)

var (
	// ErrInvalidConfig is wrapped by every configuration validation error.
	ErrInvalidConfig = errors.New("invalid fit font config")
	// ErrInvalidPercentage - percentage must be positive and finite
	ErrInvalidPercentage = fmt.Errorf("%w: percentage must be > 0", ErrInvalidConfig)
	// ErrInvalidMinimumScaleFactor - scale factor must be in (0, 1]
	ErrInvalidMinimumScaleFactor = fmt.Errorf("%w: minimum scale factor must be in (0, 1]", ErrInvalidConfig)
	// ErrInvalidLineLimit - line limit must be positive when set
	ErrInvalidLineLimit = fmt.Errorf("%w: line limit must be > 0", ErrInvalidConfig)
	// ErrInvalidMaxFontSize - max font size must be positive when set
	ErrInvalidMaxFontSize = fmt.Errorf("%w: max font size must be > 0", ErrInvalidConfig)
	// ErrUnknownWeight - weight is not one of the declared weights
	ErrUnknownWeight = fmt.Errorf("%w: unknown font weight", ErrInvalidConfig)
	// ErrUnknownDesign - design is not one of the declared designs
	ErrUnknownDesign = fmt.Errorf("%w: unknown font design", ErrInvalidConfig)
)

// Config describes how text is fitted to its container. A Config is
// immutable once built by New; the zero value is not valid, use Default.
type Config struct {
	lineLimit          int
	hasLineLimit       bool
	maxFontSize        float64
	hasMaxFontSize     bool
	weight             Weight
	design             Design
	minimumScaleFactor float64
	percentage         float64
}

// Option sets one field of a Config under construction.
type Option func(*Config)

// WithLineLimit caps the number of lines the renderer may display.
func WithLineLimit(lines int) Option {
	return func(c *Config) {
		c.lineLimit = lines
		c.hasLineLimit = true
	}
}

// WithMaxFontSize caps the computed font size.
func WithMaxFontSize(size float64) Option {
	return func(c *Config) {
		c.maxFontSize = size
		c.hasMaxFontSize = true
	}
}

// WithWeight sets the font weight passed to the renderer.
func WithWeight(w Weight) Option {
	return func(c *Config) { c.weight = w }
}

// WithDesign sets the font design passed to the renderer.
func WithDesign(d Design) Option {
	return func(c *Config) { c.design = d }
}

// WithMinimumScaleFactor sets how far the renderer may shrink the computed
// size when the text still does not fit.
func WithMinimumScaleFactor(factor float64) Option {
	return func(c *Config) { c.minimumScaleFactor = factor }
}

// WithPercentage sets the fraction of the container's smaller dimension
// used as the base font size.
func WithPercentage(percentage float64) Option {
	return func(c *Config) { c.percentage = percentage }
}

// Default returns the configuration used when no options are given.
func Default() Config {
	return Config{
		weight:             WeightRegular,
		design:             DesignDefault,
		minimumScaleFactor: DefaultMinimumScaleFactor,
		percentage:         DefaultPercentage,
	}
}

// New builds a validated Config from the defaults and opts.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustNew is like New but panics if the options are invalid.
func MustNew(opts ...Option) Config {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) validate() error {
	if !(c.percentage > 0) || math.IsInf(c.percentage, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidPercentage, c.percentage)
	}
	if !(c.minimumScaleFactor > 0 && c.minimumScaleFactor <= 1) {
		return fmt.Errorf("%w (got %v)", ErrInvalidMinimumScaleFactor, c.minimumScaleFactor)
	}
	if c.hasLineLimit && c.lineLimit <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLineLimit, c.lineLimit)
	}
	if c.hasMaxFontSize && !(c.maxFontSize > 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidMaxFontSize, c.maxFontSize)
	}
	if !c.weight.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownWeight, int(c.weight))
	}
	if !c.design.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDesign, int(c.design))
	}
	return nil
}

// LineLimit returns the line limit and whether one is set.
func (c Config) LineLimit() (int, bool) { return c.lineLimit, c.hasLineLimit }

// MaxFontSize returns the font size cap and whether one is set.
func (c Config) MaxFontSize() (float64, bool) { return c.maxFontSize, c.hasMaxFontSize }

// Weight returns the font weight.
func (c Config) Weight() Weight { return c.weight }

// Design returns the font design.
func (c Config) Design() Design { return c.design }

// MinimumScaleFactor returns the minimum shrink factor.
func (c Config) MinimumScaleFactor() float64 { return c.minimumScaleFactor }

// Percentage returns the fraction of the container used as base size.
func (c Config) Percentage() float64 { return c.percentage }

// Apply computes the directives for a container of the given size.
func (c Config) Apply(container Size) Directives {
	return Calculate(container, c)
}
