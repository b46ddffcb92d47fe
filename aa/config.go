package aa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned for configurations Antialias cannot run.
var ErrInvalidConfig = errors.New("aa: invalid config")

// Algorithm selects how Antialias computes intensities.
type Algorithm uint8

const (
	// AlgorithmPattern uses pattern classification and line following.
	AlgorithmPattern Algorithm = iota

	// AlgorithmLowpass uses the 3x3 low-pass filter.
	AlgorithmLowpass

	// AlgorithmPNM uses the edge and corner weighted filter.
	AlgorithmPNM

	// AlgorithmNone copies ink to full intensity without anti-aliasing.
	AlgorithmNone

	// numAlgorithms is the number of algorithms (for internal use).
	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{"pattern", "lowpass", "pnm", "none"}

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a < numAlgorithms {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
}

// Config holds the anti-aliasing parameters. It is a plain value: derive
// variants with With and pass them to each call.
type Config struct {
	// Algorithm selects the method.
	Algorithm Algorithm

	// CenterWeight, AdjacentWeight and CornerWeight weigh the center, the
	// four edge neighbours and the four corners in the filters. The
	// low-pass filter weighs every neighbour 1 and only uses CenterWeight.
	CenterWeight   int
	AdjacentWeight int
	CornerWeight   int

	// MinAdjacent and MaxAdjacent bound the ink neighbours of a background
	// pixel the low-pass filter may lighten. Ink neighbours are counted,
	// or weighed with AdjacentWeight and CornerWeight when
	// WeightedAdjacency is set.
	MinAdjacent       int
	MaxAdjacent       int
	WeightedAdjacency bool

	// Levels is the number of gray levels, 2 to 256. Full ink is Levels-1.
	Levels int

	// FollowSteps limits line following.
	FollowSteps int

	// AliasForeground and AliasBackground allow lightening ink pixels and
	// darkening background pixels respectively.
	AliasForeground bool
	AliasBackground bool
}

// DefaultConfig returns the default parameters: pattern classification,
// weights 8/4/1, adjacency band 0 to 8 counted neighbours, 256 levels,
// 8 follow steps, both foreground and background anti-aliased.
func DefaultConfig() Config {
	return Config{
		Algorithm:       AlgorithmPattern,
		CenterWeight:    8,
		AdjacentWeight:  4,
		CornerWeight:    1,
		MinAdjacent:     0,
		MaxAdjacent:     8,
		Levels:          256,
		FollowSteps:     DefaultFollowSteps,
		AliasForeground: true,
		AliasBackground: true,
	}
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	return DefaultConfig().With(opts...)
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithAlgorithm selects the algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithWeights sets the center, edge and corner weights.
func WithWeights(center, adjacent, corner int) Option {
	return func(c *Config) {
		c.CenterWeight = center
		c.AdjacentWeight = adjacent
		c.CornerWeight = corner
	}
}

// WithAdjacency sets the low-pass adjacency band.
func WithAdjacency(minAdjacent, maxAdjacent int, weighted bool) Option {
	return func(c *Config) {
		c.MinAdjacent = minAdjacent
		c.MaxAdjacent = maxAdjacent
		c.WeightedAdjacency = weighted
	}
}

// WithLevels sets the number of gray levels.
func WithLevels(levels int) Option {
	return func(c *Config) { c.Levels = levels }
}

// WithFollowSteps sets the line following step limit.
func WithFollowSteps(steps int) Option {
	return func(c *Config) { c.FollowSteps = steps }
}

// WithAliasing toggles anti-aliasing of ink and background pixels.
func WithAliasing(foreground, background bool) Option {
	return func(c *Config) {
		c.AliasForeground = foreground
		c.AliasBackground = background
	}
}

// Validate reports whether c can be used, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Algorithm >= numAlgorithms:
		return fmt.Errorf("%w: algorithm %d", ErrInvalidConfig, c.Algorithm)
	case c.Levels < 2 || c.Levels > 256:
		return fmt.Errorf("%w: %d levels", ErrInvalidConfig, c.Levels)
	case c.CenterWeight < 0 || c.AdjacentWeight < 0 || c.CornerWeight < 0:
		return fmt.Errorf("%w: negative weight", ErrInvalidConfig)
	case c.Algorithm == AlgorithmPNM && c.CenterWeight+4*c.AdjacentWeight+4*c.CornerWeight == 0:
		return fmt.Errorf("%w: all weights zero", ErrInvalidConfig)
	case c.MinAdjacent > c.MaxAdjacent:
		return fmt.Errorf("%w: adjacency band %d..%d", ErrInvalidConfig, c.MinAdjacent, c.MaxAdjacent)
	case c.FollowSteps < 1:
		return fmt.Errorf("%w: %d follow steps", ErrInvalidConfig, c.FollowSteps)
	}
	return nil
}
