package cave

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a generation parameter outside its legal range.
// Violations are programmer errors and are rejected up front rather than
// producing undefined maps.
var ErrInvalidConfig = errors.New("cave: invalid configuration")

// Config holds the generation parameters for a single map.
type Config struct {
	// Width and Height are the map dimensions in cells, minimum 3x3.
	Width  int
	Height int
	// FillProbability is the chance an interior cell starts as wall.
	FillProbability float64
	// SmoothIterations is the number of automaton smoothing passes.
	SmoothIterations int
	// MinRoomSize is the smallest open region kept during connectivity
	// repair; smaller regions are filled back to wall.
	MinRoomSize int
	// ClusterMaxSize is the threshold below which wall clusters count as
	// noise and are removed.
	ClusterMaxSize int
	// MinEndpointDistance is the desired Euclidean separation between the
	// start and end markers. Best effort, not a guarantee.
	MinEndpointDistance float64
}

// DefaultConfig returns parameters tuned for a 100x60 cave.
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              60,
		FillProbability:     0.45,
		SmoothIterations:    4,
		MinRoomSize:         20,
		ClusterMaxSize:      10,
		MinEndpointDistance: 30,
	}
}

// Validate checks every parameter range and returns a descriptive error
// wrapping ErrInvalidConfig for the first violation found.
func (c Config) Validate() error {
	switch {
	case c.Width < MinDimension || c.Height < MinDimension:
		return fmt.Errorf("%w: dimensions %dx%d, need at least %dx%d",
			ErrInvalidConfig, c.Width, c.Height, MinDimension, MinDimension)
	case c.FillProbability < 0 || c.FillProbability > 1:
		return fmt.Errorf("%w: fill probability %v outside [0, 1]", ErrInvalidConfig, c.FillProbability)
	case c.SmoothIterations < 0:
		return fmt.Errorf("%w: smooth iterations %d is negative", ErrInvalidConfig, c.SmoothIterations)
	case c.MinRoomSize < 1:
		return fmt.Errorf("%w: min room size %d, need at least 1", ErrInvalidConfig, c.MinRoomSize)
	case c.ClusterMaxSize < 1:
		return fmt.Errorf("%w: cluster max size %d, need at least 1", ErrInvalidConfig, c.ClusterMaxSize)
	case c.MinEndpointDistance < 0:
		return fmt.Errorf("%w: min endpoint distance %v is negative", ErrInvalidConfig, c.MinEndpointDistance)
	}
	return nil
}
