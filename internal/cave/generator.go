package cave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/caveforge/internal/telemetry"
)

// Cave is a finished map. HasEndpoints is false when endpoint placement
// degraded (no open regions, or too few accessible cells); the grid is
// still valid and the caller decides whether to regenerate.
type Cave struct {
	ID           uuid.UUID
	Grid         *Grid
	Start, End   Coord
	HasEndpoints bool
}

// Generate runs the full pipeline: stochastic initialization, automaton
// smoothing, connectivity repair, noise cluster removal and endpoint
// placement. Stages run strictly in order on a single goroutine, each
// finishing before the next begins; the rng is the only state threaded
// through them, so a fixed seed reproduces the map cell for cell.
func Generate(ctx context.Context, cfg Config, rng Rand) (*Cave, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("cave")
	_, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	grid, err := Initialize(cfg.Width, cfg.Height, cfg.FillProbability, rng)
	if err != nil {
		return nil, err
	}
	grid = Smooth(grid, cfg.SmoothIterations)

	stats := ResolveConnectivity(grid, cfg.MinRoomSize, rng)
	clusters := RemoveClusters(grid, cfg.ClusterMaxSize)

	c := &Cave{ID: uuid.New(), Grid: grid}
	if start, end, err := PlaceEndpoints(grid, cfg.MinEndpointDistance, rng); err != nil {
		// Degraded but usable: the map simply carries no markers.
		span.SetAttributes(attribute.String("cave.endpoint_failure", err.Error()))
	} else {
		c.Start, c.End = start, end
		c.HasEndpoints = true
	}

	span.SetAttributes(
		attribute.String("cave.id", c.ID.String()),
		attribute.Int("cave.width", cfg.Width),
		attribute.Int("cave.height", cfg.Height),
		attribute.Int("cave.smooth_iterations", cfg.SmoothIterations),
		attribute.Int("cave.regions", stats.Regions),
		attribute.Int("cave.rooms_filled", stats.FilledRooms),
		attribute.Int("cave.rooms_connected", stats.ConnectedRooms),
		attribute.Int("cave.extra_corridors", stats.ExtraCorridors),
		attribute.Int("cave.clusters_removed", clusters),
		attribute.Bool("cave.endpoints_placed", c.HasEndpoints),
		attribute.Int64("cave.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return c, nil
}
