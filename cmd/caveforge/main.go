// Package main is the entry point for caveforge.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/caveforge/internal/cave"
	"github.com/samdwyer/caveforge/internal/mapfile"
	"github.com/samdwyer/caveforge/internal/telemetry"
	"github.com/samdwyer/caveforge/internal/ui"
)

func main() {
	cfg := cave.DefaultConfig()
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in cells")
	flag.Float64Var(&cfg.FillProbability, "fill", cfg.FillProbability, "initial wall probability in [0,1]")
	flag.IntVar(&cfg.SmoothIterations, "smooth", cfg.SmoothIterations, "automaton smoothing passes")
	flag.IntVar(&cfg.MinRoomSize, "min-room", cfg.MinRoomSize, "smallest open region kept during repair")
	flag.IntVar(&cfg.ClusterMaxSize, "max-cluster", cfg.ClusterMaxSize, "wall clusters below this size are removed")
	flag.Float64Var(&cfg.MinEndpointDistance, "min-dist", cfg.MinEndpointDistance, "desired start/end separation")
	out := flag.String("out", "cave.txt", "output map file")
	preview := flag.Bool("preview", false, "open a full-screen preview after generating")
	printMap := flag.Bool("print", false, "print the colored map to stdout")
	flag.Parse()

	// Load .env for local development; makes HONEYCOMB_CAVEFORGE_API_KEY
	// available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Generating %dx%d cave with seed %d", cfg.Width, cfg.Height, *seed)

	c, err := cave.Generate(ctx, cfg, cave.NewRand(*seed))
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	if !c.HasEndpoints {
		log.Printf("Warning: no endpoints placed; the map has no start/end markers")
	}

	if err := mapfile.Save(*out, c); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Map %s written to %s", c.ID, *out)

	if *printMap {
		ui.PrintCave(c)
	}
	if *preview {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatalf("Preview requires a terminal")
		}
		if err := ui.Preview(c); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers here; the .env file may carry an unexpanded
	// variable reference that doesn't work
	apiKey := os.Getenv("HONEYCOMB_CAVEFORGE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CAVEFORGE_DATASET")
	if dataset == "" {
		dataset = "caveforge" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
