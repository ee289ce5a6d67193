// Package main is the entry point for the dungeonpath command.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonpath/data"
	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

func main() {
	var (
		mapFile  = flag.String("map", "", "path of a map file to solve, or '-' for stdin")
		mapName  = flag.String("name", "", "name of an embedded example map (see -list)")
		list     = flag.Bool("list", false, "list embedded example maps and exit")
		generate = flag.Bool("generate", false, "generate a random map instead of reading one")
		seed     = flag.Int64("seed", 0, "generation seed; 0 picks one from the clock")
		height   = flag.Int("height", world.DefaultHeight, "generated map height")
		width    = flag.Int("width", world.DefaultWidth, "generated map width")
		keys     = flag.Int("keys", 3, "key/door pairs to place on a generated map")
		plain    = flag.Bool("plain", false, "treat doors as walls instead of collecting keys")
	)
	flag.Parse()

	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Solver will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *list {
		listMaps()
		return
	}

	grid, err := loadGrid(ctx, *mapFile, *mapName, *generate, *seed, *height, *width, *keys)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	var route []world.Position
	if *plain {
		route = solver.FindPath(ctx, grid)
	} else {
		route = solver.FindPathWithKeys(ctx, grid)
	}

	report(grid, route)
}

// loadGrid builds the grid from whichever source the flags selected.
func loadGrid(ctx context.Context, mapFile, mapName string, generate bool, seed int64, height, width, keys int) (*world.Grid, error) {
	switch {
	case generate:
		if seed == 0 {
			seed = time.Now().UnixNano()
			log.Printf("Using seed %d", seed)
		}
		gen := world.NewGenerator(height, width, keys, rand.New(rand.NewSource(seed)))
		return gen.Generate(ctx), nil

	case mapName != "":
		registry, err := data.LoadMapRegistry()
		if err != nil {
			return nil, err
		}
		def := registry.GetByName(mapName)
		if def == nil {
			return nil, fmt.Errorf("no embedded map named %q", mapName)
		}
		rows, err := def.Rows()
		if err != nil {
			return nil, err
		}
		return world.NewGrid(rows), nil

	case mapFile == "-":
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return world.NewGrid(data.SplitRows(string(content))), nil

	case mapFile != "":
		content, err := os.ReadFile(mapFile)
		if err != nil {
			return nil, err
		}
		return world.NewGrid(data.SplitRows(string(content))), nil

	default:
		return nil, fmt.Errorf("one of -map, -name, or -generate is required")
	}
}

// listMaps prints the embedded example maps.
func listMaps() {
	registry, err := data.LoadMapRegistry()
	if err != nil {
		log.Fatalf("Failed to load embedded maps: %v", err)
	}
	for _, def := range registry.All() {
		fmt.Printf("%-10s %s\n", def.Name, def.Description)
	}
}

// report prints the outcome: the route as coordinates plus the map with the
// route overdrawn, or a note that no route exists.
func report(grid *world.Grid, route []world.Position) {
	if len(route) == 0 {
		fmt.Println("No route from start to exit.")
		return
	}

	steps := make([]string, len(route))
	for i, p := range route {
		steps[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	fmt.Printf("Route found: %d moves\n%s\n\n", len(route)-1, strings.Join(steps, " -> "))
	fmt.Print(grid.Render(route))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_DUNGEONPATH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONPATH_DATASET")
	if dataset == "" {
		dataset = "dungeonpath" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
