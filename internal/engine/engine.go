// Package engine assembles the steward domain systems into a single
// surface: classification, destination memory, drive identity, and
// placement planning.
package engine

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/steward/internal/classifier"
	"github.com/JaimeStill/steward/internal/destinations"
	"github.com/JaimeStill/steward/internal/drives"
	"github.com/JaimeStill/steward/internal/enrichment"
	"github.com/JaimeStill/steward/internal/placement"
)

// Engine holds all domain systems that comprise the placement engine.
type Engine struct {
	Destinations destinations.System
	Drives       drives.System
	Planner      *placement.Planner
	Enricher     enrichment.Enricher

	logger *slog.Logger
}

// New creates all domain systems from the engine runtime.
func New(runtime *Runtime) *Engine {
	destSystem := destinations.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	driveSystem := drives.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Engine{
		Destinations: destSystem,
		Drives:       driveSystem,
		Planner:      placement.NewPlanner(destSystem, runtime.Logger),
		Enricher:     newEnricher(runtime),
		logger:       runtime.Logger.With("system", "engine"),
	}
}

func newEnricher(runtime *Runtime) enrichment.Enricher {
	if !runtime.Enrichment.Enabled {
		return enrichment.Nop{}
	}
	return enrichment.NewOpenAI(runtime.Enrichment, runtime.Logger)
}

// Classify runs the pattern ladder over filename and applies the
// enrichment policy to qualifying results.
func (e *Engine) Classify(ctx context.Context, filename string, meta *classifier.Metadata) classifier.Result {
	return enrichment.Classify(ctx, e.Enricher, filename, meta, e.logger)
}
