package placement

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/steward/internal/classifier"
	"github.com/JaimeStill/steward/internal/destinations"
)

// FallbackFolder is the catch-all directory under the batch source root for
// files no destination claims.
const FallbackFolder = "Uncategorized"

// Planner builds placement plans from classifications and a user's learned
// destinations.
type Planner struct {
	destinations destinations.System
	logger       *slog.Logger
}

// NewPlanner creates a Planner backed by the given destination system.
func NewPlanner(dest destinations.System, logger *slog.Logger) *Planner {
	return &Planner{
		destinations: dest,
		logger:       logger.With("system", "placement"),
	}
}

// PlanBatch produces exactly one plan per input file, preserving input
// order. Classification fans out across bounded workers; destination
// resolution runs sequentially with one candidate lookup per distinct
// category. A failed lookup downgrades the affected file to a fallback
// plan, it never aborts the batch.
func (p *Planner) PlanBatch(
	ctx context.Context,
	userID uuid.UUID,
	files []string,
	sourceRoot string,
) ([]Plan, error) {
	root, err := destinations.NormalizePath(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("source root: %w", err)
	}

	if len(files) == 0 {
		return []Plan{}, nil
	}

	results := make([]classifier.Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(files)))

	for i := range files {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = classifier.Classify(baseName(files[i]), nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}

	candidates := make(map[string][]destinations.Candidate)

	plans := make([]Plan, len(files))
	for i, file := range files {
		plans[i] = p.plan(ctx, userID, file, root, results[i], candidates)
	}

	p.logger.Info(
		"batch planned",
		"user_id", userID,
		"files", len(files),
		"fallbacks", countFallbacks(plans),
	)
	return plans, nil
}

func (p *Planner) plan(
	ctx context.Context,
	userID uuid.UUID,
	file string,
	sourceRoot string,
	result classifier.Result,
	cache map[string][]destinations.Candidate,
) Plan {
	category := result.Category()

	best, err := p.bestCandidate(ctx, userID, category, cache)
	if err != nil {
		p.logger.Warn(
			"candidate lookup failed, using fallback",
			"file", file,
			"category", category,
			"error", err,
		)
		return fallbackPlan(file, sourceRoot, result,
			fmt.Sprintf("destination lookup failed for category %s", category))
	}
	if best == nil {
		return fallbackPlan(file, sourceRoot, result,
			fmt.Sprintf("no active destination for category %s", category))
	}

	steps := []Step{{Kind: StepMove, Target: best.Path}}
	if name := CanonicalName(result); name != "" && name != baseName(file) {
		steps = append(steps, Step{Kind: StepRename, Target: name})
	}

	id := best.ID
	return Plan{
		File:           file,
		Category:       category,
		Classification: result,
		Steps:          steps,
		Reason: fmt.Sprintf(
			"classified as %s; %s holds %d%% of recorded usage for the category",
			category, best.Path, best.Percent,
		),
		Confidence:    result.Confidence * best.Confidence,
		DestinationID: &id,
	}
}

// bestCandidate returns the top-ranked destination for a category, nil when
// the category has none. Lookups are cached for the life of one batch.
func (p *Planner) bestCandidate(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	cache map[string][]destinations.Candidate,
) (*destinations.Candidate, error) {
	ranked, ok := cache[category]
	if !ok {
		var err error
		ranked, err = p.destinations.CategoryCandidates(ctx, userID, category)
		if err != nil {
			return nil, err
		}
		cache[category] = ranked
	}

	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

func fallbackPlan(file, sourceRoot string, result classifier.Result, reason string) Plan {
	return Plan{
		File:           file,
		Category:       result.Category(),
		Classification: result,
		Steps: []Step{{
			Kind:   StepMove,
			Target: path.Join(sourceRoot, FallbackFolder),
		}},
		Reason:     reason,
		Confidence: 0,
		IsFallback: true,
	}
}

func baseName(file string) string {
	return path.Base(strings.ReplaceAll(file, "\\", "/"))
}

func countFallbacks(plans []Plan) int {
	n := 0
	for _, p := range plans {
		if p.IsFallback {
			n++
		}
	}
	return n
}

func workerCount(fileCount int) int {
	return max(min(runtime.NumCPU(), fileCount), 1)
}
