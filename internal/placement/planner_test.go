package placement_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/steward/internal/classifier"
	"github.com/JaimeStill/steward/internal/destinations"
	"github.com/JaimeStill/steward/internal/placement"
	"github.com/JaimeStill/steward/pkg/pagination"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDestinations(t *testing.T, userID uuid.UUID) *destinations.Memory {
	t.Helper()
	ctx := context.Background()

	store := destinations.NewMemory(pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})

	seed := []struct {
		path     string
		category string
		uses     int
	}{
		{"/Media/Movies", "movie", 1},
		{"/Media/Shows", "tvshow", 0},
	}

	for _, s := range seed {
		if _, err := store.Add(ctx, userID, destinations.AddCommand{
			ClientID: uuid.New(),
			Path:     s.path,
			Category: s.category,
		}); err != nil {
			t.Fatalf("Add(%q) error: %v", s.path, err)
		}
		for n := 0; n < s.uses; n++ {
			if err := store.RecordUse(ctx, userID, s.path); err != nil {
				t.Fatalf("RecordUse(%q) error: %v", s.path, err)
			}
		}
	}

	return store
}

func TestPlanBatchRoutesToLearnedDestinations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	planner := placement.NewPlanner(newDestinations(t, userID), testLogger())

	files := []string{
		"Inception.2010.1080p.mkv",
		"Breaking.Bad.S01E02.mkv",
		"vacation.jpg",
	}

	plans, err := planner.PlanBatch(ctx, userID, files, "/incoming")
	if err != nil {
		t.Fatalf("PlanBatch error: %v", err)
	}
	if len(plans) != len(files) {
		t.Fatalf("plan count = %d, want %d (one per file)", len(plans), len(files))
	}
	for i, plan := range plans {
		if plan.File != files[i] {
			t.Errorf("plan[%d].File = %q, want input order preserved (%q)", i, plan.File, files[i])
		}
		if plan.Reason == "" {
			t.Errorf("plan[%d] has no reason", i)
		}
	}

	movie := plans[0]
	if movie.Category != "movie" {
		t.Errorf("movie category = %q", movie.Category)
	}
	if movie.IsFallback {
		t.Error("movie plan marked fallback despite a learned destination")
	}
	if movie.DestinationID == nil {
		t.Error("movie plan has no destination id")
	}
	wantSteps := []placement.Step{
		{Kind: placement.StepMove, Target: "/Media/Movies"},
		{Kind: placement.StepRename, Target: "Inception (2010).mkv"},
	}
	assertSteps(t, movie.Steps, wantSteps)
	if math.Abs(movie.Confidence-0.95) > 1e-9 {
		t.Errorf("movie confidence = %v, want 0.95 (quality match x full category share)", movie.Confidence)
	}

	episode := plans[1]
	assertSteps(t, episode.Steps, []placement.Step{
		{Kind: placement.StepMove, Target: "/Media/Shows"},
		{Kind: placement.StepRename, Target: "Breaking Bad - S01E02.mkv"},
	})
	if episode.IsFallback {
		t.Error("episode plan marked fallback; unused destinations still place")
	}
	if episode.Confidence != 0 {
		t.Errorf("episode confidence = %v, want 0 for a never-used destination", episode.Confidence)
	}

	image := plans[2]
	if !image.IsFallback {
		t.Error("image plan not marked fallback with no image destination")
	}
	if image.DestinationID != nil {
		t.Error("fallback plan carries a destination id")
	}
	if image.Confidence != 0 {
		t.Errorf("fallback confidence = %v, want 0", image.Confidence)
	}
	assertSteps(t, image.Steps, []placement.Step{
		{Kind: placement.StepMove, Target: "/incoming/Uncategorized"},
	})
}

func TestPlanBatchRenameOnlyWhenDerivable(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := destinations.NewMemory(pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	for path, category := range map[string]string{
		"/Videos": "video",
		"/Movies": "movie",
	} {
		if _, err := store.Add(ctx, userID, destinations.AddCommand{ClientID: uuid.New(), Path: path, Category: category}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	planner := placement.NewPlanner(store, testLogger())

	plans, err := planner.PlanBatch(ctx, userID, []string{
		"family_vacation.avi",
		"Inception (2010).mkv",
		"Inception.2010.mkv",
	}, "/incoming")
	if err != nil {
		t.Fatalf("PlanBatch error: %v", err)
	}

	if len(plans[0].Steps) != 1 || plans[0].Steps[0].Kind != placement.StepMove {
		t.Errorf("unparsed video steps = %+v, want move only", plans[0].Steps)
	}
	if len(plans[1].Steps) != 1 {
		t.Errorf("already-canonical steps = %+v, want move only", plans[1].Steps)
	}
	if len(plans[2].Steps) != 2 || plans[2].Steps[1].Kind != placement.StepRename {
		t.Errorf("dotted movie steps = %+v, want move then rename", plans[2].Steps)
	}
}

type failingCandidates struct {
	destinations.System
}

func (failingCandidates) CategoryCandidates(ctx context.Context, userID uuid.UUID, category string) ([]destinations.Candidate, error) {
	return nil, errors.New("storage offline")
}

func TestPlanBatchFallbackOnLookupFailure(t *testing.T) {
	ctx := context.Background()
	planner := placement.NewPlanner(failingCandidates{}, testLogger())

	files := []string{"Inception.2010.mkv", "notes.txt"}
	plans, err := planner.PlanBatch(ctx, uuid.New(), files, "/incoming")
	if err != nil {
		t.Fatalf("PlanBatch error = %v, want lookup failures contained per file", err)
	}
	if len(plans) != len(files) {
		t.Fatalf("plan count = %d, want %d", len(plans), len(files))
	}

	for i, plan := range plans {
		if !plan.IsFallback {
			t.Errorf("plan[%d] not fallback after lookup failure", i)
		}
		if plan.Steps[0].Target != "/incoming/Uncategorized" {
			t.Errorf("plan[%d] target = %q, want /incoming/Uncategorized", i, plan.Steps[0].Target)
		}
	}
}

func TestPlanBatchEmptyAndInvalidRoot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	planner := placement.NewPlanner(newDestinations(t, userID), testLogger())

	plans, err := planner.PlanBatch(ctx, userID, nil, "/incoming")
	if err != nil {
		t.Fatalf("PlanBatch(empty) error: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("plan count = %d, want 0", len(plans))
	}

	if _, err := planner.PlanBatch(ctx, userID, []string{"a.mkv"}, "incoming"); !errors.Is(err, destinations.ErrValidation) {
		t.Errorf("relative root error = %v, want ErrValidation", err)
	}
}

func TestPlanBatchWindowsInputs(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	planner := placement.NewPlanner(newDestinations(t, userID), testLogger())

	file := `C:\incoming\Breaking.Bad.S01E02.mkv`
	plans, err := planner.PlanBatch(ctx, userID, []string{file}, `C:\incoming`)
	if err != nil {
		t.Fatalf("PlanBatch error: %v", err)
	}

	plan := plans[0]
	if plan.File != file {
		t.Errorf("plan.File = %q, want original input preserved", plan.File)
	}
	if plan.Category != "tvshow" {
		t.Errorf("category = %q, want tvshow from the path's base name", plan.Category)
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name   string
		result classifier.Result
		want   string
	}{
		{
			"movie",
			classifier.Result{ContentType: classifier.ContentMovie, Title: "Inception", Year: 2010, Extension: "mkv"},
			"Inception (2010).mkv",
		},
		{
			"movie without year",
			classifier.Result{ContentType: classifier.ContentMovie, Title: "Inception", Extension: "mkv"},
			"",
		},
		{
			"episode zero padding",
			classifier.Result{ContentType: classifier.ContentTVShow, ShowName: "Breaking Bad", Season: 2, Episode: 5, Extension: "mkv"},
			"Breaking Bad - S02E05.mkv",
		},
		{
			"special with season zero",
			classifier.Result{ContentType: classifier.ContentTVShow, ShowName: "Sherlock", Season: 0, Episode: 1, Extension: "mkv"},
			"Sherlock - S00E01.mkv",
		},
		{
			"episode without numbers",
			classifier.Result{ContentType: classifier.ContentTVShow, ShowName: "Sherlock", Extension: "mkv"},
			"",
		},
		{
			"no canonical form for plain video",
			classifier.Result{ContentType: classifier.ContentVideo, Title: "clip.avi", Extension: "avi"},
			"",
		},
		{
			"movie without extension",
			classifier.Result{ContentType: classifier.ContentMovie, Title: "Inception", Year: 2010},
			"Inception (2010)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placement.CanonicalName(tt.result); got != tt.want {
				t.Errorf("CanonicalName = %q, want %q", got, tt.want)
			}
		})
	}
}

func assertSteps(t *testing.T, got, want []placement.Step) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("step count = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
