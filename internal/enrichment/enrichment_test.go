package enrichment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/JaimeStill/steward/internal/classifier"
	"github.com/JaimeStill/steward/internal/enrichment"
	"github.com/JaimeStill/steward/pkg/formatting"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       bool
	}{
		{"structured match is final", classifier.ConfidenceStructured, false},
		{"quality-tagged match is final", classifier.ConfidenceStructuredQuality, false},
		{"extension match is final", classifier.ConfidenceExtension, false},
		{"unparsed video qualifies", classifier.ConfidenceVideo, true},
		{"unknown qualifies", classifier.ConfidenceUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := classifier.Result{Confidence: tt.confidence}
			if got := enrichment.Eligible(r); got != tt.want {
				t.Errorf("Eligible(%v) = %v, want %v", tt.confidence, got, tt.want)
			}
		})
	}
}

func TestApplyMergesSuggestion(t *testing.T) {
	base := classifier.Result{
		ContentType: classifier.ContentUnknown,
		Confidence:  classifier.ConfidenceUnknown,
		Extension:   "mkv",
		Source:      classifier.SourceDefault,
	}

	applied := enrichment.Apply(base, &enrichment.Suggestion{
		ContentType: "movie",
		Title:       "Inception",
		Year:        2010,
		Confidence:  0.8,
	})

	if applied.ContentType != classifier.ContentMovie {
		t.Errorf("content type = %q, want movie", applied.ContentType)
	}
	if applied.Title != "Inception" || applied.Year != 2010 {
		t.Errorf("title/year = %q/%d, want Inception/2010", applied.Title, applied.Year)
	}
	if applied.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", applied.Confidence)
	}
	if applied.Source != classifier.SourceEnriched {
		t.Errorf("source = %q, want enriched", applied.Source)
	}
	if applied.Extension != "mkv" {
		t.Errorf("extension = %q, want preserved", applied.Extension)
	}
}

func TestApplyRejections(t *testing.T) {
	weak := classifier.Result{
		ContentType: classifier.ContentVideo,
		Title:       "clip.avi",
		Confidence:  classifier.ConfidenceVideo,
		Extension:   "avi",
		Source:      classifier.SourceDefault,
	}
	strong := classifier.Result{
		ContentType: classifier.ContentMovie,
		Title:       "Inception",
		Year:        2010,
		Confidence:  classifier.ConfidenceStructured,
		Source:      classifier.SourcePattern,
	}

	tests := []struct {
		name       string
		result     classifier.Result
		suggestion *enrichment.Suggestion
	}{
		{"nil suggestion", weak, nil},
		{"high-confidence result never overridden", strong, &enrichment.Suggestion{ContentType: "tvshow", Confidence: 0.99}},
		{"unknown content type token", weak, &enrichment.Suggestion{ContentType: "podcast", Confidence: 0.9}},
		{"no confidence gain", weak, &enrichment.Suggestion{ContentType: "movie", Confidence: 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enrichment.Apply(tt.result, tt.suggestion); got != tt.result {
				t.Errorf("Apply changed the result: %+v", got)
			}
		})
	}
}

func TestApplyClampsConfidence(t *testing.T) {
	base := classifier.Result{
		ContentType: classifier.ContentUnknown,
		Confidence:  classifier.ConfidenceUnknown,
	}

	applied := enrichment.Apply(base, &enrichment.Suggestion{
		ContentType: "Movie",
		Title:       "Inception",
		Confidence:  1.4,
	})

	if applied.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", applied.Confidence)
	}
	if applied.ContentType != classifier.ContentMovie {
		t.Errorf("content type = %q, want case-insensitive token accepted", applied.ContentType)
	}
}

func TestBuildPrompt(t *testing.T) {
	result := classifier.Result{
		ContentType: classifier.ContentVideo,
		Title:       "family_vacation.avi",
		Confidence:  classifier.ConfidenceVideo,
		Extension:   "avi",
		Metadata: &classifier.Metadata{
			Video: &classifier.VideoInfo{DurationSeconds: 5400, Width: 1920, Height: 1080},
		},
	}

	prompt, err := enrichment.BuildPrompt("family_vacation.avi", result)
	if err != nil {
		t.Fatalf("BuildPrompt error: %v", err)
	}

	for _, want := range []string{
		"Filename: family_vacation.avi",
		"content_type=video",
		"Extension: avi",
		`"duration_seconds":5400`,
		`"content_type"`,
		"no markdown fencing",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptWithoutMetadata(t *testing.T) {
	prompt, err := enrichment.BuildPrompt("data.xyz", classifier.Result{
		ContentType: classifier.ContentUnknown,
		Confidence:  classifier.ConfidenceUnknown,
		Extension:   "xyz",
	})
	if err != nil {
		t.Fatalf("BuildPrompt error: %v", err)
	}

	if strings.Contains(prompt, "Extracted metadata") {
		t.Error("prompt mentions metadata for a result without any")
	}
}

func TestParseFencedSuggestion(t *testing.T) {
	content := "```json\n{\"content_type\": \"tvshow\", \"show_name\": \"Sherlock\", \"season\": 1, \"episode\": 2, \"confidence\": 0.85}\n```"

	s, err := formatting.Parse[enrichment.Suggestion](content)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if s.ContentType != "tvshow" || s.ShowName != "Sherlock" {
		t.Errorf("parsed suggestion = %+v", s)
	}
	if s.Season != 1 || s.Episode != 2 || s.Confidence != 0.85 {
		t.Errorf("parsed numbers = %+v", s)
	}
}

func TestNopNeverSuggests(t *testing.T) {
	s, err := enrichment.Nop{}.Suggest(context.Background(), "data.xyz", classifier.Result{})
	if err != nil {
		t.Fatalf("Nop.Suggest error: %v", err)
	}
	if s != nil {
		t.Errorf("Nop suggested %+v, want nil", s)
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := enrichment.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if cfg.Enabled {
		t.Error("enrichment enabled by default")
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.MaxTokens != 300 {
		t.Errorf("max tokens = %d, want 300", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", cfg.Temperature)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_ENRICH_ENABLED", "true")
	t.Setenv("TEST_ENRICH_MODEL", "llama3.1")
	t.Setenv("TEST_ENRICH_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("TEST_ENRICH_MAX_TOKENS", "512")

	cfg := enrichment.Config{}
	err := cfg.Finalize(&enrichment.Env{
		Enabled:   "TEST_ENRICH_ENABLED",
		Model:     "TEST_ENRICH_MODEL",
		BaseURL:   "TEST_ENRICH_BASE_URL",
		MaxTokens: "TEST_ENRICH_MAX_TOKENS",
	})
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled not overridden from environment")
	}
	if cfg.Model != "llama3.1" {
		t.Errorf("model = %q, want llama3.1", cfg.Model)
	}
	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("max tokens = %d, want 512", cfg.MaxTokens)
	}
}

func TestConfigValidate(t *testing.T) {
	bad := enrichment.Config{Enabled: true, Temperature: 3.5}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize accepted out-of-range temperature")
	}

	disabled := enrichment.Config{Enabled: false, Temperature: 3.5}
	if err := disabled.Finalize(nil); err != nil {
		t.Errorf("Finalize error = %v; disabled config should skip validation", err)
	}
}
