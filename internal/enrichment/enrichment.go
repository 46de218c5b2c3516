// Package enrichment refines weak classifications through an optional
// OpenAI-compatible model. The pattern ladder stays authoritative: only
// results below the extension-table confidence are eligible, and a
// suggestion is applied only when it claims more confidence than the
// ladder assigned.
package enrichment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JaimeStill/steward/internal/classifier"
)

// ErrSuggestFailed wraps enrichment transport and parse failures.
var ErrSuggestFailed = errors.New("enrichment suggestion failed")

// Suggestion is a proposed refinement of a weak classification.
type Suggestion struct {
	ContentType string  `json:"content_type"`
	Title       string  `json:"title,omitempty"`
	ShowName    string  `json:"show_name,omitempty"`
	Year        int     `json:"year,omitempty"`
	Season      int     `json:"season,omitempty"`
	Episode     int     `json:"episode,omitempty"`
	Confidence  float64 `json:"confidence"`
	Rationale   string  `json:"rationale,omitempty"`
}

// Enricher proposes refinements for weak classifications.
type Enricher interface {
	// Suggest returns a refinement for a classification, or nil when the
	// enricher has nothing to offer.
	Suggest(ctx context.Context, filename string, result classifier.Result) (*Suggestion, error)
}

// Eligible reports whether a result is weak enough to refine. Structured
// and extension-table matches are final; only unparsed video and unknown
// results qualify.
func Eligible(result classifier.Result) bool {
	return result.Confidence < classifier.ConfidenceExtension
}

// Classify runs the pattern ladder over filename and consults e when the
// result qualifies for refinement. Enricher failures are logged and the
// pattern result stands.
func Classify(ctx context.Context, e Enricher, filename string, meta *classifier.Metadata, logger *slog.Logger) classifier.Result {
	result := classifier.Classify(filename, meta)
	if !Eligible(result) {
		return result
	}

	suggestion, err := e.Suggest(ctx, filename, result)
	if err != nil {
		logger.Warn("enrichment failed", "filename", filename, "error", err)
		return result
	}

	return Apply(result, suggestion)
}

// Apply merges a suggestion into a result. The suggestion must name a known
// content type and claim more confidence than the ladder did; anything else
// returns the result unchanged. Applied results keep their extension and
// metadata and are marked Source=enriched.
func Apply(result classifier.Result, s *Suggestion) classifier.Result {
	if s == nil || !Eligible(result) {
		return result
	}

	ct, ok := classifier.ParseContentType(s.ContentType)
	if !ok || s.Confidence <= result.Confidence {
		return result
	}

	enriched := result
	enriched.ContentType = ct
	enriched.Confidence = min(s.Confidence, 1)
	enriched.Source = classifier.SourceEnriched

	if s.Title != "" {
		enriched.Title = s.Title
	}
	if s.ShowName != "" {
		enriched.ShowName = s.ShowName
	}
	if s.Year > 0 {
		enriched.Year = s.Year
	}
	if s.Season > 0 {
		enriched.Season = s.Season
	}
	if s.Episode > 0 {
		enriched.Episode = s.Episode
	}

	return enriched
}
