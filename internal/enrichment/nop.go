package enrichment

import (
	"context"

	"github.com/JaimeStill/steward/internal/classifier"
)

// Nop is the enricher used when enrichment is disabled. It never suggests.
type Nop struct{}

func (Nop) Suggest(context.Context, string, classifier.Result) (*Suggestion, error) {
	return nil, nil
}
