// Package placement turns classified files into ordered placement plans
// against a user's learned destinations. Every file in a batch yields
// exactly one plan; files no destination claims fall back to a shared
// catch-all folder under the batch source root.
package placement

import (
	"github.com/google/uuid"

	"github.com/JaimeStill/steward/internal/classifier"
)

// StepKind names a placement action.
type StepKind string

// Step kinds. Plans always move; they rename only when a canonical
// filename could be derived.
const (
	StepMove   StepKind = "move"
	StepRename StepKind = "rename"
)

// Step is one ordered action in a plan. Target is the destination directory
// for move steps and the new filename for rename steps.
type Step struct {
	Kind   StepKind `json:"kind"`
	Target string   `json:"target"`
}

// Plan is the placement decision for a single file. Steps apply in order.
// Confidence combines the classification confidence with the destination's
// share of its category; fallback plans carry zero confidence and no
// destination id.
type Plan struct {
	File           string            `json:"file"`
	Category       string            `json:"category"`
	Classification classifier.Result `json:"classification"`
	Steps          []Step            `json:"steps"`
	Reason         string            `json:"reason"`
	Confidence     float64           `json:"confidence"`
	IsFallback     bool              `json:"is_fallback"`
	DestinationID  *uuid.UUID        `json:"destination_id,omitempty"`
}
