package enrichment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/steward/internal/classifier"
)

const suggestSpec = `Respond with a JSON object matching this exact structure:

{
  "content_type": "<movie|tvshow|archive|image|document|video|audio|source_code|unknown>",
  "title": "<movie title>",
  "show_name": "<series name>",
  "year": 0,
  "season": 0,
  "episode": 0,
  "confidence": 0.0,
  "rationale": "<explanation>"
}

Field constraints:
- content_type: The single best category for the file. Use "unknown" when
  the evidence does not support a confident choice.
- title: For movies, the human-readable title without release tags. Empty
  for other content types.
- show_name: For tvshow, the series name. Empty for other content types.
- year, season, episode: Zero when not applicable or not inferable from
  the evidence.
- confidence: Your certainty in content_type as a number between 0 and 1.
  Claim more than the pattern confidence you were given only when the
  evidence genuinely supports it.
- rationale: Brief explanation of the evidence used.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Judge from the filename and supplied metadata only; never invent
  attributes that are not present
- Prefer "unknown" over guessing`

// BuildPrompt composes the enrichment prompt for a weak classification.
func BuildPrompt(filename string, result classifier.Result) (string, error) {
	var b strings.Builder

	b.WriteString("A filename classifier produced a low-confidence result. ")
	b.WriteString("Review the evidence and suggest a better classification if it supports one.\n\n")

	fmt.Fprintf(&b, "Filename: %s\n", filename)
	fmt.Fprintf(&b, "Pattern result: content_type=%s confidence=%.2f\n", result.ContentType, result.Confidence)
	if result.Extension != "" {
		fmt.Fprintf(&b, "Extension: %s\n", result.Extension)
	}

	if result.Metadata != nil {
		meta, err := json.Marshal(result.Metadata)
		if err != nil {
			return "", fmt.Errorf("marshal metadata: %w", err)
		}
		fmt.Fprintf(&b, "Extracted metadata: %s\n", meta)
	}

	b.WriteString("\n")
	b.WriteString(suggestSpec)

	return b.String(), nil
}
