package destinations

import (
	"math"
	"slices"
)

// RankCandidates orders destinations of a single category by confidence:
// each destination's share of the category's total confirmed uses. Ties
// break toward the most recent last use. A category with no recorded uses
// yields zero confidence for every candidate.
func RankCandidates(items []Destination) []Candidate {
	total := 0
	for _, d := range items {
		total += d.UsageCount
	}

	candidates := make([]Candidate, len(items))
	for i, d := range items {
		share := float64(d.UsageCount) / float64(max(1, total))
		candidates[i] = Candidate{
			Destination: d,
			Confidence:  share,
			Percent:     int(math.Round(share * 100)),
		}
	}

	slices.SortStableFunc(candidates, compareCandidates)
	return candidates
}

func compareCandidates(a, b Candidate) int {
	if a.Confidence != b.Confidence {
		if a.Confidence > b.Confidence {
			return -1
		}
		return 1
	}

	at, bt := a.Destination.LastUsedAt, b.Destination.LastUsedAt
	switch {
	case at == nil && bt == nil:
		return 0
	case at == nil:
		return 1
	case bt == nil:
		return -1
	case at.After(*bt):
		return -1
	case bt.After(*at):
		return 1
	default:
		return 0
	}
}
