package placement

import (
	"fmt"

	"github.com/JaimeStill/steward/internal/classifier"
)

// CanonicalName derives the preferred filename for a classification:
// "Title (Year)" for movies and "Show - SxxEyy" (zero-padded) for episodes,
// carrying the classifier's lowercased extension. Categories without a
// canonical form return "". Season zero is valid for specials as long as an
// episode number is present.
func CanonicalName(result classifier.Result) string {
	var stem string

	switch result.ContentType {
	case classifier.ContentMovie:
		if result.Title == "" || result.Year == 0 {
			return ""
		}
		stem = fmt.Sprintf("%s (%d)", result.Title, result.Year)

	case classifier.ContentTVShow:
		if result.ShowName == "" || (result.Season == 0 && result.Episode == 0) {
			return ""
		}
		stem = fmt.Sprintf("%s - S%02dE%02d", result.ShowName, result.Season, result.Episode)

	default:
		return ""
	}

	if result.Extension == "" {
		return stem
	}
	return stem + "." + result.Extension
}
