package classifier

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Episode grammars evaluated in order. All are case-insensitive and tolerate
// dot, underscore, space, and dash separators. Numeric captures strip zero
// padding via Atoi.
var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)[ ._-]+s(\d{1,2})[ ._-]*e(\d{1,3})(?:\b|_)`),
	regexp.MustCompile(`(?i)^(.+?)[ ._-]+season[ ._-]*(\d{1,2})[ ._-]+episode[ ._-]*(\d{1,3})(?:\b|_)`),
	regexp.MustCompile(`(?i)^(.+?)[ ._-]+(\d{1,2})x(\d{1,3})(?:\b|_)`),
}

// Movie grammars: "<title> (YYYY)" checked before "<title>.YYYY.<tags>" so a
// parenthesized year wins when both forms appear.
var (
	movieParenPattern = regexp.MustCompile(`^(.+?)[ ._]*\((\d{4})\)`)
	movieYearPattern  = regexp.MustCompile(`^(.+?)[ ._(-]+((?:19|20)\d{2})(?:[ ._)-]|$)`)
)

// qualityTags is the quality/rip marker vocabulary in priority order:
// resolutions before source markers before low-quality markers. The first
// tag present in the name wins regardless of its position in the string.
var qualityTags = []string{
	"2160p", "4K", "1080p", "720p", "480p",
	"BluRay", "WEB-DL", "WEBRip",
	"TELESYNC", "CAM",
}

var qualityPatterns = compileQualityPatterns()

func compileQualityPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(qualityTags))
	for i, tag := range qualityTags {
		patterns[i] = regexp.MustCompile(
			`(?i)(?:^|[ ._()\[\]-])` + regexp.QuoteMeta(tag) + `(?:$|[ ._()\[\]-])`,
		)
	}
	return patterns
}

// releaseGroupPattern captures a trailing -TOKEN suffix immediately before
// the extension. Only alphanumeric tokens qualify.
var releaseGroupPattern = regexp.MustCompile(`-([A-Za-z0-9]+)$`)

func matchEpisode(stem string) (Result, bool) {
	for _, p := range episodePatterns {
		m := p.FindStringSubmatch(stem)
		if m == nil {
			continue
		}

		season, _ := strconv.Atoi(m[2])
		episode, _ := strconv.Atoi(m[3])
		quality := matchQuality(stem)

		return Result{
			ContentType:  ContentTVShow,
			ShowName:     cleanTitle(m[1]),
			Season:       season,
			Episode:      episode,
			Quality:      quality,
			ReleaseGroup: matchReleaseGroup(stem),
			Confidence:   structuredConfidence(quality),
			Source:       SourcePattern,
		}, true
	}

	return Result{}, false
}

func matchMovie(stem string) (Result, bool) {
	for _, p := range []*regexp.Regexp{movieParenPattern, movieYearPattern} {
		m := p.FindStringSubmatch(stem)
		if m == nil {
			continue
		}

		year, _ := strconv.Atoi(m[2])
		if !plausibleYear(year) {
			continue
		}

		quality := matchQuality(stem)

		return Result{
			ContentType:  ContentMovie,
			Title:        cleanTitle(m[1]),
			Year:         year,
			Quality:      quality,
			ReleaseGroup: matchReleaseGroup(stem),
			Confidence:   structuredConfidence(quality),
			Source:       SourcePattern,
		}, true
	}

	return Result{}, false
}

func matchQuality(stem string) string {
	for i, p := range qualityPatterns {
		if p.MatchString(stem) {
			return qualityTags[i]
		}
	}
	return ""
}

func matchReleaseGroup(stem string) string {
	m := releaseGroupPattern.FindStringSubmatch(stem)
	if m == nil {
		return ""
	}
	return m[1]
}

func structuredConfidence(quality string) float64 {
	if quality != "" {
		return ConfidenceStructuredQuality
	}
	return ConfidenceStructured
}

// plausibleYear bounds release years to 1900 through next year.
func plausibleYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}

// cleanTitle converts dot and underscore separators to spaces, collapses
// runs of whitespace, and trims stray separators from the edges.
func cleanTitle(raw string) string {
	s := strings.NewReplacer(".", " ", "_", " ").Replace(raw)
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -")
}
