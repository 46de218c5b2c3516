// Package classifier implements filename-driven content classification for Steward.
// It derives a typed classification result from a bare filename using an ordered
// pattern ladder: episode grammars, then movie-year grammars, then extension
// tables, then fixed fallbacks. Matching never fails; every input produces a
// result with a deterministic confidence.
package classifier

import (
	"path/filepath"
	"strings"
)

// ContentType identifies the category a file was classified into.
type ContentType string

// Content types recognized by the classifier.
const (
	ContentMovie      ContentType = "movie"
	ContentTVShow     ContentType = "tvshow"
	ContentArchive    ContentType = "archive"
	ContentImage      ContentType = "image"
	ContentDocument   ContentType = "document"
	ContentVideo      ContentType = "video"
	ContentAudio      ContentType = "audio"
	ContentSourceCode ContentType = "source_code"
	ContentUnknown    ContentType = "unknown"
)

// Source records how a classification was produced.
type Source string

// Classification sources. Pattern results come from filename structure,
// enriched results were refined by the optional AI collaborator, and default
// results are the fixed fallbacks.
const (
	SourcePattern  Source = "pattern"
	SourceEnriched Source = "enriched"
	SourceDefault  Source = "default"
)

// Confidence levels assigned by the ladder. Structured grammar matches score
// 0.9 (0.95 when a quality tag is also present), extension-table matches 0.7,
// unparsed video files 0.6, and unrecognized inputs 0.5.
const (
	ConfidenceStructured        = 0.9
	ConfidenceStructuredQuality = 0.95
	ConfidenceExtension         = 0.7
	ConfidenceVideo             = 0.6
	ConfidenceUnknown           = 0.5
)

// Result is the typed output of a classification.
type Result struct {
	ContentType      ContentType `json:"content_type"`
	Title            string      `json:"title,omitempty"`
	ShowName         string      `json:"show_name,omitempty"`
	Year             int         `json:"year,omitempty"`
	Season           int         `json:"season,omitempty"`
	Episode          int         `json:"episode,omitempty"`
	Quality          string      `json:"quality,omitempty"`
	ReleaseGroup     string      `json:"release_group,omitempty"`
	ArchiveType      string      `json:"archive_type,omitempty"`
	DocumentCategory string      `json:"document_category,omitempty"`
	Extension        string      `json:"extension,omitempty"`
	Confidence       float64     `json:"confidence"`
	Source           Source      `json:"source"`
	Metadata         *Metadata   `json:"metadata,omitempty"`
}

// Category returns the destination category key for this result.
func (r Result) Category() string {
	return string(r.ContentType)
}

// ParseContentType validates a content type token, case-insensitively.
func ParseContentType(s string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	switch ct {
	case ContentMovie, ContentTVShow, ContentArchive, ContentImage,
		ContentDocument, ContentVideo, ContentAudio, ContentSourceCode,
		ContentUnknown:
		return ct, true
	default:
		return "", false
	}
}

// Classify derives a Result from a filename. Optional metadata attaches to
// the result as additive context; it never changes the content type or the
// confidence the ladder assigned.
func Classify(filename string, meta *Metadata) Result {
	ext := extension(filename)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	if r, ok := matchEpisode(stem); ok {
		r.Extension = ext
		r.Metadata = meta
		return r
	}

	if r, ok := matchMovie(stem); ok {
		r.Extension = ext
		r.Metadata = meta
		return r
	}

	if r, ok := matchExtension(filename, ext); ok {
		r.Metadata = meta
		return r
	}

	return Result{
		ContentType: ContentUnknown,
		Confidence:  ConfidenceUnknown,
		Extension:   ext,
		Source:      SourceDefault,
		Metadata:    meta,
	}
}

// extension returns the lowercased filename extension without the dot.
func extension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
