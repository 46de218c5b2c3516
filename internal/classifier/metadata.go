package classifier

// Metadata carries caller-supplied attributes extracted outside the engine
// (dimensions, durations, archive listings). It is additive context for the
// enrichment collaborator; classification never promotes or demotes a result
// because of it.
type Metadata struct {
	Image    *ImageInfo    `json:"image,omitempty"`
	Video    *VideoInfo    `json:"video,omitempty"`
	Audio    *AudioInfo    `json:"audio,omitempty"`
	Document *DocumentInfo `json:"document,omitempty"`
	Archive  *ArchiveInfo  `json:"archive,omitempty"`
	Source   *SourceInfo   `json:"source,omitempty"`
}

// ImageInfo describes image dimensions.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// VideoInfo describes media container attributes.
type VideoInfo struct {
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Codec           string `json:"codec,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

// AudioInfo describes audio stream attributes.
type AudioInfo struct {
	DurationSeconds int `json:"duration_seconds,omitempty"`
	BitrateKbps     int `json:"bitrate_kbps,omitempty"`
}

// DocumentInfo describes document attributes.
type DocumentInfo struct {
	Pages  int    `json:"pages,omitempty"`
	Author string `json:"author,omitempty"`
}

// ArchiveInfo lists archive contents.
type ArchiveInfo struct {
	Entries []string `json:"entries,omitempty"`
}

// SourceInfo describes source code attributes.
type SourceInfo struct {
	Language string `json:"language,omitempty"`
	Lines    int    `json:"lines,omitempty"`
}
