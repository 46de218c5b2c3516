package classifier

// Extension tables consulted when no filename grammar matched. Video
// extensions fall back to content_type=video at confidence 0.6 with the raw
// filename as title; the remaining tables classify at confidence 0.7.
// Extensions absent from every table fall through to unknown.

var videoExts = map[string]bool{
	"mp4": true, "mkv": true, "avi": true, "mov": true,
	"wmv": true, "flv": true, "webm": true, "m4v": true,
	"mpg": true, "mpeg": true, "ts": true, "m2ts": true,
}

var audioExts = map[string]bool{
	"mp3": true, "wav": true, "flac": true, "aac": true,
	"ogg": true, "m4a": true, "wma": true, "opus": true,
	"aiff": true,
}

var imageExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
	"bmp": true, "webp": true, "tiff": true, "tif": true,
	"svg": true, "heic": true, "raw": true,
}

var archiveExts = map[string]bool{
	"zip": true, "rar": true, "7z": true, "tar": true,
	"gz": true, "bz2": true, "xz": true, "tgz": true,
	"iso": true,
}

// documentExts maps document extensions to their document_category.
var documentExts = map[string]string{
	"pdf":  "pdf",
	"doc":  "word",
	"docx": "word",
	"odt":  "word",
	"rtf":  "word",
	"xls":  "spreadsheet",
	"xlsx": "spreadsheet",
	"ods":  "spreadsheet",
	"csv":  "spreadsheet",
	"ppt":  "presentation",
	"pptx": "presentation",
	"odp":  "presentation",
	"txt":  "text",
	"md":   "text",
	"log":  "text",
	"epub": "ebook",
	"mobi": "ebook",
}

// sourceExts omits "ts": the video table claims it first (MPEG transport
// stream) and the ladder checks video before source code.
var sourceExts = map[string]bool{
	"go": true, "rs": true, "py": true, "js": true,
	"java": true, "c": true, "cpp": true, "h": true,
	"hpp": true, "cs": true, "rb": true, "php": true,
	"swift": true, "kt": true, "sh": true, "pl": true,
	"lua": true, "sql": true,
}

func matchExtension(filename, ext string) (Result, bool) {
	if ext == "" {
		return Result{}, false
	}

	if videoExts[ext] {
		return Result{
			ContentType: ContentVideo,
			Title:       filename,
			Confidence:  ConfidenceVideo,
			Extension:   ext,
			Source:      SourceDefault,
		}, true
	}

	if audioExts[ext] {
		return table(ContentAudio, ext), true
	}

	if imageExts[ext] {
		return table(ContentImage, ext), true
	}

	if archiveExts[ext] {
		r := table(ContentArchive, ext)
		r.ArchiveType = ext
		return r, true
	}

	if category, ok := documentExts[ext]; ok {
		r := table(ContentDocument, ext)
		r.DocumentCategory = category
		return r, true
	}

	if sourceExts[ext] {
		return table(ContentSourceCode, ext), true
	}

	return Result{}, false
}

func table(ct ContentType, ext string) Result {
	return Result{
		ContentType: ct,
		Confidence:  ConfidenceExtension,
		Extension:   ext,
		Source:      SourcePattern,
	}
}
