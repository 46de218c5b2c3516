package destinations

import (
	"fmt"
	gopath "path"
	"regexp"
	"strings"
)

var windowsRootPattern = regexp.MustCompile(`^[A-Za-z]:(?:/|$)`)

// NormalizePath canonicalizes a destination path: backslashes become forward
// slashes, redundant segments collapse, and trailing separators are stripped
// (except for the root itself). The path must be absolute, either rooted at
// "/" or at a drive letter ("C:/...").
func NormalizePath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: path is empty", ErrValidation)
	}

	p := strings.ReplaceAll(trimmed, "\\", "/")

	switch {
	case strings.HasPrefix(p, "/"):
		return gopath.Clean(p), nil
	case windowsRootPattern.MatchString(p):
		drive := strings.ToUpper(p[:2])
		rest := gopath.Clean("/" + p[2:])
		if rest == "/" {
			return drive + "/", nil
		}
		return drive + rest, nil
	default:
		return "", fmt.Errorf("%w: path must be absolute: %q", ErrValidation, raw)
	}
}

// IsDescendant reports whether child lies strictly under parent. Containment
// is segment-based on normalized paths: "/Videos/Movies" descends from
// "/Videos", while the sibling "/Videos2" does not.
func IsDescendant(parent, child string) bool {
	if parent == child {
		return false
	}

	prefix := parent
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return strings.HasPrefix(child, prefix)
}

// CascadeTargets selects from the active set the destination at path plus
// every destination under it. Removal deactivates exactly this set.
func CascadeTargets(path string, active []Destination) []Destination {
	var targets []Destination
	for _, d := range active {
		if d.Path == path || IsDescendant(path, d.Path) {
			targets = append(targets, d)
		}
	}
	return targets
}
