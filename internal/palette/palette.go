// Package palette assigns display colors to destinations from a fixed
// ordered palette. Assignment prefers the first palette entry not already in
// use; once every entry is taken, selection cycles by the count of distinct
// colors in use (palette[count % N]), which can repeat a color that is still
// in use. That repeat is the intended cycling behavior.
package palette

import (
	"regexp"
	"strings"
)

var palette = []string{
	"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#ffeaa7",
	"#dda0dd", "#98d8c8", "#f7dc6f", "#bb8fca", "#85c1e9",
}

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Colors returns the palette in assignment order.
func Colors() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// Normalize lowercases a hex color and expands shorthand #rgb to #rrggbb.
// The second return reports whether the input was a valid hex color.
func Normalize(color string) (string, bool) {
	if !hexPattern.MatchString(color) {
		return "", false
	}

	color = strings.ToLower(color)
	if len(color) == 4 {
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range color[1:] {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		color = b.String()
	}

	return color, true
}

// Valid reports whether color is a hex color in #rgb or #rrggbb form.
func Valid(color string) bool {
	_, ok := Normalize(color)
	return ok
}

// Assign picks a color given the colors already assigned: the first palette
// entry not in use, or palette[count % N] once the palette is exhausted,
// where count is the number of distinct colors in use. Duplicate and invalid
// entries in existing do not advance the cycle.
func Assign(existing []string) string {
	used := usedSet(existing)

	for _, c := range palette {
		if !used[c] {
			return c
		}
	}

	return palette[len(used)%len(palette)]
}

// Preferred returns the normalized candidate when it is a valid hex color
// not already in use; otherwise it falls back to Assign.
func Preferred(existing []string, candidate string) string {
	normalized, ok := Normalize(candidate)
	if !ok {
		return Assign(existing)
	}

	if usedSet(existing)[normalized] {
		return Assign(existing)
	}

	return normalized
}

func usedSet(existing []string) map[string]bool {
	used := make(map[string]bool, len(existing))
	for _, c := range existing {
		if normalized, ok := Normalize(c); ok {
			used[normalized] = true
		}
	}
	return used
}
