package filetree

import "strings"

// Separator delimits path segments.
const Separator = "/"

// Split breaks a slash-delimited path into trimmed, non-empty segments.
func Split(path string) []string {
	raw := strings.Split(path, Separator)
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

// Join builds a normalised path from the given parts. Each part may itself
// contain separators.
func Join(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		segments = append(segments, Split(p)...)
	}
	return strings.Join(segments, Separator)
}

// Dir returns everything but the last segment of path.
func Dir(path string) string {
	segments := Split(path)
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], Separator)
}

// Base returns the last segment of path.
func Base(path string) string {
	segments := Split(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// validSegment reports whether seg can be bound as a child name.
func validSegment(seg string) bool {
	return seg != "" && seg != "." && seg != ".."
}
