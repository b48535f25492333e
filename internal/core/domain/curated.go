package domain

import "strings"

// curatedMarker is the arrow delimiter used by curated name lists to
// prefix entries with an ordinal (e.g., "12 → filesystem-mcp").
const curatedMarker = "→"

// ParseCuratedName extracts the connector name from one line of a curated
// name list. Ordinal markers before the arrow delimiter are stripped.
// Blank lines yield an empty string and should be skipped by the caller.
func ParseCuratedName(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if idx := strings.Index(line, curatedMarker); idx >= 0 {
		return strings.TrimSpace(line[idx+len(curatedMarker):])
	}
	return line
}
