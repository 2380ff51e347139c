package citation

import (
	"regexp"
	"strconv"
)

// markerPattern matches bracketed numeric citation markers like [1], [12].
var markerPattern = regexp.MustCompile(`\[(\d+)\]`)

// Citation is one bracketed marker resolved against a source list. Index is
// the literal 1-based number from the text. Resolved is false when the model
// cited an index beyond the current source count; renderers show the bare
// number in that case instead of failing.
type Citation struct {
	Index       int
	SourceTitle string
	Resolved    bool
}

// Markers extracts the 1-based citation indexes from assistant text, in
// order of appearance, duplicates removed.
func Markers(text string) []int {
	matches := markerPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[int]bool)
	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		idx, err := strconv.Atoi(match[1])
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		indexes = append(indexes, idx)
	}
	return indexes
}

// Resolve maps every marker in the text onto the source title list. Source
// ordering is the citation-index ordering, so marker [n] refers to
// sourceTitles[n-1]. Out-of-range markers come back unresolved rather than
// dropped, so callers can still render them.
func Resolve(text string, sourceTitles []string) []Citation {
	indexes := Markers(text)
	citations := make([]Citation, 0, len(indexes))
	for _, idx := range indexes {
		c := Citation{Index: idx}
		if idx >= 1 && idx <= len(sourceTitles) {
			c.SourceTitle = sourceTitles[idx-1]
			c.Resolved = true
		}
		citations = append(citations, c)
	}
	return citations
}
