package notes

import "strings"

// Filter returns the notes whose title or body contains query, ignoring case,
// in their original order. An empty query returns notes unchanged.
func Filter(notes []Note, query string) []Note {
	if query == "" {
		return notes
	}
	term := strings.ToLower(query)

	matches := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Body), term) {
			matches = append(matches, n)
		}
	}
	return matches
}
