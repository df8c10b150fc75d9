package search

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// EntityTypes lists the searchable types in scan order.
var EntityTypes = []string{"Author", "Publisher", "Agent", "Prospect", "Book", "Deal"}

func ValidEntityType(t string) bool {
	for _, known := range EntityTypes {
		if t == known {
			return true
		}
	}
	return false
}

const DefaultLimit = 50

// Hit is one matched record with its per-type display string.
type Hit struct {
	ID      uuid.UUID `json:"id"`
	Display string    `json:"display"`
}

// Result is a scored, highlighted hit.
type Result struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Display   string    `json:"display"`
	Relevance float64   `json:"relevance"`
	Highlight string    `json:"highlight"`
}

// Relevance scores a display string against the query: exact match of the
// whole string scores highest, then prefix, then substring, on a base of 1.
func Relevance(display, query string) float64 {
	score := 1.0
	text := strings.ToLower(display)
	q := strings.ToLower(query)

	switch {
	case text == q:
		score += 10.0
	case strings.HasPrefix(text, q):
		score += 5.0
	case strings.Contains(text, q):
		score += 2.0
	}
	return score
}

// Highlight wraps every case-insensitive occurrence of the query in a
// <mark> tag, keeping the original casing of the matched text.
func Highlight(display, query string) string {
	if strings.TrimSpace(query) == "" {
		return display
	}
	re, err := regexp.Compile("(?i)(" + regexp.QuoteMeta(query) + ")")
	if err != nil {
		return display
	}
	return re.ReplaceAllString(display, "<mark>$1</mark>")
}
