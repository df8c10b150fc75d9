package note

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotableTypes are the entity types notes can attach to.
var NotableTypes = []string{"Author", "Agent", "Publisher", "Book", "Deal", "Prospect"}

func ValidNotableType(t string) bool {
	for _, known := range NotableTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Note is a free-text annotation pinned to any trackable entity.
type Note struct {
	ID          uuid.UUID `json:"id"`
	NotableType string    `json:"notable_type"`
	NotableID   uuid.UUID `json:"notable_id"`

	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview returns the content clipped to at most length runes, with a
// trailing ellipsis when clipped.
func (n *Note) Preview(length int) string {
	content := strings.TrimSpace(n.Content)
	if content == "" {
		return ""
	}
	runes := []rune(content)
	if len(runes) <= length {
		return content
	}
	if length <= 3 {
		return string(runes[:length])
	}
	return string(runes[:length-3]) + "..."
}
