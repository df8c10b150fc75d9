package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Action identifies what kind of change an Activity records.
type Action string

const (
	ActionCreated             Action = "created"
	ActionUpdated             Action = "updated"
	ActionStatusChanged       Action = "status_changed"
	ActionFieldChanged        Action = "field_changed"
	ActionNoteAdded           Action = "note_added"
	ActionNoteUpdated         Action = "note_updated"
	ActionNoteDeleted         Action = "note_deleted"
	ActionRepresentationAdded Action = "representation_added"
	ActionRepresentationEnded Action = "representation_ended"
	ActionDealCreated         Action = "deal_created"
)

// Actions lists every valid action value.
var Actions = []Action{
	ActionCreated,
	ActionUpdated,
	ActionStatusChanged,
	ActionFieldChanged,
	ActionNoteAdded,
	ActionNoteUpdated,
	ActionNoteDeleted,
	ActionRepresentationAdded,
	ActionRepresentationEnded,
	ActionDealCreated,
}

func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// Trackable entity type discriminators. Activities and notes reference their
// subject through a (type, id) pair rather than a foreign key per table.
const (
	TypeAuthor    = "Author"
	TypeAgent     = "Agent"
	TypePublisher = "Publisher"
	TypeBook      = "Book"
	TypeDeal      = "Deal"
	TypeProspect  = "Prospect"
)

// Activity is an append-only audit record describing one state change to a
// tracked entity. It is never edited after creation; it is deleted only when
// its subject is deleted (except the final deletion record, which survives).
type Activity struct {
	ID            uuid.UUID `json:"id"`
	TrackableType string    `json:"trackable_type"`
	TrackableID   uuid.UUID `json:"trackable_id"`
	Action        Action    `json:"action"`
	FieldChanged  *string   `json:"field_changed,omitempty"`
	OldValue      *string   `json:"old_value,omitempty"`
	NewValue      *string   `json:"new_value,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Metadata      Metadata  `json:"metadata,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Metadata is a free-form bag attached to an activity, stored as jsonb.
type Metadata map[string]interface{}

// FieldChangedDisplayName returns the changed field as a title-cased label,
// e.g. "first_name" -> "First Name".
func (a *Activity) FieldChangedDisplayName() string {
	if a.FieldChanged == nil || *a.FieldChanged == "" {
		return ""
	}

	words := strings.Split(*a.FieldChanged, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// HumanDescription returns the stored description, falling back to a
// generated one per action.
func (a *Activity) HumanDescription() string {
	if a.Description != nil && *a.Description != "" {
		return *a.Description
	}

	switch a.Action {
	case ActionCreated:
		return fmt.Sprintf("%s was created", a.TrackableType)
	case ActionUpdated:
		return fmt.Sprintf("%s was updated", a.TrackableType)
	case ActionStatusChanged:
		return fmt.Sprintf("Status changed from %s to %s", deref(a.OldValue), deref(a.NewValue))
	case ActionFieldChanged:
		return fmt.Sprintf("%s changed from %s to %s", a.FieldChangedDisplayName(), deref(a.OldValue), deref(a.NewValue))
	case ActionNoteAdded:
		return "Note was added"
	case ActionNoteUpdated:
		return "Note was updated"
	case ActionNoteDeleted:
		return "Note was deleted"
	case ActionRepresentationAdded:
		return "Representation was added"
	case ActionRepresentationEnded:
		return "Representation was ended"
	case ActionDealCreated:
		return "Deal was created"
	default:
		return fmt.Sprintf("Activity: %s", a.Action)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
