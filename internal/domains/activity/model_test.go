package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAction_Valid(t *testing.T) {
	assert.True(t, ActionStatusChanged.Valid())
	assert.True(t, ActionDealCreated.Valid())
	assert.False(t, Action("deleted").Valid())
	assert.False(t, Action("").Valid())
}

func TestFieldChangedDisplayName(t *testing.T) {
	a := Activity{FieldChanged: strPtr("genre_focus")}
	assert.Equal(t, "Genre Focus", a.FieldChangedDisplayName())

	a.FieldChanged = strPtr("email")
	assert.Equal(t, "Email", a.FieldChangedDisplayName())

	a.FieldChanged = nil
	assert.Equal(t, "", a.FieldChangedDisplayName())
}

func TestHumanDescription_PrefersStoredDescription(t *testing.T) {
	a := Activity{
		TrackableType: TypeAuthor,
		Action:        ActionCreated,
		Description:   strPtr("Converted from prospect. Project: Midnight Draft"),
	}
	assert.Equal(t, "Converted from prospect. Project: Midnight Draft", a.HumanDescription())
}

func TestHumanDescription_GeneratedFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     string
	}{
		{
			name:     "created",
			activity: Activity{TrackableType: TypeBook, Action: ActionCreated},
			want:     "Book was created",
		},
		{
			name:     "updated",
			activity: Activity{TrackableType: TypeDeal, Action: ActionUpdated},
			want:     "Deal was updated",
		},
		{
			name: "status changed",
			activity: Activity{
				TrackableType: TypeProspect,
				Action:        ActionStatusChanged,
				OldValue:      strPtr("contacted"),
				NewValue:      strPtr("evaluating"),
			},
			want: "Status changed from contacted to evaluating",
		},
		{
			name: "field changed",
			activity: Activity{
				TrackableType: TypeAuthor,
				Action:        ActionFieldChanged,
				FieldChanged:  strPtr("genre_focus"),
				OldValue:      strPtr("mystery"),
				NewValue:      strPtr("thriller"),
			},
			want: "Genre Focus changed from mystery to thriller",
		},
		{
			name:     "note added",
			activity: Activity{TrackableType: TypeAgent, Action: ActionNoteAdded},
			want:     "Note was added",
		},
		{
			name:     "representation ended",
			activity: Activity{TrackableType: TypeAuthor, Action: ActionRepresentationEnded},
			want:     "Representation was ended",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.HumanDescription())
		})
	}
}
