package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_NoChanges(t *testing.T) {
	snapshot := map[string]string{"first_name": "Jane", "status": "active"}

	changes := Diff(snapshot, map[string]string{"first_name": "Jane", "status": "active"})

	assert.Empty(t, changes)
}

func TestDiff_ReturnsChangedFieldsInOrder(t *testing.T) {
	before := map[string]string{"first_name": "Jane", "last_name": "Doe", "email": "jane@example.com"}
	after := map[string]string{"first_name": "Janet", "last_name": "Doe", "email": "janet@example.com"}

	changes := Diff(before, after)

	require.Len(t, changes, 2)
	assert.Equal(t, "email", changes[0].Field)
	assert.Equal(t, "jane@example.com", changes[0].Old)
	assert.Equal(t, "janet@example.com", changes[0].New)
	assert.Equal(t, "first_name", changes[1].Field)
}

func TestDiff_FieldOnOneSideCountsAsChanged(t *testing.T) {
	changes := Diff(
		map[string]string{"website": "https://old.example.com"},
		map[string]string{"bio": "New bio"},
	)

	require.Len(t, changes, 2)
	assert.Equal(t, FieldChange{Field: "bio", Old: "", New: "New bio"}, changes[0])
	assert.Equal(t, FieldChange{Field: "website", Old: "https://old.example.com", New: ""}, changes[1])
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "First name", Humanize("first_name"))
	assert.Equal(t, "Email", Humanize("email"))
	assert.Equal(t, "Genre focus", Humanize("genre_focus"))
	assert.Equal(t, "", Humanize(""))
}
