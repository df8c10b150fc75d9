package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthor_FullName(t *testing.T) {
	a := Author{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", a.FullName())
}

func TestAuthor_Initials(t *testing.T) {
	a := Author{FirstName: "jane", LastName: "doe"}
	assert.Equal(t, "JD", a.Initials())

	a = Author{FirstName: "Jane"}
	assert.Equal(t, "J", a.Initials())

	a = Author{}
	assert.Equal(t, "", a.Initials())
}

func TestAuthor_TrackedFieldsExcludesBookkeeping(t *testing.T) {
	a := Author{FirstName: "Jane", LastName: "Doe", Status: StatusActive, BooksCount: 4, Version: 7}

	fields := a.TrackedFields()

	assert.Equal(t, "Jane", fields["first_name"])
	assert.Equal(t, "active", fields["status"])
	_, hasBooksCount := fields["books_count"]
	assert.False(t, hasBooksCount)
	_, hasVersion := fields["version"]
	assert.False(t, hasVersion)
}
