package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidISBN(t *testing.T) {
	valid := []string{
		"0306406152",
		"0-306-40615-2",
		"0 306 40615 2",
		"043942089X",
		"043942089x",
		"9780306406157",
		"978-0-306-40615-7",
		"979-10-90636-07-1",
	}
	for _, isbn := range valid {
		assert.True(t, ValidISBN(isbn), "expected %q to be valid", isbn)
	}

	invalid := []string{
		"",
		"030640615",
		"03064061521",
		"977-0-306-40615-7",
		"ISBN 0306406152",
		"0306-40615X2",
	}
	for _, isbn := range invalid {
		assert.False(t, ValidISBN(isbn), "expected %q to be invalid", isbn)
	}
}

func TestBook_Published(t *testing.T) {
	b := Book{Status: StatusPublished}
	assert.True(t, b.Published())

	b.Status = StatusInProduction
	assert.False(t, b.Published())
}

func TestBook_DaysSinceSubmission(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	b := Book{Status: StatusUnderReview, CreatedAt: now.AddDate(0, 0, -45)}
	days := b.DaysSinceSubmission(now)
	require.NotNil(t, days)
	assert.Equal(t, 45, *days)
}

func TestBook_DaysSinceSubmission_NilOutsidePipeline(t *testing.T) {
	now := time.Now()

	b := Book{Status: StatusManuscript, CreatedAt: now.AddDate(0, 0, -10)}
	assert.Nil(t, b.DaysSinceSubmission(now))

	b.Status = StatusOutOfPrint
	assert.Nil(t, b.DaysSinceSubmission(now))
}

func TestBook_FormattedWordCount(t *testing.T) {
	count := 95000
	b := Book{WordCount: &count}

	got := b.FormattedWordCount()
	require.NotNil(t, got)
	assert.Equal(t, "95,000 words", *got)

	short := 750
	b.WordCount = &short
	assert.Equal(t, "750 words", *b.FormattedWordCount())

	b.WordCount = nil
	assert.Nil(t, b.FormattedWordCount())
}
