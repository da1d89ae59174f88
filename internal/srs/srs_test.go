package srs

import (
	"testing"
	"time"

	"github.com/cardq/cardq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewSuccessIntervalProgression(t *testing.T) {
	card := domain.NewCard("Q", "A", "Net")
	card.EaseFactor = 2.0
	now := time.Now()

	require.NoError(t, Review(card, Good, now))
	assert.Equal(t, 1, card.IntervalDays, "first success schedules one day out")

	require.NoError(t, Review(card, Good, now))
	assert.Equal(t, SecondInterval, card.IntervalDays, "second success uses the fixed second interval")

	// Third success multiplies by the ease factor. Two Good reviews left
	// the ease at 2.0, so round(3 * 2.0) = 6.
	require.NoError(t, Review(card, Good, now))
	assert.Equal(t, 6, card.IntervalDays)
	assert.Equal(t, 3, card.ReviewCount)
	assert.Equal(t, 3, card.CorrectCount)
	assert.Equal(t, 3, card.Mastery)
}

func TestReviewEaseFactorCurve(t *testing.T) {
	testCases := []struct {
		name     string
		grade    Grade
		initial  float64
		expected float64
	}{
		{"perfect raises ease", Perfect, 2.5, 2.6},
		{"good keeps ease", Good, 2.5, 2.5},
		{"hesitant lowers ease", Hesitant, 2.5, 2.36},
		{"never below the floor", Hesitant, 1.3, 1.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := domain.NewCard("Q", "A", "Net")
			card.EaseFactor = tc.initial
			require.NoError(t, Review(card, tc.grade, time.Now()))
			assert.InDelta(t, tc.expected, card.EaseFactor, 0.0001)
		})
	}
}

func TestReviewFailureResets(t *testing.T) {
	card := domain.NewCard("Q", "A", "Net")
	now := time.Now()
	require.NoError(t, Review(card, Good, now))
	require.NoError(t, Review(card, Good, now))
	require.NoError(t, Review(card, Good, now))
	easeBefore := card.EaseFactor

	require.NoError(t, Review(card, Wrong, now))

	assert.Equal(t, 0, card.ReviewCount, "failure resets the repetition count")
	assert.Equal(t, 1, card.IntervalDays)
	assert.InDelta(t, easeBefore-0.2, card.EaseFactor, 0.0001)
	assert.Equal(t, 2, card.Mastery, "mastery drops by one")
	assert.Equal(t, 3, card.CorrectCount, "correct count is never reduced")
}

func TestReviewEaseFloorOnFailure(t *testing.T) {
	card := domain.NewCard("Q", "A", "Net")
	card.EaseFactor = 1.35
	require.NoError(t, Review(card, Blackout, time.Now()))
	assert.Equal(t, domain.MinEaseFactor, card.EaseFactor)
}

func TestReviewMasteryBounds(t *testing.T) {
	card := domain.NewCard("Q", "A", "Net")
	now := time.Now()

	for i := 0; i < domain.MaxMastery+2; i++ {
		require.NoError(t, Review(card, Perfect, now))
	}
	assert.Equal(t, domain.MaxMastery, card.Mastery, "mastery is capped")

	for i := 0; i < domain.MaxMastery+2; i++ {
		require.NoError(t, Review(card, Blackout, now))
	}
	assert.Equal(t, 0, card.Mastery, "mastery never goes negative")
}

func TestReviewStampsTimestamps(t *testing.T) {
	card := domain.NewCard("Q", "A", "Net")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Review(card, Good, now))

	require.NotNil(t, card.LastReviewedAt)
	require.NotNil(t, card.NextReviewAt)
	assert.Equal(t, now, *card.LastReviewedAt)
	assert.Equal(t, now.AddDate(0, 0, 1), *card.NextReviewAt)
	assert.False(t, card.Due(now), "a just-reviewed card is no longer due")
	assert.True(t, card.Due(now.AddDate(0, 0, 1)))
}

func TestReviewInvalidGrade(t *testing.T) {
	for _, grade := range []Grade{-1, 6, 42} {
		card := domain.NewCard("Q", "A", "Net")
		before := *card

		err := Review(card, grade, time.Now())

		assert.ErrorIs(t, err, ErrInvalidGrade)
		assert.Equal(t, before, *card, "an invalid grade must leave the card untouched")
	}
}

func TestReviewZeroEaseFactorDefaults(t *testing.T) {
	// Cards from older imports may carry a zero ease factor.
	card := &domain.Card{ID: "x", Question: "Q", Answer: "A", IntervalDays: 1}
	require.NoError(t, Review(card, Good, time.Now()))
	assert.InDelta(t, domain.DefaultEaseFactor, card.EaseFactor, 0.0001)
}
