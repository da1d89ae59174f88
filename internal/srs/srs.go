package srs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cardq/cardq/internal/domain"
)

// Grade is the caller's 0-5 assessment of a review. 3 and above counts
// as a successful recall.
type Grade int

const (
	Blackout  Grade = 0
	Wrong     Grade = 1
	Almost    Grade = 2
	Hesitant  Grade = 3
	Good      Grade = 4
	Perfect   Grade = 5
	PassGrade Grade = Hesitant
)

// SecondInterval is the interval in days after the second consecutive
// successful review. The first successful review always schedules one
// day out.
const SecondInterval = 3

// ErrInvalidGrade is returned when a grade falls outside [0, 5]. The
// card is left untouched rather than clamping, so caller bugs surface.
var ErrInvalidGrade = errors.New("srs: grade must be between 0 and 5")

// Review applies one review outcome to the card's scheduling state.
//
// On success the interval grows 1 -> SecondInterval -> round(interval *
// ease), the ease factor shifts by the SM-2 quality curve, and mastery
// climbs. On failure the repetition count and interval reset and the
// ease factor drops by 0.2. Either way the ease factor never falls
// below domain.MinEaseFactor and the card is stamped with a new
// LastReviewedAt/NextReviewAt pair. The update is all-or-nothing.
func Review(card *domain.Card, grade Grade, now time.Time) error {
	if grade < Blackout || grade > Perfect {
		return fmt.Errorf("%w: got %d", ErrInvalidGrade, grade)
	}

	if card.EaseFactor == 0 {
		card.EaseFactor = domain.DefaultEaseFactor
	}

	if grade >= PassGrade {
		card.ReviewCount++
		card.CorrectCount++
		switch {
		case card.ReviewCount <= 1:
			card.IntervalDays = 1
		case card.ReviewCount == 2:
			card.IntervalDays = SecondInterval
		default:
			card.IntervalDays = int(math.Round(float64(card.IntervalDays) * card.EaseFactor))
			if card.IntervalDays < 1 {
				card.IntervalDays = 1
			}
		}
		q := float64(grade)
		card.EaseFactor = math.Max(domain.MinEaseFactor,
			card.EaseFactor+0.1-(5-q)*(0.08+(5-q)*0.02))
		if card.Mastery < domain.MaxMastery {
			card.Mastery++
		}
	} else {
		card.ReviewCount = 0
		card.IntervalDays = 1
		card.EaseFactor = math.Max(domain.MinEaseFactor, card.EaseFactor-0.2)
		if card.Mastery > 0 {
			card.Mastery--
		}
	}

	reviewed := now
	next := now.AddDate(0, 0, card.IntervalDays)
	card.LastReviewedAt = &reviewed
	card.NextReviewAt = &next
	return nil
}
