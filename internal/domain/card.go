package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scheduling defaults and bounds. EaseFactor never drops below
// MinEaseFactor and Mastery always stays in [0, MaxMastery].
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxMastery        = 5
)

// Card is a single reviewable question/answer unit. The scheduling
// fields are mutated only through srs.Review; everything else is owned
// by the caller.
type Card struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Image       string   `json:"image,omitempty"`
	Folder      string   `json:"folder"`
	Tags        []string `json:"tags,omitempty"`

	IntervalDays   int        `json:"intervalDays"`
	EaseFactor     float64    `json:"easeFactor"`
	ReviewCount    int        `json:"reviewCount"`
	CorrectCount   int        `json:"correctCount"`
	Mastery        int        `json:"mastery"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	NextReviewAt   *time.Time `json:"nextReviewAt,omitempty"`

	CreatedAt time.Time `json:"created"`
}

// NewCard creates a card with default scheduling state. A nil
// NextReviewAt means the card has never been scheduled and is due now.
func NewCard(question, answer, folder string) *Card {
	return &Card{
		ID:           uuid.NewString(),
		Question:     question,
		Answer:       answer,
		Folder:       folder,
		IntervalDays: 1,
		EaseFactor:   DefaultEaseFactor,
		CreatedAt:    time.Now(),
	}
}

// Due reports whether the card should be reviewed at the given time.
func (c *Card) Due(now time.Time) bool {
	return c.NextReviewAt == nil || !c.NextReviewAt.After(now)
}
