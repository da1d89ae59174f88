package quiz

import "errors"

var (
	// ErrInsufficientPool is returned when the pool cannot support a
	// quiz: fewer than MinPoolSize cards at start, or an empty wrong
	// queue on a review-wrong restart.
	ErrInsufficientPool = errors.New("quiz: not enough cards in the pool")

	// ErrCorruptResume is returned when a saved session blob is
	// malformed or references cards missing from the corpus.
	ErrCorruptResume = errors.New("quiz: saved session is corrupt")

	// ErrNotActive is returned when an operation needs a question on
	// screen (present or submit) but the session is elsewhere.
	ErrNotActive = errors.New("quiz: session has no active question")

	// ErrNotFinished is returned when results are requested before the
	// last question has been answered.
	ErrNotFinished = errors.New("quiz: session is not finished")
)
