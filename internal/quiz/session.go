// Package quiz runs a bounded self-test over a card pool. A session
// walks Setup -> Active -> Feedback -> ... -> Result, feeding every
// answer back into the scheduler. Timing, rendering, and persistence of
// the resume blob stay with the caller.
package quiz

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cardq/cardq/internal/deck"
	"github.com/cardq/cardq/internal/distract"
	"github.com/cardq/cardq/internal/domain"
	"github.com/cardq/cardq/internal/srs"
)

// Mode selects how answers are collected.
type Mode string

const (
	ModeMultipleChoice Mode = "multipleChoice"
	ModeTyped          Mode = "typed"
)

// State is the session's position in its lifecycle.
type State int

const (
	StateSetup State = iota
	StateActive
	StateFeedback
	StateResult
)

// MinPoolSize is the smallest pool a quiz can start from: multiple
// choice needs at least one other card as a distractor source.
const MinPoolSize = 2

// Grades recorded against the scheduler for quiz answers.
const (
	correctGrade = srs.Good
	wrongGrade   = srs.Wrong
)

// DistractorCount is how many wrong options a multiple-choice question
// asks for. Fewer may be shown when the corpus cannot supply them.
const DistractorCount = 3

// Session is one in-flight quiz. Not safe for concurrent use.
type Session struct {
	queue    []*domain.Card
	corpus   []*domain.Card
	cursor   int
	score    int
	wrong    []*domain.Card
	mode     Mode
	state    State
	answered bool
	elapsed  int
	rng      *rand.Rand
}

// Question is one presentation: the card plus, in multiple-choice mode,
// the shuffled options (correct answer included).
type Question struct {
	Card    *domain.Card
	Choices []string
}

// Answer is the outcome of a submission.
type Answer struct {
	Correct       bool
	CorrectAnswer string
}

// Summary is the final score sheet.
type Summary struct {
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
	Elapsed    int            `json:"elapsedSeconds"`
	Wrong      []*domain.Card `json:"wrong"`
}

// Start shuffles the pool, truncates it to size, and opens the session
// on the first question. The corpus (usually the whole card store) is
// kept for distractor generation; a nil corpus falls back to the pool.
func Start(pool, corpus []*domain.Card, size int, mode Mode, rng *rand.Rand) (*Session, error) {
	if len(pool) < MinPoolSize {
		return nil, ErrInsufficientPool
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if corpus == nil {
		corpus = pool
	}

	q, err := deck.Build(pool, deck.Options{Folder: deck.FolderAll, Shuffle: true}, rng, time.Now())
	if err != nil {
		return nil, err
	}
	shuffled := q.Cards()
	if size > 0 && size < len(shuffled) {
		shuffled = shuffled[:size]
	}

	return &Session{
		queue:  shuffled,
		corpus: corpus,
		mode:   mode,
		state:  StateActive,
		rng:    rng,
	}, nil
}

// ReviewWrong starts a fresh run over the cards missed in this session,
// in the same mode. The wrong queue is taken as-is, not reshuffled.
func (s *Session) ReviewWrong() (*Session, error) {
	if len(s.wrong) == 0 {
		return nil, ErrInsufficientPool
	}
	return &Session{
		queue:  append([]*domain.Card(nil), s.wrong...),
		corpus: s.corpus,
		mode:   s.mode,
		state:  StateActive,
		rng:    s.rng,
	}, nil
}

// Present returns the current question. In multiple-choice mode the
// options are the correct answer plus generated distractors, shuffled;
// order is the only tie-break.
func (s *Session) Present() (*Question, error) {
	if s.state != StateActive {
		return nil, ErrNotActive
	}
	card := s.queue[s.cursor]
	q := &Question{Card: card}
	if s.mode == ModeMultipleChoice {
		choices := distract.Generate(card, s.corpus, DistractorCount, s.rng)
		choices = append(choices, card.Answer)
		for i := len(choices) - 1; i > 0; i-- {
			j := s.rng.IntN(i + 1)
			choices[i], choices[j] = choices[j], choices[i]
		}
		q.Choices = choices
	}
	return q, nil
}

// Submit grades the response for the current question, records the
// review on the card (grade 4 on correct, 1 on wrong), and moves to
// feedback. Score, wrong queue, and scheduling update together or not
// at all.
func (s *Session) Submit(response string, now time.Time) (Answer, error) {
	if s.state != StateActive || s.answered {
		return Answer{}, ErrNotActive
	}
	card := s.queue[s.cursor]

	var correct bool
	switch s.mode {
	case ModeTyped:
		correct = typedMatch(response, card.Answer)
	default:
		correct = response == card.Answer
	}

	grade := wrongGrade
	if correct {
		grade = correctGrade
	}
	if err := srs.Review(card, grade, now); err != nil {
		return Answer{}, err
	}

	if correct {
		s.score++
	} else {
		s.wrong = append(s.wrong, card)
	}
	s.answered = true
	s.state = StateFeedback
	return Answer{Correct: correct, CorrectAnswer: card.Answer}, nil
}

// typedMatch accepts an exact case-insensitive match, or a response
// that appears inside the correct answer and covers more than half its
// length. The substring leniency is intentional: partial recall of a
// long answer counts.
func typedMatch(response, answer string) bool {
	user := strings.TrimSpace(response)
	correct := strings.TrimSpace(answer)
	if strings.EqualFold(user, correct) {
		return true
	}
	if user == "" {
		return false
	}
	return strings.Contains(strings.ToLower(correct), strings.ToLower(user)) &&
		float64(len([]rune(user))) > float64(len([]rune(correct)))*0.5
}

// Next leaves feedback for the next question, or for the result screen
// when the queue is exhausted. It reports whether the session finished.
func (s *Session) Next() bool {
	if s.state != StateFeedback {
		return s.state == StateResult
	}
	s.cursor++
	s.answered = false
	if s.cursor >= len(s.queue) {
		s.state = StateResult
		return true
	}
	s.state = StateActive
	return false
}

// Abort discards the in-flight run and returns the session to setup.
// Reviews already committed through Submit stay on their cards.
func (s *Session) Abort() {
	s.state = StateSetup
	s.answered = false
}

// Tick adds caller-measured seconds to the elapsed counter. The session
// owns no timers of its own.
func (s *Session) Tick(seconds int) { s.elapsed += seconds }

// Result returns the final summary once the last question is done.
func (s *Session) Result() (Summary, error) {
	if s.state != StateResult {
		return Summary{}, ErrNotFinished
	}
	pct := 0
	if len(s.queue) > 0 {
		pct = int(float64(s.score)/float64(len(s.queue))*100 + 0.5)
	}
	return Summary{
		Score:      s.score,
		Total:      len(s.queue),
		Percentage: pct,
		Elapsed:    s.elapsed,
		Wrong:      append([]*domain.Card(nil), s.wrong...),
	}, nil
}

// State reports the session's lifecycle position.
func (s *Session) State() State { return s.state }

// Score reports the running number of correct answers.
func (s *Session) Score() int { return s.score }

// Pos reports the zero-based index of the current question.
func (s *Session) Pos() int { return s.cursor }

// Len reports the number of questions in this run.
func (s *Session) Len() int { return len(s.queue) }

// Elapsed reports the accumulated seconds fed in through Tick.
func (s *Session) Elapsed() int { return s.elapsed }

// Mode reports the presentation mode.
func (s *Session) Mode() Mode { return s.mode }

// Wrong returns the cards missed so far.
func (s *Session) Wrong() []*domain.Card {
	return append([]*domain.Card(nil), s.wrong...)
}
