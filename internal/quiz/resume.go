package quiz

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/cardq/cardq/internal/domain"
)

// saveState is the resume blob. Cards are stored by id only; the
// corpus rehydrates them on resume.
type saveState struct {
	Queue   []string `json:"queue"`
	Cursor  int      `json:"cursor"`
	Score   int      `json:"score"`
	Wrong   []string `json:"wrongQueue"`
	Mode    Mode     `json:"mode"`
	Elapsed int      `json:"elapsedSeconds"`
}

// Serialize captures the session for a later Resume. The current
// question is saved as not-yet-answered, so a resumed session asks it
// again.
func (s *Session) Serialize() ([]byte, error) {
	save := saveState{
		Queue:   cardIDs(s.queue),
		Cursor:  s.cursor,
		Score:   s.score,
		Wrong:   cardIDs(s.wrong),
		Mode:    s.mode,
		Elapsed: s.elapsed,
	}
	return json.Marshal(save)
}

// Resume restores a serialized session against the given corpus. Any
// structural problem (bad JSON, unknown mode, an out-of-range cursor,
// or a card id no longer in the corpus) fails with ErrCorruptResume
// rather than silently starting over.
func Resume(blob []byte, corpus []*domain.Card, rng *rand.Rand) (*Session, error) {
	var save saveState
	if err := json.Unmarshal(blob, &save); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptResume, err)
	}
	if save.Mode != ModeMultipleChoice && save.Mode != ModeTyped {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrCorruptResume, save.Mode)
	}
	if len(save.Queue) == 0 || save.Cursor < 0 || save.Cursor >= len(save.Queue) {
		return nil, fmt.Errorf("%w: cursor %d outside queue of %d", ErrCorruptResume, save.Cursor, len(save.Queue))
	}

	byID := make(map[string]*domain.Card, len(corpus))
	for _, c := range corpus {
		byID[c.ID] = c
	}
	queue, err := resolve(save.Queue, byID)
	if err != nil {
		return nil, err
	}
	wrong, err := resolve(save.Wrong, byID)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		queue:   queue,
		corpus:  corpus,
		cursor:  save.Cursor,
		score:   save.Score,
		wrong:   wrong,
		mode:    save.Mode,
		state:   StateActive,
		elapsed: save.Elapsed,
		rng:     rng,
	}, nil
}

func resolve(ids []string, byID map[string]*domain.Card) ([]*domain.Card, error) {
	cards := make([]*domain.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: card %s not in corpus", ErrCorruptResume, id)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func cardIDs(cards []*domain.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
