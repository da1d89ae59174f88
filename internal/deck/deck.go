package deck

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/cardq/cardq/internal/domain"
)

// FolderAll bypasses folder filtering.
const FolderAll = "All"

// ErrEmptyFilter is returned when a non-empty corpus is filtered down
// to nothing and the caller did not opt into the fallback. The caller
// decides whether to widen the filter, never the queue.
var ErrEmptyFilter = errors.New("deck: filter matched no cards")

// Options controls which cards enter a queue and in what order.
type Options struct {
	Folder        string // exact folder name, or FolderAll
	DueOnly       bool   // keep only cards due at build time
	Shuffle       bool   // Fisher-Yates permutation of the pass order
	FallbackToAll bool   // on an empty filter result, use the whole corpus
}

// Queue is one ordered pass over a filtered card pool. It holds
// references into the caller's corpus; rebuilding after a filter change
// is the caller's job.
type Queue struct {
	cards  []*domain.Card
	cursor int
}

// Build filters and orders the corpus into a new queue. The rng drives
// the shuffle so tests can pin the permutation; a nil rng falls back to
// an unseeded source.
func Build(corpus []*domain.Card, opts Options, rng *rand.Rand, now time.Time) (*Queue, error) {
	filtered := make([]*domain.Card, 0, len(corpus))
	for _, c := range corpus {
		if opts.Folder != "" && opts.Folder != FolderAll && c.Folder != opts.Folder {
			continue
		}
		if opts.DueOnly && !c.Due(now) {
			continue
		}
		filtered = append(filtered, c)
	}

	if len(filtered) == 0 && len(corpus) > 0 {
		if !opts.FallbackToAll {
			return nil, ErrEmptyFilter
		}
		filtered = append(filtered, corpus...)
	}

	if opts.Shuffle {
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		for i := len(filtered) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	return &Queue{cards: filtered}, nil
}

// Current returns the card under the cursor, or nil when the pass is
// already complete (or the queue is empty).
func (q *Queue) Current() *domain.Card {
	if q.cursor >= len(q.cards) {
		return nil
	}
	return q.cards[q.cursor]
}

// Advance moves to the next card. It returns done=true once the pass is
// exhausted; the caller chooses whether to rebuild for another cycle.
func (q *Queue) Advance() (*domain.Card, bool) {
	q.cursor++
	if q.cursor >= len(q.cards) {
		return nil, true
	}
	return q.cards[q.cursor], false
}

// Len reports how many cards are in this pass.
func (q *Queue) Len() int { return len(q.cards) }

// Pos reports the zero-based cursor position, capped at Len.
func (q *Queue) Pos() int {
	if q.cursor > len(q.cards) {
		return len(q.cards)
	}
	return q.cursor
}

// Cards exposes the pass order. Quiz sessions use this to take a
// shuffled pool snapshot.
func (q *Queue) Cards() []*domain.Card { return q.cards }
