// Package distract synthesizes plausible wrong answers for
// multiple-choice questions. Candidates come from topic category pools
// matched against the card text, then fall back to other cards' answers
// so small or off-topic corpora still get usable options.
package distract

import (
	"math/rand/v2"
	"strings"

	"github.com/cardq/cardq/internal/domain"
)

// Generate returns up to count distractors for the target card. The
// result never contains the target's own answer or duplicates
// (case-insensitive), and may be shorter than count when the corpus
// cannot supply enough distinct candidates.
func Generate(target *domain.Card, corpus []*domain.Card, count int, rng *rand.Rand) []string {
	if count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	question := strings.ToLower(target.Question)
	answerLow := strings.ToLower(target.Answer)

	used := map[string]bool{answerLow: true}
	result := make([]string, 0, count)
	take := func(candidates []string) {
		shuffle(candidates, rng)
		for _, c := range candidates {
			if len(result) >= count {
				return
			}
			key := strings.ToLower(c)
			if used[key] {
				continue
			}
			used[key] = true
			result = append(result, c)
		}
	}

	// Stage 1: union of every matched category pool.
	var pooled []string
	seen := map[string]bool{}
	for _, cat := range categories {
		if !cat.matches(question, answerLow) {
			continue
		}
		for _, entry := range cat.pool {
			key := strings.ToLower(entry)
			if key == answerLow || seen[key] {
				continue
			}
			seen[key] = true
			pooled = append(pooled, entry)
		}
	}
	take(pooled)

	// Stage 2: answers from the same folder.
	if len(result) < count {
		var sameFolder []string
		for _, c := range corpus {
			if c.ID != target.ID && c.Folder == target.Folder {
				sameFolder = append(sameFolder, c.Answer)
			}
		}
		take(sameFolder)
	}

	// Stage 3: answers from anywhere else.
	if len(result) < count {
		var others []string
		for _, c := range corpus {
			if c.ID != target.ID && c.Folder != target.Folder {
				others = append(others, c.Answer)
			}
		}
		take(others)
	}

	return result
}

func (c category) matches(question, answerLow string) bool {
	for _, t := range c.triggers {
		if strings.Contains(question, t) || strings.Contains(answerLow, t) {
			return true
		}
	}
	return false
}

func shuffle(s []string, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
