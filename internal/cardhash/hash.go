package cardhash

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/cardq/cardq/internal/domain"
)

// Normalize joins the card's identifying content after cleaning each
// part: trimmed, lowercased, with line endings unified. Scheduling
// state is deliberately excluded so a card keeps its hash across
// reviews.
func Normalize(card *domain.Card) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	parts := []string{
		normalizePart(card.Question),
		normalizePart(card.Answer),
		normalizePart(card.Explanation),
		normalizePart(card.Folder),
	}

	// Joined with newlines so adjacent fields cannot run together and
	// collide.
	return strings.Join(parts, "\n")
}

// Hash returns the SHA-256 of the normalized card content as a hex
// string. Re-imports use it to recognize unchanged cards and keep
// their scheduling state.
func Hash(card *domain.Card) string {
	normalized := Normalize(card)
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", sum)
}
