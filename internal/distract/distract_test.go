package distract

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cardq/cardq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

func TestGenerateFromCategoryPool(t *testing.T) {
	target := &domain.Card{
		ID:       "t",
		Question: "信頼性のある通信を提供するプロトコルは？",
		Answer:   "TCP",
		Folder:   "transport",
	}

	got := Generate(target, nil, 3, testRNG())

	require.Len(t, got, 3, "the protocol pool alone should cover the request")
	for _, d := range got {
		assert.NotEqual(t, strings.ToLower(target.Answer), strings.ToLower(d),
			"the correct answer must never appear as a distractor")
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	target := &domain.Card{ID: "t", Question: "ポート番号とは？", Answer: "HTTP:80, DNS:53, SMTP:25"}

	got := Generate(target, nil, 8, testRNG())

	seen := map[string]bool{}
	for _, d := range got {
		key := strings.ToLower(d)
		assert.False(t, seen[key], "duplicate distractor %q", d)
		seen[key] = true
	}
}

func TestGenerateSameFolderFallback(t *testing.T) {
	// No category triggers match, so candidates must come from folder
	// neighbours before anything else.
	target := &domain.Card{ID: "t", Question: "zzz", Answer: "one", Folder: "misc"}
	corpus := []*domain.Card{
		target,
		{ID: "b", Question: "zzz", Answer: "two", Folder: "misc"},
		{ID: "c", Question: "zzz", Answer: "three", Folder: "misc"},
		{ID: "d", Question: "zzz", Answer: "four", Folder: "other"},
	}

	got := Generate(target, corpus, 2, testRNG())

	require.Len(t, got, 2)
	for _, d := range got {
		assert.Contains(t, []string{"two", "three"}, d)
	}
}

func TestGenerateCrossFolderFallback(t *testing.T) {
	target := &domain.Card{ID: "t", Question: "zzz", Answer: "one", Folder: "misc"}
	corpus := []*domain.Card{
		target,
		{ID: "b", Question: "zzz", Answer: "two", Folder: "misc"},
		{ID: "c", Question: "zzz", Answer: "three", Folder: "other"},
	}

	got := Generate(target, corpus, 2, testRNG())

	assert.ElementsMatch(t, []string{"two", "three"}, got)
}

func TestGenerateShortfall(t *testing.T) {
	target := &domain.Card{ID: "t", Question: "zzz", Answer: "one", Folder: "misc"}
	corpus := []*domain.Card{
		target,
		{ID: "b", Question: "zzz", Answer: "two", Folder: "misc"},
		{ID: "c", Question: "zzz", Answer: "TWO", Folder: "other"}, // case-insensitive dupe
	}

	got := Generate(target, corpus, 3, testRNG())

	assert.Equal(t, []string{"two"}, got, "shortfall returns fewer, never padding")
}

func TestGenerateZeroCount(t *testing.T) {
	target := &domain.Card{ID: "t", Question: "q", Answer: "a"}
	assert.Nil(t, Generate(target, nil, 0, testRNG()))
}
