package deckimport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cardq/cardq/internal/domain"
	"github.com/cardq/cardq/internal/srs"
	"github.com/cardq/cardq/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"https://github.com/user/decks.git", "git"},
		{"http://example.com/decks.git", "git"},
		{"git@github.com:user/decks.git", "git"},
		{"/home/user/decks", "local"},
		{"relative/decks", "local"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, DetectType(tc.path), tc.path)
	}
}

func TestGitURLToLocalPath(t *testing.T) {
	t.Run("https", func(t *testing.T) {
		path, err := gitURLToLocalPath("/repos", "https://github.com/user/decks.git")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/repos", "github.com", "user", "decks"), path)
	})

	t.Run("scp style", func(t *testing.T) {
		path, err := gitURLToLocalPath("/repos", "git@github.com:user/decks.git")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/repos", "github.com", "user", "decks"), path)
	})

	t.Run("unparseable", func(t *testing.T) {
		_, err := gitURLToLocalPath("/repos", "nonsense")
		assert.Error(t, err)
	})
}

func TestRunReconcilesLocalSource(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deckDir := t.TempDir()
	deckFile := filepath.Join(deckDir, "protocols.deck")
	require.NoError(t, os.WriteFile(deckFile, []byte(
		"Q: What is TCP?\nA: A transport protocol\n---\nQ: What is UDP?\nA: A datagram protocol\n",
	), 0o644))

	_, err = db.InsertSource(deckDir, "local")
	require.NoError(t, err)

	require.NoError(t, Run(db, t.TempDir()))

	cards, err := db.GetAllCards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "protocols", cards[0].Folder, "file name becomes the folder")

	// Review one card, then re-import with one card changed: the
	// unchanged card keeps its scheduling state, the changed one is
	// replaced with fresh state, and the old version is removed.
	var tcp *domain.Card
	for _, c := range cards {
		if c.Answer == "A transport protocol" {
			tcp = c
		}
	}
	require.NotNil(t, tcp)
	require.NoError(t, srs.Review(tcp, srs.Good, time.Now()))
	require.NoError(t, db.UpdateScheduling(tcp))

	require.NoError(t, os.WriteFile(deckFile, []byte(
		"Q: What is TCP?\nA: A transport protocol\n---\nQ: What is UDP?\nA: A connectionless protocol\n",
	), 0o644))
	require.NoError(t, Run(db, t.TempDir()))

	cards, err = db.GetAllCards()
	require.NoError(t, err)
	require.Len(t, cards, 2)

	byAnswer := map[string]*domain.Card{}
	for _, c := range cards {
		byAnswer[c.Answer] = c
	}
	require.Contains(t, byAnswer, "A transport protocol")
	require.Contains(t, byAnswer, "A connectionless protocol")
	assert.NotContains(t, byAnswer, "A datagram protocol")

	kept := byAnswer["A transport protocol"]
	assert.Equal(t, tcp.ID, kept.ID, "unchanged card keeps its identity")
	assert.Equal(t, 1, kept.ReviewCount, "unchanged card keeps its scheduling state")
	assert.Equal(t, 0, byAnswer["A connectionless protocol"].ReviewCount)
}

func TestRunWithNoSources(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, Run(db, t.TempDir()))
}
