package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedCards int
		expectedQ     string
		expectedA     string
		expectedE     string
	}{
		{
			name:          "simple Q&A",
			input:         "Q: What does TCP stand for?\nA: Transmission Control Protocol",
			expectedCards: 1,
			expectedQ:     "What does TCP stand for?",
			expectedA:     "Transmission Control Protocol",
		},
		{
			name:          "with explanation",
			input:         "Q: Default HTTP port?\nA: 80\nE: HTTPS uses 443",
			expectedCards: 1,
			expectedQ:     "Default HTTP port?",
			expectedA:     "80",
			expectedE:     "HTTPS uses 443",
		},
		{
			name: "multiline answer",
			input: `
Q: Name the private IPv4 ranges
A: 10.0.0.0/8
172.16.0.0/12
192.168.0.0/16
`,
			expectedCards: 1,
			expectedQ:     "Name the private IPv4 ranges",
			expectedA:     "10.0.0.0/8\n172.16.0.0/12\n192.168.0.0/16",
		},
		{
			name: "separator splits cards",
			input: `
Q: First question
A: First answer
---
Q: Second question
A: Second answer
`,
			expectedCards: 2,
			expectedQ:     "First question",
			expectedA:     "First answer",
		},
		{
			name: "a new Q without separator starts a new card",
			input: `
Q: First question
A: First answer
Q: Second question
A: Second answer
`,
			expectedCards: 2,
			expectedQ:     "First question",
			expectedA:     "First answer",
		},
		{
			name:          "block without a question is dropped",
			input:         "A: orphan answer\n---\nQ: real\nA: yes",
			expectedCards: 1,
			expectedQ:     "real",
			expectedA:     "yes",
		},
		{
			name:          "empty input",
			input:         "",
			expectedCards: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cards, err := Parse(strings.NewReader(tc.input), "default")
			require.NoError(t, err)
			require.Len(t, cards, tc.expectedCards)
			if tc.expectedCards == 0 {
				return
			}
			assert.Equal(t, tc.expectedQ, cards[0].Question)
			assert.Equal(t, tc.expectedA, cards[0].Answer)
			assert.Equal(t, tc.expectedE, cards[0].Explanation)
		})
	}
}

func TestParseFolderAndTags(t *testing.T) {
	input := `
Q: What layer is IP?
A: Layer 3
F: OSI
T: osi, layers , ip
---
Q: What layer is Ethernet?
A: Layer 2
`
	cards, err := Parse(strings.NewReader(input), "networking")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "OSI", cards[0].Folder)
	assert.Equal(t, []string{"osi", "layers", "ip"}, cards[0].Tags)

	assert.Equal(t, "networking", cards[1].Folder, "cards without F: use the default folder")
	assert.Empty(t, cards[1].Tags)
}

func TestParseAssignsSchedulingDefaults(t *testing.T) {
	cards, err := Parse(strings.NewReader("Q: q\nA: a"), "f")
	require.NoError(t, err)
	require.Len(t, cards, 1)

	c := cards[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 1, c.IntervalDays)
	assert.InDelta(t, 2.5, c.EaseFactor, 0.0001)
	assert.Nil(t, c.NextReviewAt, "new cards are due immediately")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subnetting.deck")
	require.NoError(t, os.WriteFile(path, []byte("Q: q\nA: a"), 0o644))

	cards, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "subnetting", cards[0].Folder, "file name becomes the default folder")

	_, err = ParseFile(filepath.Join(dir, "missing.deck"))
	assert.Error(t, err)
}
