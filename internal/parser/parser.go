// Package parser reads plain-text deck files. A card is a block of
// prefixed lines separated by "---":
//
//	Q: question text (may continue on following lines)
//	A: answer text
//	E: optional explanation
//	F: optional folder name
//	T: optional comma-separated tags
//
// Cards without an F: line land in the deck's default folder.
package parser

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cardq/cardq/internal/domain"
)

const (
	questionPrefix    = "Q:"
	answerPrefix      = "A:"
	explanationPrefix = "E:"
	folderPrefix      = "F:"
	tagsPrefix        = "T:"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
	readingExplanation
)

// ParseFile reads a deck file. The file's base name (without
// extension) becomes the default folder for cards that don't name one.
func ParseFile(path string) ([]*domain.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	base := filepath.Base(path)
	folder := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(file, folder)
}

// Parse extracts all cards from r.
func Parse(r io.Reader, defaultFolder string) ([]*domain.Card, error) {
	scanner := bufio.NewScanner(r)
	var cards []*domain.Card
	current := domain.NewCard("", "", defaultFolder)
	var block []string
	currentState := seeking

	flushBlock := func() {
		if len(block) == 0 {
			return
		}
		content := strings.Join(block, "\n")
		switch currentState {
		case readingQuestion:
			current.Question = content
		case readingAnswer:
			current.Answer = content
		case readingExplanation:
			current.Explanation = content
		}
		block = nil
	}

	finishCard := func() {
		flushBlock()
		if current.Question != "" {
			cards = append(cards, current)
		}
		current = domain.NewCard("", "", defaultFolder)
		currentState = seeking
	}

	stripPrefix := func(line, prefix string) string {
		content := line[len(prefix):]
		return strings.TrimPrefix(content, " ")
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == "---" {
			finishCard()
			continue
		}

		switch {
		case strings.HasPrefix(line, questionPrefix):
			if currentState != seeking { // a new question always starts a new card
				finishCard()
			}
			flushBlock()
			currentState = readingQuestion
			block = append(block, stripPrefix(line, questionPrefix))
		case strings.HasPrefix(line, answerPrefix):
			flushBlock()
			currentState = readingAnswer
			block = append(block, stripPrefix(line, answerPrefix))
		case strings.HasPrefix(line, explanationPrefix):
			flushBlock()
			currentState = readingExplanation
			block = append(block, stripPrefix(line, explanationPrefix))
		case strings.HasPrefix(line, folderPrefix):
			flushBlock()
			if f := strings.TrimSpace(stripPrefix(line, folderPrefix)); f != "" {
				current.Folder = f
			}
		case strings.HasPrefix(line, tagsPrefix):
			flushBlock()
			for _, tag := range strings.Split(stripPrefix(line, tagsPrefix), ",") {
				if t := strings.TrimSpace(tag); t != "" {
					current.Tags = append(current.Tags, t)
				}
			}
		default:
			if currentState != seeking {
				block = append(block, line)
			}
		}
	}

	finishCard() // the very last card in the file

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
