// Package deckimport reconciles configured deck sources into the card
// store. Cards are identified by content hash: unchanged cards keep
// their scheduling state across re-imports, new cards are inserted with
// fresh state, and cards that vanished from their source are removed.
package deckimport

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cardq/cardq/internal/cardhash"
	"github.com/cardq/cardq/internal/gitsource"
	"github.com/cardq/cardq/internal/parser"
	"github.com/cardq/cardq/internal/storage"
)

// deck file extensions picked up while walking a source.
var deckExtensions = map[string]bool{".deck": true, ".txt": true, ".md": true}

// Run iterates over all sources and reconciles them.
func Run(db *storage.DB, reposDir string) error {
	slog.Info("starting deck import for all sources")
	sources, err := db.GetAllSources()
	if err != nil {
		return fmt.Errorf("failed to get sources: %w", err)
	}

	if len(sources) == 0 {
		slog.Info("no sources configured")
		return nil
	}

	if err := os.MkdirAll(reposDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create repos directory: %w", err)
	}

	for _, source := range sources {
		slog.Info("importing source", "id", source.ID, "type", source.Type, "path", source.Path)

		toReconcile := source
		if source.Type == "git" {
			localRepoPath, err := gitURLToLocalPath(reposDir, source.Path)
			if err != nil {
				slog.Error("could not determine local path for git repo", "url", source.Path, "error", err)
				continue
			}
			if err := gitsource.Sync(source.Path, localRepoPath); err != nil {
				slog.Error("git sync failed", "url", source.Path, "error", err)
				continue
			}
			toReconcile.Path = localRepoPath
		}
		reconcileLocalSource(db, &toReconcile)
	}
	slog.Info("deck import complete")
	return nil
}

// DetectType classifies a source path as "git" or "local".
func DetectType(path string) string {
	if strings.HasSuffix(path, ".git") || strings.HasPrefix(path, "git@") ||
		strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return "git"
	}
	return "local"
}

func reconcileLocalSource(db *storage.DB, source *storage.Source) {
	existing, err := db.GetCardsBySourceID(source.ID)
	if err != nil {
		slog.Error("could not load cards for source", "source_id", source.ID, "error", err)
		return
	}

	var parseErrors []error
	var inserted int
	foundHashes := make(map[string]bool)

	walkErr := filepath.WalkDir(source.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !deckExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		fileCards, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			parseErrors = append(parseErrors, fmt.Errorf("parsing %s: %w", path, parseErr))
		}
		for _, card := range fileCards {
			hash := cardhash.Hash(card)
			if foundHashes[hash] {
				continue // duplicate within the source
			}
			foundHashes[hash] = true

			if _, ok := existing[hash]; ok {
				continue // unchanged card keeps its scheduling state
			}
			if insertErr := db.InsertCard(card, hash, source.ID); insertErr != nil {
				parseErrors = append(parseErrors, fmt.Errorf("inserting %s: %w", hash, insertErr))
			} else {
				inserted++
			}
		}
		return nil
	})
	if walkErr != nil {
		slog.Error("error walking source directory", "path", source.Path, "error", walkErr)
		return
	}

	var orphaned int
	for hash, id := range existing {
		if foundHashes[hash] {
			continue
		}
		orphaned++
		if err := db.DeleteCardByID(id); err != nil {
			slog.Warn("failed to delete orphaned card", "id", id, "error", err)
		}
	}

	if err := db.UpdateSourceLastScanned(source.ID); err != nil {
		slog.Warn("failed to update last scanned for source", "source_id", source.ID, "error", err)
	}

	slog.Info("reconciliation complete",
		"path", source.Path,
		"inserted", inserted,
		"orphaned_deleted", orphaned,
		"errors", len(parseErrors),
	)
}

func gitURLToLocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err == nil && (parsedURL.Scheme == "https" || parsedURL.Scheme == "http") {
		sanitized := strings.TrimSuffix(parsedURL.Path, ".git")
		return filepath.Join(baseDir, parsedURL.Host, sanitized), nil
	}

	// scp-style git@host:owner/repo.git
	if strings.Contains(repoURL, "@") {
		parts := strings.Split(repoURL, ":")
		if len(parts) == 2 {
			hostAndUser := strings.Split(parts[0], "@")
			if len(hostAndUser) == 2 {
				repoPath := strings.TrimSuffix(parts[1], ".git")
				return filepath.Join(baseDir, hostAndUser[1], repoPath), nil
			}
		}
	}
	return "", fmt.Errorf("could not parse git URL: %s", repoURL)
}
