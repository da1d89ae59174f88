package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cardq/cardq/internal/domain"
	"github.com/cardq/cardq/internal/stats"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB wraps the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up
// to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

const cardColumns = `id, hash, question, answer, explanation, image, folder, tags,
	interval_days, ease_factor, review_count, correct_count, mastery,
	last_reviewed_at, next_review_at, created_at`

// InsertCard stores a new card with its content hash and owning source.
func (db *DB) InsertCard(card *domain.Card, hash string, sourceID int64) error {
	_, err := db.conn.Exec(`
		INSERT INTO cards (`+cardColumns+`, source_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		card.ID,
		hash,
		card.Question,
		card.Answer,
		card.Explanation,
		card.Image,
		card.Folder,
		strings.Join(card.Tags, ","),
		card.IntervalDays,
		card.EaseFactor,
		card.ReviewCount,
		card.CorrectCount,
		card.Mastery,
		nullTime(card.LastReviewedAt),
		nullTime(card.NextReviewAt),
		card.CreatedAt,
		sql.NullInt64{Int64: sourceID, Valid: sourceID != 0},
	)
	if err != nil {
		return fmt.Errorf("failed to insert card %s: %w", card.ID, err)
	}
	return nil
}

// GetAllCards loads the whole corpus.
func (db *DB) GetAllCards() ([]*domain.Card, error) {
	rows, err := db.conn.Query(`SELECT ` + cardColumns + ` FROM cards ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()
	return scanCards(rows)
}

// GetCardsBySourceID loads the cards owned by one deck source, with
// their content hashes, for reconciliation.
func (db *DB) GetCardsBySourceID(sourceID int64) (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT id, hash FROM cards WHERE source_id = ?`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for source ID %d: %w", sourceID, err)
	}
	defer rows.Close()

	hashes := make(map[string]string) // hash -> card id
	for rows.Next() {
		var id, hash string
		if err := rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("failed to scan card row for source ID %d: %w", sourceID, err)
		}
		hashes[hash] = id
	}
	return hashes, rows.Err()
}

// UpdateScheduling writes back the fields srs.Review mutates.
func (db *DB) UpdateScheduling(card *domain.Card) error {
	_, err := db.conn.Exec(`
		UPDATE cards
		SET interval_days = ?, ease_factor = ?, review_count = ?,
		    correct_count = ?, mastery = ?, last_reviewed_at = ?, next_review_at = ?
		WHERE id = ?
	`,
		card.IntervalDays,
		card.EaseFactor,
		card.ReviewCount,
		card.CorrectCount,
		card.Mastery,
		nullTime(card.LastReviewedAt),
		nullTime(card.NextReviewAt),
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scheduling for card %s: %w", card.ID, err)
	}
	return nil
}

// DeleteCardByID removes a card.
func (db *DB) DeleteCardByID(id string) error {
	_, err := db.conn.Exec(`DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	return nil
}

// Source is a deck source, either a local path or a git URL.
type Source struct {
	ID          int64
	Path        string
	Type        string // "local" or "git"
	LastScanned sql.NullTime
}

// InsertSource stores a new deck source and returns its ID.
func (db *DB) InsertSource(path, sourceType string) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO sources (path, type) VALUES (?, ?)
	`, path, sourceType)
	if err != nil {
		return 0, fmt.Errorf("failed to insert source %s: %w", path, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for source %s: %w", path, err)
	}
	return id, nil
}

// FindSourceByPath retrieves a source by its path, or nil when absent.
func (db *DB) FindSourceByPath(path string) (*Source, error) {
	var s Source
	row := db.conn.QueryRow(`
		SELECT id, path, type, last_scanned FROM sources WHERE path = ?
	`, path)

	err := row.Scan(&s.ID, &s.Path, &s.Type, &s.LastScanned)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find source by path %s: %w", path, err)
	}
	return &s, nil
}

// GetAllSources retrieves every stored source.
func (db *DB) GetAllSources() ([]Source, error) {
	rows, err := db.conn.Query(`SELECT id, path, type, last_scanned FROM sources`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.Path, &s.Type, &s.LastScanned); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// DeleteSource removes a source and its cards.
func (db *DB) DeleteSource(id int64) error {
	if _, err := db.conn.Exec(`DELETE FROM cards WHERE source_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete cards for source %d: %w", id, err)
	}
	if _, err := db.conn.Exec(`DELETE FROM sources WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete source %d: %w", id, err)
	}
	return nil
}

// UpdateSourceLastScanned stamps a source after reconciliation.
func (db *DB) UpdateSourceLastScanned(sourceID int64) error {
	_, err := db.conn.Exec(`
		UPDATE sources SET last_scanned = ? WHERE id = ?
	`, time.Now(), sourceID)
	if err != nil {
		return fmt.Errorf("failed to update last scanned for source ID %d: %w", sourceID, err)
	}
	return nil
}

// SaveQuizBlob stores the single resume blob, replacing any previous
// one. Starting a new quiz discards the old save's resumability.
func (db *DB) SaveQuizBlob(blob []byte) error {
	_, err := db.conn.Exec(`
		INSERT INTO quiz_save (id, blob, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET blob = excluded.blob, saved_at = excluded.saved_at
	`, string(blob), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save quiz state: %w", err)
	}
	return nil
}

// LoadQuizBlob returns the saved resume blob, or nil when none exists.
func (db *DB) LoadQuizBlob() ([]byte, error) {
	var blob string
	err := db.conn.QueryRow(`SELECT blob FROM quiz_save WHERE id = 1`).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quiz state: %w", err)
	}
	return []byte(blob), nil
}

// DeleteQuizBlob discards the saved session.
func (db *DB) DeleteQuizBlob() error {
	if _, err := db.conn.Exec(`DELETE FROM quiz_save WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete quiz state: %w", err)
	}
	return nil
}

// SaveTracker persists the study streak and activity log.
func (db *DB) SaveTracker(t *stats.Tracker) error {
	logJSON, err := json.Marshal(t.Log)
	if err != nil {
		return fmt.Errorf("failed to encode study log: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT INTO tracker (id, streak, last_study_date, log) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET streak = excluded.streak,
			last_study_date = excluded.last_study_date, log = excluded.log
	`, t.Streak, t.LastStudyDate, string(logJSON))
	if err != nil {
		return fmt.Errorf("failed to save tracker: %w", err)
	}
	return nil
}

// LoadTracker restores the study tracker, or returns a fresh one when
// nothing has been stored yet.
func (db *DB) LoadTracker() (*stats.Tracker, error) {
	var t stats.Tracker
	var logJSON string
	err := db.conn.QueryRow(`SELECT streak, last_study_date, log FROM tracker WHERE id = 1`).
		Scan(&t.Streak, &t.LastStudyDate, &logJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return &stats.Tracker{}, nil
		}
		return nil, fmt.Errorf("failed to load tracker: %w", err)
	}
	if err := json.Unmarshal([]byte(logJSON), &t.Log); err != nil {
		return nil, fmt.Errorf("failed to decode study log: %w", err)
	}
	return &t, nil
}

func scanCards(rows *sql.Rows) ([]*domain.Card, error) {
	var cards []*domain.Card
	for rows.Next() {
		var (
			c            domain.Card
			hash, tags   string
			lastReviewed sql.NullTime
			nextReview   sql.NullTime
		)
		if err := rows.Scan(
			&c.ID,
			&hash,
			&c.Question,
			&c.Answer,
			&c.Explanation,
			&c.Image,
			&c.Folder,
			&tags,
			&c.IntervalDays,
			&c.EaseFactor,
			&c.ReviewCount,
			&c.CorrectCount,
			&c.Mastery,
			&lastReviewed,
			&nextReview,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		if tags != "" {
			c.Tags = strings.Split(tags, ",")
		}
		if lastReviewed.Valid {
			t := lastReviewed.Time
			c.LastReviewedAt = &t
		}
		if nextReview.Valid {
			t := nextReview.Time
			c.NextReviewAt = &t
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
