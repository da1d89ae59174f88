package storage

const schema = `
-- Each flashcard with its full scheduling state. The content hash
-- identifies a card across re-imports; the id is what sessions and the
-- API reference.
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    hash TEXT NOT NULL UNIQUE,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    explanation TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    folder TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    interval_days INTEGER NOT NULL DEFAULT 1,
    ease_factor REAL NOT NULL DEFAULT 2.5,
    review_count INTEGER NOT NULL DEFAULT 0,
    correct_count INTEGER NOT NULL DEFAULT 0,
    mastery INTEGER NOT NULL DEFAULT 0,
    last_reviewed_at DATETIME,
    next_review_at DATETIME,
    created_at DATETIME NOT NULL,
    source_id INTEGER,

    FOREIGN KEY(source_id) REFERENCES sources(id)
);

-- Deck sources: a local directory or a git repository of deck files.
CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    type TEXT NOT NULL DEFAULT 'local',
    last_scanned DATETIME
);

-- At most one saved quiz session, stored as the opaque resume blob.
CREATE TABLE IF NOT EXISTS quiz_save (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    blob TEXT NOT NULL,
    saved_at DATETIME NOT NULL
);

-- Study streak and per-day activity log (JSON map of day -> count).
CREATE TABLE IF NOT EXISTS tracker (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    streak INTEGER NOT NULL DEFAULT 0,
    last_study_date TEXT NOT NULL DEFAULT '',
    log TEXT NOT NULL DEFAULT '{}'
);
`
