package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/studyforge/catalog/pkg/types"
)

// Schema DDL for the snapshot database. The database is rebuilt from
// scratch on every export; downstream consumers treat it as read-only.
const snapshotSchema = `
CREATE TABLE snapshot_info (
    format_version INTEGER NOT NULL,
    build_id TEXT NOT NULL,
    built_at TEXT NOT NULL
);

CREATE TABLE topics (
    position INTEGER PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    subtitle TEXT NOT NULL,
    summary TEXT NOT NULL,
    explanation TEXT NOT NULL,
    category TEXT NOT NULL
);

CREATE TABLE key_points (
    topic_id TEXT NOT NULL REFERENCES topics(id),
    ordinal INTEGER NOT NULL,
    point TEXT NOT NULL,
    PRIMARY KEY (topic_id, ordinal)
);

CREATE TABLE code_examples (
    topic_id TEXT NOT NULL REFERENCES topics(id),
    ordinal INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    language TEXT NOT NULL,
    code TEXT NOT NULL,
    PRIMARY KEY (topic_id, ordinal)
);

CREATE TABLE resources (
    topic_id TEXT NOT NULL REFERENCES topics(id),
    ordinal INTEGER NOT NULL,
    title TEXT NOT NULL,
    url TEXT NOT NULL,
    type TEXT,
    description TEXT,
    PRIMARY KEY (topic_id, ordinal)
);

CREATE TABLE questions (
    topic_id TEXT NOT NULL REFERENCES topics(id),
    ordinal INTEGER NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    PRIMARY KEY (topic_id, ordinal)
);

CREATE TABLE search_tokens (
    token TEXT NOT NULL,
    topic_id TEXT NOT NULL REFERENCES topics(id),
    PRIMARY KEY (token, topic_id)
);
CREATE INDEX idx_search_tokens_token ON search_tokens(token);
CREATE INDEX idx_topics_category ON topics(category);
`

// WriteSQLite materializes the snapshot into a SQLite database at path,
// replacing any existing file. The whole export runs in one transaction;
// a failure leaves no partial database behind.
func WriteSQLite(snap *types.CatalogSnapshot, path string) error {
	// Rebuild from scratch so stale rows from an earlier format cannot
	// survive a redeploy.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old snapshot db: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open snapshot db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	if err := insertSnapshot(tx, snap); err != nil {
		tx.Rollback()
		os.Remove(path)
		return err
	}
	if err := tx.Commit(); err != nil {
		os.Remove(path)
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}

func insertSnapshot(tx *sql.Tx, snap *types.CatalogSnapshot) error {
	_, err := tx.Exec(
		`INSERT INTO snapshot_info (format_version, build_id, built_at) VALUES (?, ?, ?)`,
		snap.FormatVersion, snap.BuildID, snap.BuiltAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot info: %w", err)
	}

	for pos, t := range snap.Topics {
		if err := insertTopic(tx, pos, t); err != nil {
			return fmt.Errorf("insert topic %q: %w", t.ID, err)
		}
	}

	for _, entry := range snap.Index.Tokens {
		for _, id := range entry.TopicIDs {
			if _, err := tx.Exec(
				`INSERT INTO search_tokens (token, topic_id) VALUES (?, ?)`,
				entry.Token, id,
			); err != nil {
				return fmt.Errorf("insert token %q: %w", entry.Token, err)
			}
		}
	}
	return nil
}

func insertTopic(tx *sql.Tx, position int, t *types.Topic) error {
	_, err := tx.Exec(
		`INSERT INTO topics (position, id, title, subtitle, summary, explanation, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		position, t.ID, t.Title, t.Subtitle, t.Summary, t.Explanation, string(t.Category),
	)
	if err != nil {
		return err
	}
	for i, kp := range t.KeyPoints {
		if _, err := tx.Exec(
			`INSERT INTO key_points (topic_id, ordinal, point) VALUES (?, ?, ?)`,
			t.ID, i, kp,
		); err != nil {
			return err
		}
	}
	for i, ex := range t.CodeExamples {
		if _, err := tx.Exec(
			`INSERT INTO code_examples (topic_id, ordinal, title, description, language, code)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, i, ex.Title, ex.Description, ex.Language, ex.Code,
		); err != nil {
			return err
		}
	}
	for i, res := range t.Resources {
		if _, err := tx.Exec(
			`INSERT INTO resources (topic_id, ordinal, title, url, type, description)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, i, res.Title, res.URL, res.Type, res.Description,
		); err != nil {
			return err
		}
	}
	for i, qa := range t.Questions {
		if _, err := tx.Exec(
			`INSERT INTO questions (topic_id, ordinal, question, answer) VALUES (?, ?, ?, ?)`,
			t.ID, i, qa.Question, qa.Answer,
		); err != nil {
			return err
		}
	}
	return nil
}
