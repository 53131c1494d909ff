package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed translation memory keyed by source text, engine
// and target language. It is optional; when disabled the application never
// opens it.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the translation memory at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate translation memory: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		engine TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, engine, target_lang)
	);`

	_, err := s.db.Exec(schema)
	return err
}

// Get looks up a remembered translation. The second return value reports
// whether an entry was found; a hit bumps its usage counters.
func (s *Store) Get(ctx context.Context, sourceText, engineName, targetLang string) (string, bool, error) {
	var translated string
	err := s.db.QueryRowContext(ctx,
		`SELECT translated_text FROM translation_memory
		 WHERE source_text = ? AND engine = ? AND target_lang = ?`,
		sourceText, engineName, targetLang,
	).Scan(&translated)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query translation memory: %w", err)
	}

	_, _ = s.db.ExecContext(ctx,
		`UPDATE translation_memory
		 SET usage_count = usage_count + 1, last_used = CURRENT_TIMESTAMP
		 WHERE source_text = ? AND engine = ? AND target_lang = ?`,
		sourceText, engineName, targetLang,
	)
	return translated, true, nil
}

// Put stores a translation, replacing any previous entry for the same key.
func (s *Store) Put(ctx context.Context, sourceText, engineName, targetLang, translated string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, engine, target_lang, translated_text)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source_text, engine, target_lang) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   last_used = CURRENT_TIMESTAMP`,
		uuid.New().String(), sourceText, engineName, targetLang, translated,
	)
	if err != nil {
		return fmt.Errorf("failed to store translation: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
