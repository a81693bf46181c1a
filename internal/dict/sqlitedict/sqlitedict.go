// Package sqlitedict looks words up in a pre-built SQLite definition store.
// The store keeps headwords upper-cased in a words table, with one or more
// definition rows joined through words.id.
package sqlitedict

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sagerenn/wordtool/internal/dict"
)

const lookupQuery = `SELECT definitions.text FROM definitions
JOIN words ON words.id = definitions.word_id
WHERE words.word = ?
ORDER BY definitions.rowid;`

type Store struct {
	id   string
	name string
	db   *sql.DB
}

// Open opens the store read-only. The file must already exist: a missing or
// unreadable store is an open error, which the lookup chain treats as
// "tier unavailable" rather than "word not found".
func Open(id, name, path string) (*Store, error) {
	if id == "" || name == "" {
		return nil, errors.New("id and name are required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("definition store: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("definition store: %w", err)
	}
	return &Store{id: id, name: name, db: db}, nil
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Lookup(word string) ([]dict.Entry, error) {
	head := strings.ToUpper(dict.Normalize(word))
	if head == "" {
		return nil, dict.ErrNotFound
	}
	rows, err := s.db.Query(lookupQuery, head)
	if err != nil {
		return nil, fmt.Errorf("definition store: %w", err)
	}
	defer rows.Close()

	var entries []dict.Entry
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("definition store: %w", err)
		}
		entries = append(entries, dict.Entry{Word: head, Definition: text})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("definition store: %w", err)
	}
	if len(entries) == 0 {
		return nil, dict.ErrNotFound
	}
	return entries, nil
}
