package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"freelance_bidding/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stmt, err := db.Prepare(`
	CREATE TABLE IF NOT EXISTS kv (
		key VARCHAR(200) PRIMARY KEY,
		value TEXT NOT NULL,
		updatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = stmt.Exec()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Get(key string) (string, error) {
	const op = "storage.postgres.Get"
	var value string

	stmt, err := s.db.Prepare(`
	SELECT value
	FROM kv
	WHERE key = $1
	`)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	err = stmt.QueryRow(key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrKeyNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (s *Storage) Set(key, value string) error {
	const op = "storage.postgres.Set"

	stmt, err := s.db.Prepare(`
	INSERT INTO kv(key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updatedAt = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
