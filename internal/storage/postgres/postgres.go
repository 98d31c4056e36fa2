package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"ticketBooth/internal/config"
	"ticketBooth/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

// initSchema creates the tables and unique indexes if they do not exist yet.
// The unique constraints are the authoritative guard against write races;
// the service-level pre-checks only exist for clean error reporting.
func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id   SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			date TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tickets (
			id       SERIAL PRIMARY KEY,
			owner    TEXT NOT NULL,
			code     TEXT NOT NULL,
			used     BOOLEAN NOT NULL DEFAULT FALSE,
			event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
			UNIQUE (event_id, code)
		);`

	if _, err := s.DB.Exec(schema); err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// translateError remaps constraint violations raced past a pre-check into
// the storage sentinels, so the handlers never see a raw driver error for
// a uniqueness or foreign-key conflict.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505": // unique_violation
		switch pqErr.Constraint {
		case "events_name_key":
			return storage.ErrEventNameTaken
		case "tickets_event_id_code_key":
			return storage.ErrTicketCodeTaken
		}
	case "23503": // foreign_key_violation
		return storage.ErrEventNotFound
	}

	return err
}
