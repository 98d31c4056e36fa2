package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"
)

func (s *Storage) CreateEvent(name string, date time.Time) (int, error) {
	query := `
		INSERT INTO events (name, date)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, name, date).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", translateError(err))
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, name, date
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, date
		FROM events
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) EventNameTaken(name string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM events
			WHERE name = $1
		)`

	var taken bool
	err := s.DB.QueryRow(query, name).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check event name: %w", err)
	}

	return taken, nil
}

func (s *Storage) UpdateEvent(id int, name string, date time.Time) error {
	query := `
		UPDATE events
		SET name = $2, date = $3
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, name, date)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", translateError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event; its tickets go with it through the
// ON DELETE CASCADE foreign key.
func (s *Storage) DeleteEvent(id int) error {
	query := `
		DELETE FROM events
		WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}
