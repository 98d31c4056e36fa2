package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"
)

func (s *Storage) CreateTicket(owner, code string, eventID int) (int, error) {
	query := `
		INSERT INTO tickets (owner, code, used, event_id)
		VALUES ($1, $2, false, $3)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, owner, code, eventID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create ticket: %w", translateError(err))
	}

	return id, nil
}

func (s *Storage) GetTicket(id int) (*models.Ticket, error) {
	query := `
		SELECT id, owner, code, used, event_id
		FROM tickets
		WHERE id = $1`

	var ticket models.Ticket
	err := s.DB.QueryRow(query, id).Scan(
		&ticket.ID,
		&ticket.Owner,
		&ticket.Code,
		&ticket.Used,
		&ticket.EventID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (s *Storage) GetEventTickets(eventID int) ([]models.Ticket, error) {
	query := `
		SELECT id, owner, code, used, event_id
		FROM tickets
		WHERE event_id = $1
		ORDER BY id ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		var ticket models.Ticket
		err = rows.Scan(
			&ticket.ID,
			&ticket.Owner,
			&ticket.Code,
			&ticket.Used,
			&ticket.EventID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

func (s *Storage) TicketCodeTaken(eventID int, code string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM tickets
			WHERE event_id = $1 AND code = $2
		)`

	var taken bool
	err := s.DB.QueryRow(query, eventID, code).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket code: %w", err)
	}

	return taken, nil
}

func (s *Storage) MarkTicketUsed(id int) error {
	query := `
		UPDATE tickets
		SET used = true
		WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark ticket used: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark ticket used: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrTicketNotFound
	}

	return nil
}
