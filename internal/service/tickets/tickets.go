package tickets

import (
	"errors"
	"fmt"

	"ticketBooth/internal/clock"
	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"
)

var (
	ErrTicketUsed  = errors.New("ticket already used")
	ErrEventPassed = errors.New("event already happened")
)

// Storage is the data-access surface the ticket rules need.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	GetEvent(id int) (*models.Event, error)
	GetEventTickets(eventID int) ([]models.Ticket, error)
	GetTicket(id int) (*models.Ticket, error)
	TicketCodeTaken(eventID int, code string) (bool, error)
	CreateTicket(owner, code string, eventID int) (int, error)
	MarkTicketUsed(id int) error
}

type Service struct {
	storage Storage
	clock   clock.Clock
}

func New(storage Storage, clk clock.Clock) *Service {
	return &Service{storage: storage, clock: clk}
}

// GetEventTickets lists the tickets of an event. A nonexistent event yields
// an empty list, not an error; listing is deliberately not gated on event
// existence.
func (s *Service) GetEventTickets(eventID int) ([]models.Ticket, error) {
	return s.storage.GetEventTickets(eventID)
}

// CreateTicket issues a ticket against an event that exists and has not
// happened yet. The code pre-check gives a clean conflict error; the unique
// index on (event_id, code) is the real guard.
func (s *Service) CreateTicket(owner, code string, eventID int) (*models.Ticket, error) {
	const op = "service.tickets.CreateTicket"

	event, err := s.storage.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if event.Date.Before(s.clock.Now()) {
		return nil, ErrEventPassed
	}

	taken, err := s.storage.TicketCodeTaken(eventID, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, storage.ErrTicketCodeTaken
	}

	id, err := s.storage.CreateTicket(owner, code, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrTicketCodeTaken) || errors.Is(err, storage.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Ticket{
		ID:      id,
		Owner:   owner,
		Code:    code,
		Used:    false,
		EventID: eventID,
	}, nil
}

// UseTicket flips the one-way used flag. The already-used check runs before
// the expiration check; when both hold, the caller must see "already used".
func (s *Service) UseTicket(id int) error {
	const op = "service.tickets.UseTicket"

	ticket, err := s.storage.GetTicket(id)
	if err != nil {
		if errors.Is(err, storage.ErrTicketNotFound) {
			return storage.ErrTicketNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if ticket.Used {
		return ErrTicketUsed
	}

	event, err := s.storage.GetEvent(ticket.EventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if event.Date.Before(s.clock.Now()) {
		return ErrEventPassed
	}

	if err = s.storage.MarkTicketUsed(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
