package events

import (
	"errors"
	"fmt"
	"time"

	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"
)

// Storage is the data-access surface the event rules need.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	GetAllEvents() ([]models.Event, error)
	GetEvent(id int) (*models.Event, error)
	EventNameTaken(name string) (bool, error)
	CreateEvent(name string, date time.Time) (int, error)
	UpdateEvent(id int, name string, date time.Time) error
	DeleteEvent(id int) error
}

type Service struct {
	storage Storage
}

func New(storage Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) GetAllEvents() ([]models.Event, error) {
	return s.storage.GetAllEvents()
}

func (s *Service) GetEvent(id int) (*models.Event, error) {
	return s.storage.GetEvent(id)
}

// CreateEvent persists a new event. The name pre-check gives a clean
// conflict error; the unique index on events.name is the real guard.
func (s *Service) CreateEvent(name string, date time.Time) (*models.Event, error) {
	const op = "service.events.CreateEvent"

	taken, err := s.storage.EventNameTaken(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, storage.ErrEventNameTaken
	}

	id, err := s.storage.CreateEvent(name, date)
	if err != nil {
		if errors.Is(err, storage.ErrEventNameTaken) {
			return nil, storage.ErrEventNameTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Event{ID: id, Name: name, Date: date}, nil
}

// UpdateEvent renames and reschedules an event. Keeping the current name is
// allowed; taking a name held by another event is a conflict.
func (s *Service) UpdateEvent(id int, name string, date time.Time) (*models.Event, error) {
	const op = "service.events.UpdateEvent"

	event, err := s.storage.GetEvent(id)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if name != event.Name {
		taken, err := s.storage.EventNameTaken(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, storage.ErrEventNameTaken
		}
	}

	if err = s.storage.UpdateEvent(id, name, date); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) || errors.Is(err, storage.ErrEventNameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Event{ID: id, Name: name, Date: date}, nil
}

// DeleteEvent removes the event together with all of its tickets.
func (s *Service) DeleteEvent(id int) error {
	return s.storage.DeleteEvent(id)
}
