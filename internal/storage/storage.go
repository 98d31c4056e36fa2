package storage

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrEventNameTaken  = errors.New("event name already taken")
	ErrTicketCodeTaken = errors.New("ticket code already taken for event")
)
