package createTicket

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/models"
	"ticketBooth/internal/service/tickets"
	"ticketBooth/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type TicketRequest struct {
	Owner   string `json:"owner" validate:"required"`
	Code    string `json:"code" validate:"required"`
	EventID int    `json:"eventId" validate:"required,gt=0"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	CreateTicket(owner, code string, eventID int) (*models.Ticket, error)
}

func New(log *slog.Logger, ticketCreator TicketCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log = log.With(slog.String("op", op))

		var req TicketRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		ticket, err := ticketCreator.CreateTicket(req.Owner, req.Code, req.EventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found", slog.Int("event_id", req.EventID))
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, fmt.Sprintf("Event with id %d not found.", req.EventID))
			case errors.Is(err, tickets.ErrEventPassed):
				log.Info("event already happened", slog.Int("event_id", req.EventID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("event already happened"))
			case errors.Is(err, storage.ErrTicketCodeTaken):
				log.Info("ticket code already taken", slog.String("code", req.Code))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("ticket with this code already exists for the event"))
			default:
				log.Error("failed to create ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create ticket"))
			}
			return
		}

		log.Info("ticket created", slog.Int("id", ticket.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ticket)
	}
}
