package useTicket

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/service/tickets"
	"ticketBooth/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketUser
type TicketUser interface {
	UseTicket(id int) error
}

func New(log *slog.Logger, ticketUser TicketUser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.useTicket.New"

		log = log.With(slog.String("op", op))

		ticketIdStr := chi.URLParam(r, "id")

		ticketID, err := strconv.Atoi(ticketIdStr)
		if err != nil || ticketID <= 0 {
			log.Error("invalid ticket id", slog.String("id", ticketIdStr))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "Invalid id.")
			return
		}

		log = log.With(slog.Int("ticket_id", ticketID))

		err = ticketUser.UseTicket(ticketID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				log.Info("ticket not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, fmt.Sprintf("Ticket with id %d not found.", ticketID))
			case errors.Is(err, tickets.ErrTicketUsed):
				log.Info("ticket already used")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("ticket already used"))
			case errors.Is(err, tickets.ErrEventPassed):
				log.Info("event already happened")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("event already happened"))
			default:
				log.Error("failed to use ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to use ticket"))
			}
			return
		}

		log.Info("ticket used successfully")

		render.NoContent(w, r)
	}
}
