package getTickets

import (
	"log/slog"
	"net/http"
	"strconv"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsGetter
type TicketsGetter interface {
	GetEventTickets(eventID int) ([]models.Ticket, error)
}

// New lists the tickets of an event. A nonexistent event yields an empty
// list rather than a 404.
func New(log *slog.Logger, ticketsGetter TicketsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTickets.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "eventId")

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil || eventID <= 0 {
			log.Error("invalid event id", slog.String("id", eventIdStr))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "Invalid id.")
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		tickets, err := ticketsGetter.GetEventTickets(eventID)
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))
			return
		}

		log.Info("tickets retrieved successfully", slog.Int("count", len(tickets)))

		render.JSON(w, r, tickets)
	}
}
