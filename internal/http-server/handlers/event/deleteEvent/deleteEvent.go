package deleteEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(id int) error
}

func New(log *slog.Logger, eventDeleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil || eventID <= 0 {
			log.Error("invalid event id", slog.String("id", eventIdStr))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "Invalid id.")
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		err = eventDeleter.DeleteEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, fmt.Sprintf("Event with id %d not found.", eventID))
				return
			}

			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		render.NoContent(w, r)
	}
}
