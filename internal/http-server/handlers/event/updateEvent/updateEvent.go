package updateEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id int, name string, date time.Time) (*models.Event, error)
}

func New(log *slog.Logger, eventUpdater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

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

		var req EventRequest

		err = render.DecodeJSON(r.Body, &req)
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

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("field Date must be a valid timestamp"))
			return
		}

		event, err := eventUpdater.UpdateEvent(eventID, req.Name, date)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, fmt.Sprintf("Event with id %d not found.", eventID))
			case errors.Is(err, storage.ErrEventNameTaken):
				log.Info("event name already taken", slog.String("name", req.Name))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event with this name already exists"))
			default:
				log.Error("failed to update event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event"))
			}
			return
		}

		log.Info("event updated")

		render.JSON(w, r, event)
	}
}
