package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ticketBooth/internal/lib/api/response"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Date travels as a string so an unparsable value is a validation failure,
// not a body-decode failure.
type EventRequest struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(name string, date time.Time) (*models.Event, error)
}

func New(log *slog.Logger, eventCreator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

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

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("field Date must be a valid timestamp"))
			return
		}

		event, err := eventCreator.CreateEvent(req.Name, date)
		if err != nil {
			if errors.Is(err, storage.ErrEventNameTaken) {
				log.Info("event name already taken", slog.String("name", req.Name))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event with this name already exists"))
				return
			}

			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.Int("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, event)
	}
}
