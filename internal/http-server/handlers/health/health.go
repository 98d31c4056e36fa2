package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		log.Debug("health check", slog.String("op", op))

		render.PlainText(w, r, "I'm okay!")
	}
}
