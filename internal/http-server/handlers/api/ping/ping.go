package ping

import (
	"errors"
	"log/slog"
	"net/http"

	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/storage"

	"github.com/go-chi/render"
)

const probeKey = "healthcheck"

// New answers "ok" while the key-value store can be read.
func New(log *slog.Logger, store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.ping.New"

		log := log.With(slog.String("op", op))
		log.Debug("ping request")

		if _, err := store.Get(probeKey); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
			log.Error("store unavailable", sl.Err(err))
			render.Status(r, 503)
			render.PlainText(w, r, "store unavailable")
			return
		}

		render.PlainText(w, r, "ok")
	}
}
