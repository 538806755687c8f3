package profile

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"freelance_bidding/internal/lib/errors"
	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/metrics"
	"freelance_bidding/internal/models/profile"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RatingReader interface {
	Get(freelancerId int, seed profile.Rating) profile.Rating
}

type Rater interface {
	Add(freelancerId int, seed profile.Rating, vote int) (profile.Rating, error)
}

func seedOf(f profile.Freelancer) profile.Rating {
	return profile.Rating{Mean: f.Rating, Count: f.TotalRatings}
}

func NewGetProfile(log *slog.Logger, freelancer profile.Freelancer, reader RatingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := freelancer
		current := reader.Get(freelancer.Id, seedOf(freelancer))
		resp.Rating, resp.TotalRatings = current.Mean, current.Count

		render.JSON(w, r, resp)
	}
}

func NewPostRating(log *slog.Logger, freelancer profile.Freelancer, rater Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.profile.NewPostRating"

		log := log.With(slog.String("op", op))

		var req profile.RatingRequest

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&req); err != nil {
			log.Error("Error decoding request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("Error decoding request body"))
			return
		}

		if err := validate.Struct(req); err != nil {
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("stars must be between 1 and 5"))
			return
		}

		updated, err := rater.Add(freelancer.Id, seedOf(freelancer), req.Stars)
		if err != nil {
			log.Error("failed to save rating", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, errors.NewHttpError("failed to save rating"))
			return
		}

		metrics.RatingsTotal.Inc()
		log.Info("rating recorded", slog.Int("stars", req.Stars), slog.Int("total", updated.Count))

		render.JSON(w, r, updated)
	}
}
