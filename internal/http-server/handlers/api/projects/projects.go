package projects

import (
	"context"
	"encoding/json"
	serrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"freelance_bidding/internal/bidding"
	"freelance_bidding/internal/catalog"
	"freelance_bidding/internal/lib/errors"
	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/models/bids"
	"freelance_bidding/internal/models/project"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ListingReader interface {
	Listing(search, skill string) []bidding.ProjectListing
}

type ProjectsProvider interface {
	Projects() []project.Project
}

type BidSubmitter interface {
	Submit(ctx context.Context, projectId int, in bids.Input) (bids.Bid, error)
}

func NewGetProjects(log *slog.Logger, reader ListingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		skill := r.URL.Query().Get("skill")

		render.JSON(w, r, reader.Listing(search, skill))
	}
}

func NewGetSkills(log *slog.Logger, provider ProjectsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, catalog.Skills(provider.Projects()))
	}
}

func NewPostBid(log *slog.Logger, submitter BidSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.projects.NewPostBid"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		projectId, err := strconv.Atoi(chi.URLParam(r, "projectId"))
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("The project id is invalid"))
			return
		}

		var req bids.BidRequest

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&req); err != nil {
			log.Error("Error decoding request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("Error decoding request body"))
			return
		}

		resp, err := submitter.Submit(r.Context(), projectId, req.Input())
		if err != nil {
			var verr *bids.ValidationError
			switch {
			case serrors.As(err, &verr):
				render.Status(r, 400)
				render.JSON(w, r, errors.NewValidationHttpError("invalid bid", verr.Errors.Codes()))
				return
			case serrors.Is(err, bidding.ErrProjectNotFound):
				render.Status(r, 404)
			case serrors.Is(err, bidding.ErrBidExists):
				render.Status(r, 409)
			case serrors.Is(err, context.Canceled), serrors.Is(err, context.DeadlineExceeded):
				log.Info("bid submission aborted by client")
				render.Status(r, 503)
			default:
				log.Error("failed to submit bid", sl.Err(err))
				render.Status(r, 500)
			}
			render.JSON(w, r, errors.NewHttpError(err.Error()))
			return
		}

		render.Status(r, 201)
		render.JSON(w, r, resp)
	}
}
