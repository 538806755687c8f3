package bids

import (
	"encoding/json"
	serrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"freelance_bidding/internal/bidding"
	"freelance_bidding/internal/lib/errors"
	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/models/bids"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type BidsLister interface {
	Bids() []bids.Bid
}

type BoardReader interface {
	StatusBoard() bidding.Board
}

type BidStatusUpdater interface {
	UpdateStatus(bidId int64, to bids.Status) (bids.Bid, bool, error)
}

func NewGetBids(log *slog.Logger, lister BidsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit, offset int
		var err error

		if r.URL.Query().Get("limit") != "" {
			limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
			if err != nil || limit < 0 {
				log.Error("Incorrect limit value")
				render.Status(r, 400)
				render.JSON(w, r, errors.NewHttpError("Incorrect limit value"))
				return
			}
		}
		if r.URL.Query().Get("offset") != "" {
			offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
			if err != nil || offset < 0 {
				log.Error("Incorrect offset value")
				render.Status(r, 400)
				render.JSON(w, r, errors.NewHttpError("Incorrect offset value"))
				return
			}
		}

		all := lister.Bids()
		if offset > len(all) {
			offset = len(all)
		}
		all = all[offset:]
		if limit > 0 && limit < len(all) {
			all = all[:limit]
		}

		render.JSON(w, r, all)
	}
}

func NewGetBidBoard(log *slog.Logger, reader BoardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, reader.StatusBoard())
	}
}

func NewPutBidStatus(log *slog.Logger, updater BidStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.bids.NewPutBidStatus"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		bidId, err := strconv.ParseInt(chi.URLParam(r, "bidId"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("The bid id is invalid"))
			return
		}

		var req bids.BidStatusRequest

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&req); err != nil {
			log.Error("Error decoding request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("Error decoding request body"))
			return
		}

		status, err := bids.ParseStatus(req.Status)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, errors.NewHttpError("invalid status parameter"))
			return
		}

		resp, found, err := updater.UpdateStatus(bidId, status)
		if err != nil {
			switch {
			case serrors.Is(err, bids.ErrTransitionNotAllowed):
				render.Status(r, 409)
			default:
				log.Error("failed to update bid status", sl.Err(err))
				render.Status(r, 500)
			}
			render.JSON(w, r, errors.NewHttpError(err.Error()))
			return
		}
		if !found {
			render.NoContent(w, r)
			return
		}

		render.JSON(w, r, resp)
	}
}
