package bids

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freelance_bidding/internal/bidding"
	"freelance_bidding/internal/models/bids"
	"freelance_bidding/internal/models/project"
	"freelance_bidding/internal/storage/bidstore"
	"freelance_bidding/internal/storage/memory"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(t *testing.T) (http.Handler, *bidding.Service) {
	t.Helper()
	repo := bidstore.New(discard, memory.New())
	svc := bidding.New(discard, repo, project.Fallback(), 0)

	r := chi.NewRouter()
	r.Get("/api/bids", NewGetBids(discard, svc))
	r.Get("/api/bids/board", NewGetBidBoard(discard, svc))
	r.Put("/api/bids/{bidId}/status", NewPutBidStatus(discard, svc))
	return r, svc
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func submit(t *testing.T, svc *bidding.Service, projectId int) bids.Bid {
	t.Helper()
	b, err := svc.Submit(context.Background(), projectId, bids.ParseInput("1000", "3", "Happy to take this on"))
	require.NoError(t, err)
	return b
}

func TestPutBidStatus_Transitions(t *testing.T) {
	h, svc := newRouter(t)
	b := submit(t, svc, 1)
	target := "/api/bids/" + jsonId(b.Id) + "/status"

	rec := do(h, http.MethodPut, target, `{"status": "accepted"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got bids.Bid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, bids.StatusAccepted, got.Status)

	rec = do(h, http.MethodPut, target, `{"status": "Rejected"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, bids.StatusAccepted, svc.Bids()[0].Status)
}

func TestPutBidStatus_BadInput(t *testing.T) {
	h, svc := newRouter(t)
	b := submit(t, svc, 1)
	target := "/api/bids/" + jsonId(b.Id) + "/status"

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPut, "/api/bids/x/status", `{"status": "Accepted"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPut, target, `{"status": "Withdrawn"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPut, target, `not json`).Code)
}

func TestPutBidStatus_UnknownBidIsNoContent(t *testing.T) {
	h, _ := newRouter(t)

	rec := do(h, http.MethodPut, "/api/bids/999/status", `{"status": "Accepted"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type failingUpdater struct{}

func (failingUpdater) UpdateStatus(int64, bids.Status) (bids.Bid, bool, error) {
	return bids.Bid{}, true, errors.New("disk full")
}

func TestPutBidStatus_StoreFailure(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/bids/{bidId}/status", NewPutBidStatus(discard, failingUpdater{}))

	rec := do(r, http.MethodPut, "/api/bids/1/status", `{"status": "Accepted"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetBids_Pagination(t *testing.T) {
	h, svc := newRouter(t)
	for _, id := range []int{1, 2, 3} {
		submit(t, svc, id)
	}

	var all []bids.Bid
	rec := do(h, http.MethodGet, "/api/bids", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	var page []bids.Bid
	rec = do(h, http.MethodGet, "/api/bids?limit=1&offset=1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page, 1)
	assert.Equal(t, 2, page[0].ProjectId)

	rec = do(h, http.MethodGet, "/api/bids?offset=10", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/bids?limit=many", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/bids?offset=-1", "").Code)
}

func TestGetBidBoard(t *testing.T) {
	h, svc := newRouter(t)
	b := submit(t, svc, 4)
	_, _, err := svc.UpdateStatus(b.Id, bids.StatusRejected)
	require.NoError(t, err)

	rec := do(h, http.MethodGet, "/api/bids/board", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var board bidding.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board.Columns, 3)
	assert.Equal(t, 0, board.Columns[0].Count)
	assert.Equal(t, 0, board.Columns[1].Count)
	assert.Equal(t, 1, board.Columns[2].Count)
	assert.Equal(t, "E-commerce Platform Integration", board.Columns[2].Entries[0].ProjectName)
}

func jsonId(id int64) string {
	data, _ := json.Marshal(id)
	return string(data)
}
