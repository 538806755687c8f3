package bids

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusPending, StatusAccepted, StatusRejected}

// ParseStatus accepts any casing, so "pending" and "Pending" are the same status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "accepted":
		return StatusAccepted, nil
	case "rejected":
		return StatusRejected, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// Records saved before statuses existed carry an empty one.
	if strings.TrimSpace(raw) == "" {
		*s = StatusPending
		return nil
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Bid struct {
	Id        int64     `json:"id"`
	ProjectId int       `json:"projectId"`
	Amount    float64   `json:"amount"`
	Timeline  int       `json:"timeline"`
	Proposal  string    `json:"proposal"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BidRequest keeps the numbers raw so that "", "abc" or null reach validation as absent values.
type BidRequest struct {
	Amount   json.RawMessage `json:"amount"`
	Timeline json.RawMessage `json:"timeline"`
	Proposal string          `json:"proposal"`
}

type BidStatusRequest struct {
	Status string `json:"status"`
}

// NewPending builds a freshly submitted bid. The input must already have passed Validate.
func NewPending(id int64, projectId int, in Input, createdAt time.Time) Bid {
	return Bid{
		Id:        id,
		ProjectId: projectId,
		Amount:    *in.Amount,
		Timeline:  int(*in.Timeline),
		Proposal:  in.Proposal,
		Status:    StatusPending,
		CreatedAt: createdAt.UTC(),
	}
}
