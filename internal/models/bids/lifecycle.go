package bids

import (
	"errors"
	"fmt"
)

var (
	ErrTransitionNotAllowed = errors.New("bid status transition not allowed")
	ErrUnknownStatus        = errors.New("unknown bid status")
)

// Accepted and Rejected are terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusRejected},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns an updater that moves a bid to the given status and touches nothing else.
func Transition(to Status) func(Bid) (Bid, error) {
	return func(b Bid) (Bid, error) {
		if !CanTransition(b.Status, to) {
			return b, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, b.Status, to)
		}
		b.Status = to
		return b, nil
	}
}
