package model

import (
	"errors"
	"fmt"
)

// ErrEmptyCancellationReason rejects a cancellation without a reason.
var ErrEmptyCancellationReason = errors.New("cancellation reason is required")

// ErrBookingFrozen rejects narrative changes to a terminal booking.
var ErrBookingFrozen = errors.New("completed or cancelled bookings cannot be modified")

// InvalidTransitionError reports an attempt to move a booking between two
// states the rule engine does not connect.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
