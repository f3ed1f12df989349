package model

import (
	"time"

	"autocare/shared/timezone"
)

// Event types published on the booking events topic.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingStarted   = "booking.started"
	EventBookingCompleted = "booking.completed"
	EventBookingCancelled = "booking.cancelled"
)

// Event is the outbound notification payload raised by a booking mutation.
// Events are returned by the transition methods and handed to the
// notification dispatcher only after the transaction commits; delivery is
// best effort and never blocks or fails the originating request.
type Event struct {
	Type            string    `json:"type"`
	BookingID       int64     `json:"booking_id"`
	BookingNumber   string    `json:"booking_number"`
	CustomerID      string    `json:"customer_id"`
	ServiceCenterID int64     `json:"service_center_id"`
	BookingDate     string    `json:"booking_date"`
	BookingTime     string    `json:"booking_time"`
	OldStatus       string    `json:"old_status,omitempty"`
	NewStatus       string    `json:"new_status"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewCreatedEvent describes a freshly created Pending booking.
func NewCreatedEvent(booking *Booking) Event {
	event := newEvent(booking)
	event.Type = EventBookingCreated

	return event
}

// NewStatusChangedEvent describes a successful transition away from oldStatus.
func NewStatusChangedEvent(booking *Booking, oldStatus Status) Event {
	event := newEvent(booking)
	event.OldStatus = oldStatus.String()

	switch booking.Status {
	case StatusConfirmed:
		event.Type = EventBookingConfirmed
	case StatusInProgress:
		event.Type = EventBookingStarted
	case StatusCompleted:
		event.Type = EventBookingCompleted
	case StatusCancelled:
		event.Type = EventBookingCancelled
	}

	return event
}

func newEvent(booking *Booking) Event {
	return Event{
		BookingID:       booking.ID,
		BookingNumber:   booking.BookingNumber,
		CustomerID:      booking.CustomerID,
		ServiceCenterID: booking.ServiceCenterID,
		BookingDate:     booking.BookingDate.Format("2006-01-02"),
		BookingTime:     booking.BookingTime,
		NewStatus:       booking.Status.String(),
		OccurredAt:      timezone.Now(),
	}
}
