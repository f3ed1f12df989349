package model_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/domains/booking/model"
)

func newTestBooking() model.Booking {
	booking, _ := model.NewBooking(
		"customer-1",
		10,
		20,
		30,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		"10:30:00",
		"rattling noise at low speed",
	)
	booking.ID = 1

	return booking
}

func TestNewBooking(t *testing.T) {
	booking, entry := model.NewBooking(
		"customer-1",
		10,
		20,
		30,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		"10:30:00",
		"oil change",
	)

	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, int64(10), booking.VehicleID)
	assert.Equal(t, int64(20), booking.ServiceCenterID)
	assert.Equal(t, int64(30), booking.ServiceID)
	assert.Equal(t, "10:30:00", booking.BookingTime)
	assert.Equal(t, "customer-1", booking.CreatedBy)
	assert.Equal(t, "customer-1", booking.ModifiedBy)
	assert.Nil(t, booking.ConfirmedAt)
	assert.Nil(t, booking.CompletedAt)
	assert.Nil(t, booking.CancelledAt)

	assert.Nil(t, entry.OldStatus)
	assert.Equal(t, model.StatusPending, entry.NewStatus)
	assert.Equal(t, "customer-1", entry.ActorID)
	assert.Equal(t, "Booking created", entry.Notes)
}

func TestNewBookingNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^BK\d{10,}[0-9A-F]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := model.NewBookingNumber()

		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "duplicate booking number %s", number)
		seen[number] = true
	}
}

func TestBooking_Confirm(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		booking := newTestBooking()

		entry, event, err := booking.Confirm("staff-1", "slot verified")

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		require.NotNil(t, booking.ConfirmedAt)
		assert.Equal(t, "staff-1", booking.ConfirmedBy)
		assert.Equal(t, "staff-1", booking.ModifiedBy)

		require.NotNil(t, entry.OldStatus)
		assert.Equal(t, model.StatusPending, *entry.OldStatus)
		assert.Equal(t, model.StatusConfirmed, entry.NewStatus)
		assert.Equal(t, booking.ID, entry.BookingID)
		assert.Equal(t, "Status changed from Pending to Confirmed: slot verified", entry.Notes)

		assert.Equal(t, model.EventBookingConfirmed, event.Type)
		assert.Equal(t, model.StatusPending.String(), event.OldStatus)
		assert.Equal(t, model.StatusConfirmed.String(), event.NewStatus)
	})

	t.Run("from terminal status", func(t *testing.T) {
		booking := newTestBooking()
		booking.Status = model.StatusCompleted

		_, _, err := booking.Confirm("staff-1", "")

		var invalidErr *model.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, model.StatusCompleted, invalidErr.From)
		assert.Equal(t, model.StatusConfirmed, invalidErr.To)
		assert.Equal(t, model.StatusCompleted, booking.Status)
		assert.Nil(t, booking.ConfirmedAt)
	})
}

func TestBooking_StartProgress(t *testing.T) {
	t.Run("from confirmed", func(t *testing.T) {
		booking := newTestBooking()
		booking.Status = model.StatusConfirmed

		entry, _, err := booking.StartProgress("staff-1", "")

		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, booking.Status)
		assert.Equal(t, "Status changed from Confirmed to InProgress", entry.Notes)
	})

	t.Run("from pending", func(t *testing.T) {
		booking := newTestBooking()

		_, _, err := booking.StartProgress("staff-1", "")

		var invalidErr *model.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, model.StatusPending, booking.Status)
	})
}

func TestBooking_Complete(t *testing.T) {
	booking := newTestBooking()
	booking.Status = model.StatusInProgress

	_, event, err := booking.Complete("staff-1", "replaced brake pads")

	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, booking.Status)
	require.NotNil(t, booking.CompletedAt)
	assert.Equal(t, model.StatusCompleted.String(), event.NewStatus)
}

func TestBooking_Cancel(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		booking := newTestBooking()

		entry, event, err := booking.Cancel("customer-1", "found a closer workshop")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, booking.Status)
		require.NotNil(t, booking.CancelledAt)
		assert.Equal(t, "found a closer workshop", booking.CancellationReason)
		assert.Equal(t, "found a closer workshop", event.Reason)
		assert.Equal(t, "Status changed from Pending to Cancelled: found a closer workshop", entry.Notes)
	})

	t.Run("without reason", func(t *testing.T) {
		booking := newTestBooking()

		_, _, err := booking.Cancel("customer-1", "   ")

		require.True(t, errors.Is(err, model.ErrEmptyCancellationReason))
		assert.Equal(t, model.StatusPending, booking.Status)
	})

	t.Run("from in progress", func(t *testing.T) {
		booking := newTestBooking()
		booking.Status = model.StatusInProgress

		_, _, err := booking.Cancel("staff-1", "customer no-show")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, booking.Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		booking := newTestBooking()
		booking.Status = model.StatusCancelled

		_, _, err := booking.Cancel("staff-1", "duplicate request")

		var invalidErr *model.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
	})
}

func TestBooking_EffectivePrice(t *testing.T) {
	booking := newTestBooking()
	booking.BasePrice = 150

	assert.InDelta(t, 150, booking.EffectivePrice(), 0.001)

	override := 99.5
	booking.OverridePrice = &override

	assert.InDelta(t, 99.5, booking.EffectivePrice(), 0.001)
}

func TestBooking_SetStaffNotes(t *testing.T) {
	booking := newTestBooking()

	err := booking.SetStaffNotes("staff-1", "waiting on parts")

	require.NoError(t, err)
	assert.Equal(t, "waiting on parts", booking.StaffNotes)
	assert.Equal(t, "staff-1", booking.ModifiedBy)

	booking.Status = model.StatusCompleted

	err = booking.SetStaffNotes("staff-1", "too late")

	require.True(t, errors.Is(err, model.ErrBookingFrozen))
	assert.Equal(t, "waiting on parts", booking.StaffNotes)
}

func TestBooking_CanBeModified(t *testing.T) {
	booking := newTestBooking()

	assert.True(t, booking.CanBeModified())

	booking.Status = model.StatusInProgress
	assert.True(t, booking.CanBeModified())

	booking.Status = model.StatusCompleted
	assert.False(t, booking.CanBeModified())

	booking.Status = model.StatusCancelled
	assert.False(t, booking.CanBeModified())
}

func TestBooking_CanBeCancelledByCustomer(t *testing.T) {
	booking := newTestBooking()

	assert.True(t, booking.CanBeCancelledByCustomer())

	booking.Status = model.StatusConfirmed
	assert.True(t, booking.CanBeCancelledByCustomer())

	booking.Status = model.StatusInProgress
	assert.False(t, booking.CanBeCancelledByCustomer())

	booking.Status = model.StatusCompleted
	assert.False(t, booking.CanBeCancelledByCustomer())
}
