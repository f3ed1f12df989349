package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"autocare/shared/model"
	"autocare/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldBookingNumber      = "booking_number"
	FieldCustomerID         = "customer_id"
	FieldVehicleID          = "vehicle_id"
	FieldServiceCenterID    = "service_center_id"
	FieldServiceID          = "service_id"
	FieldBookingDate        = "booking_date"
	FieldBookingTime        = "booking_time"
	FieldStatus             = "status"
	FieldCustomerNotes      = "customer_notes"
	FieldStaffNotes         = "staff_notes"
	FieldConfirmedAt        = "confirmed_at"
	FieldConfirmedBy        = "confirmed_by"
	FieldCompletedAt        = "completed_at"
	FieldCancelledAt        = "cancelled_at"
	FieldCancellationReason = "cancellation_reason"
)

const bookingNumberSuffixLen = 6

// Booking is the aggregate root of the scheduling engine. Its status and
// terminal metadata change only through the transition methods below; the
// ledger entry and notification event produced by each transition are
// returned to the caller so they can be persisted and dispatched after the
// surrounding transaction commits.
type Booking struct {
	ID                 int64      `db:"id"`
	BookingNumber      string     `db:"booking_number"`
	CustomerID         string     `db:"customer_id"`
	VehicleID          int64      `db:"vehicle_id"`
	ServiceCenterID    int64      `db:"service_center_id"`
	ServiceID          int64      `db:"service_id"`
	BookingDate        time.Time  `db:"booking_date"`
	BookingTime        string     `db:"booking_time"`
	Status             Status     `db:"status"`
	CustomerNotes      string     `db:"customer_notes"`
	StaffNotes         string     `db:"staff_notes"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	ConfirmedBy        string     `db:"confirmed_by"`
	CompletedAt        *time.Time `db:"completed_at"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason string     `db:"cancellation_reason"`

	// Catalog projection, resolved by the repository's left join.
	ServiceName     string   `db:"service_name"     table:"services"        column:"name"`
	BasePrice       float64  `db:"base_price"       table:"services"`
	DurationMinutes int      `db:"duration_minutes" table:"services"`
	OverridePrice   *float64 `db:"override_price"   table:"center_services"`

	model.Metadata
}

// GetJoinQuery resolves the catalog columns carried on every booking row
// without materializing the catalog per row.
func (Booking) GetJoinQuery() string {
	return strings.Join([]string{
		"LEFT JOIN services ON services.id = bookings.service_id",
		"LEFT JOIN center_services ON center_services.service_center_id = bookings.service_center_id",
		"AND center_services.service_id = bookings.service_id",
	}, " ")
}

// NewBooking creates a booking in status Pending together with its initial
// ledger entry.
func NewBooking(customerID string, vehicleID, serviceCenterID, serviceID int64, bookingDate time.Time, bookingTime, customerNotes string) (Booking, StatusHistory) {
	now := timezone.Now()

	booking := Booking{
		BookingNumber:   NewBookingNumber(),
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		ServiceCenterID: serviceCenterID,
		ServiceID:       serviceID,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		Status:          StatusPending,
		CustomerNotes:   customerNotes,
		Metadata: model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}

	entry := StatusHistory{
		NewStatus: StatusPending,
		ActorID:   customerID,
		Notes:     "Booking created",
		CreatedAt: now,
	}

	return booking, entry
}

// NewBookingNumber generates a human-facing booking number.
func NewBookingNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:bookingNumberSuffixLen])

	return fmt.Sprintf("BK%d%s", timezone.Now().Unix(), suffix)
}

// Confirm moves a Pending booking to Confirmed.
func (b *Booking) Confirm(actorID, notes string) (StatusHistory, Event, error) {
	entry, event, err := b.transition(StatusConfirmed, actorID, notes)
	if err != nil {
		return StatusHistory{}, Event{}, err
	}

	now := timezone.Now()
	b.ConfirmedAt = &now
	b.ConfirmedBy = actorID

	return entry, event, nil
}

// StartProgress moves a Confirmed booking to InProgress.
func (b *Booking) StartProgress(actorID, notes string) (StatusHistory, Event, error) {
	return b.transition(StatusInProgress, actorID, notes)
}

// Complete moves an InProgress booking to Completed.
func (b *Booking) Complete(actorID, notes string) (StatusHistory, Event, error) {
	entry, event, err := b.transition(StatusCompleted, actorID, notes)
	if err != nil {
		return StatusHistory{}, Event{}, err
	}

	now := timezone.Now()
	b.CompletedAt = &now

	return entry, event, nil
}

// Cancel moves an active booking to Cancelled. The reason is mandatory and
// stored verbatim.
func (b *Booking) Cancel(actorID, reason string) (StatusHistory, Event, error) {
	if strings.TrimSpace(reason) == "" {
		return StatusHistory{}, Event{}, ErrEmptyCancellationReason
	}

	entry, event, err := b.transition(StatusCancelled, actorID, reason)
	if err != nil {
		return StatusHistory{}, Event{}, err
	}

	now := timezone.Now()
	b.CancelledAt = &now
	b.CancellationReason = reason
	event.Reason = reason

	return entry, event, nil
}

// transition applies the rule engine: it captures the old status, mutates
// the record and returns the ledger entry plus the outbound event.
func (b *Booking) transition(target Status, actorID, notes string) (StatusHistory, Event, error) {
	if !b.Status.CanTransitionTo(target) {
		return StatusHistory{}, Event{}, &InvalidTransitionError{From: b.Status, To: target}
	}

	oldStatus := b.Status
	now := timezone.Now()

	b.Status = target
	b.ModifiedAt = now
	b.ModifiedBy = actorID

	entry := StatusHistory{
		BookingID: b.ID,
		OldStatus: &oldStatus,
		NewStatus: target,
		ActorID:   actorID,
		Notes:     transitionNote(oldStatus, target, notes),
		CreatedAt: now,
	}

	event := NewStatusChangedEvent(b, oldStatus)

	return entry, event, nil
}

func transitionNote(from, to Status, notes string) string {
	note := fmt.Sprintf("Status changed from %s to %s", from, to)
	if notes != "" {
		note = note + ": " + notes
	}

	return note
}

// EffectivePrice is the center-specific override when present, otherwise the
// catalog base price.
func (b *Booking) EffectivePrice() float64 {
	if b.OverridePrice != nil {
		return *b.OverridePrice
	}

	return b.BasePrice
}

// SetStaffNotes replaces the staff narrative. Terminal bookings are frozen.
func (b *Booking) SetStaffNotes(actorID, notes string) error {
	if !b.CanBeModified() {
		return ErrBookingFrozen
	}

	b.StaffNotes = notes
	b.ModifiedAt = timezone.Now()
	b.ModifiedBy = actorID

	return nil
}

// CanBeModified reports whether narrative fields may still change.
func (b *Booking) CanBeModified() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelledByCustomer reports whether the owning customer may still
// cancel; customers cannot cancel work already in progress.
func (b *Booking) CanBeCancelledByCustomer() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
