package model

import (
	"time"
)

const (
	HistoryTableName  = "booking_status_histories"
	HistoryEntityName = "booking status history"

	HistoryFieldID        = "id"
	HistoryFieldBookingID = "booking_id"
	HistoryFieldOldStatus = "old_status"
	HistoryFieldNewStatus = "new_status"
	HistoryFieldActorID   = "actor_id"
	HistoryFieldNotes     = "notes"
	HistoryFieldCreatedAt = "created_at"
)

// StatusHistory is one entry of the append-only transition ledger. Entries
// are written only as a side effect of a transition, in the same
// transaction as the booking row itself, so the ledger cannot diverge from
// the record's actual transition sequence. OldStatus is nil only for the
// initial Pending entry.
type StatusHistory struct {
	ID        int64     `db:"id"`
	BookingID int64     `db:"booking_id"`
	OldStatus *Status   `db:"old_status"`
	NewStatus Status    `db:"new_status"`
	ActorID   string    `db:"actor_id"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
