package dto

import (
	"time"

	"autocare/internal/domains/booking/model"
	"autocare/shared"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/timezone"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Sort keys accepted by the list endpoints, mapped to their columns.
var sortColumns = map[string]string{
	"Date":      model.TableName + "." + model.FieldBookingDate,
	"CreatedAt": model.TableName + ".created_at",
	"Status":    model.TableName + "." + model.FieldStatus,
}

type CreateBookingRequest struct {
	VehicleID       int64  `json:"vehicleId"       validate:"required"`
	ServiceCenterID int64  `json:"serviceCenterId" validate:"required"`
	ServiceID       int64  `json:"serviceId"       validate:"required"`
	BookingDate     string `json:"bookingDate"     validate:"required"`
	BookingTime     string `json:"bookingTime"     validate:"required"`
	CustomerNotes   string `json:"customerNotes"   validate:"omitempty,max=1000"`
}

// ParseSchedule validates the wire formats of the requested slot.
func (c *CreateBookingRequest) ParseSchedule() (time.Time, string, error) {
	bookingDate, err := time.ParseInLocation(dateLayout, c.BookingDate, time.UTC)
	if err != nil {
		return time.Time{}, "", failure.BadRequestFromString("bookingDate must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	bookingTime, err := time.Parse(timeLayout, c.BookingTime)
	if err != nil {
		return time.Time{}, "", failure.BadRequestFromString("bookingTime must be formatted as HH:mm:ss") //nolint:wrapcheck
	}

	return bookingDate, bookingTime.Format(timeLayout), nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

type TransitionRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateStaffNotesRequest struct {
	StaffNotes string `json:"staffNotes" validate:"required,max=1000"`
}

// ListBookingsQuery carries the optional list filters after validation.
type ListBookingsQuery struct {
	Status   string
	FromDate string
	ToDate   string
}

// Validate checks the filter values against the wire formats and the status
// enumeration.
func (q *ListBookingsQuery) Validate() error {
	if q.Status != "" {
		if _, err := model.ParseStatus(q.Status); err != nil {
			return failure.BadRequestFromString("status must be one of Pending, Confirmed, InProgress, Completed, Cancelled") //nolint:wrapcheck
		}
	}

	for _, date := range []string{q.FromDate, q.ToDate} {
		if date == "" {
			continue
		}

		if _, err := time.Parse(dateLayout, date); err != nil {
			return failure.BadRequestFromString("date filters must be formatted as YYYY-MM-DD") //nolint:wrapcheck
		}
	}

	return nil
}

// SortColumn maps the public sort key to its column, falling back to the
// creation timestamp.
func SortColumn(sortBy string) string {
	if column, ok := sortColumns[sortBy]; ok {
		return column
	}

	return model.TableName + ".created_at"
}

type BookingResponse struct {
	ID                       int64   `json:"id"`
	BookingNumber            string  `json:"bookingNumber"`
	CustomerID               string  `json:"customerId"`
	VehicleID                int64   `json:"vehicleId"`
	ServiceCenterID          int64   `json:"serviceCenterId"`
	ServiceID                int64   `json:"serviceId"`
	ServiceName              string  `json:"serviceName"`
	BookingDate              string  `json:"bookingDate"`
	BookingTime              string  `json:"bookingTime"`
	Status                   string  `json:"status"`
	CustomerNotes            string  `json:"customerNotes,omitempty"`
	StaffNotes               string  `json:"staffNotes,omitempty"`
	ConfirmedAt              *string `json:"confirmedAt,omitempty"`
	ConfirmedBy              string  `json:"confirmedBy,omitempty"`
	CompletedAt              *string `json:"completedAt,omitempty"`
	CancelledAt              *string `json:"cancelledAt,omitempty"`
	CancellationReason       string  `json:"cancellationReason,omitempty"`
	EffectivePrice           float64 `json:"effectivePrice"`
	DurationMinutes          int     `json:"durationMinutes"`
	CanBeModified            bool    `json:"canBeModified"`
	CanBeCancelledByCustomer bool    `json:"canBeCancelledByCustomer"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingNumber = booking.BookingNumber
	r.CustomerID = booking.CustomerID
	r.VehicleID = booking.VehicleID
	r.ServiceCenterID = booking.ServiceCenterID
	r.ServiceID = booking.ServiceID
	r.ServiceName = booking.ServiceName
	r.BookingDate = booking.BookingDate.Format(dateLayout)
	r.BookingTime = booking.BookingTime
	r.Status = booking.Status.String()
	r.CustomerNotes = booking.CustomerNotes
	r.StaffNotes = booking.StaffNotes
	r.ConfirmedAt = formatTime(booking.ConfirmedAt)
	r.ConfirmedBy = booking.ConfirmedBy
	r.CompletedAt = formatTime(booking.CompletedAt)
	r.CancelledAt = formatTime(booking.CancelledAt)
	r.CancellationReason = booking.CancellationReason
	r.EffectivePrice = booking.EffectivePrice()
	r.DurationMinutes = booking.DurationMinutes
	r.CanBeModified = booking.CanBeModified()
	r.CanBeCancelledByCustomer = booking.CanBeCancelledByCustomer()
	r.Metadata.FromModel(booking.Metadata)
}

// GetBookingsResponse round-trips through the redis cache as JSON, so the
// pagination block must serialize with it; the envelope writer lifts it out
// of the payload again.
type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData int, params gDto.QueryParams) {
	r.Pagination = gDto.Pagination{
		PageNumber:      params.Page,
		PageSize:        params.Limit,
		TotalCount:      totalData,
		TotalPages:      shared.CalculateTotalPage(totalData, params.Limit),
		HasPreviousPage: params.Page > 1,
	}
	r.Pagination.HasNextPage = params.Page < r.Pagination.TotalPages

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type StatusHistoryResponse struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"bookingId"`
	OldStatus *string `json:"oldStatus"`
	NewStatus string  `json:"newStatus"`
	ActorID   string  `json:"actorId"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func (r *StatusHistoryResponse) FromModel(entry model.StatusHistory) {
	r.ID = entry.ID
	r.BookingID = entry.BookingID
	r.NewStatus = entry.NewStatus.String()
	r.ActorID = entry.ActorID
	r.Notes = entry.Notes
	r.CreatedAt = timezone.Format(entry.CreatedAt, time.RFC3339)

	if entry.OldStatus != nil {
		oldStatus := entry.OldStatus.String()
		r.OldStatus = &oldStatus
	}
}

func FromHistoryModels(entries []model.StatusHistory) []StatusHistoryResponse {
	responses := make([]StatusHistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i].FromModel(entry)
	}

	return responses
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, time.RFC3339)

	return &formatted
}
