package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/domains/booking/model"
	"autocare/internal/domains/booking/model/dto"
	gDto "autocare/shared/dto"
)

func TestCreateBookingRequest_ParseSchedule(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		time        string
		wantErr     bool
		wantMessage string
	}{
		{name: "valid", date: "2026-09-15", time: "10:30:00"},
		{name: "valid midnight", date: "2026-01-01", time: "00:00:00"},
		{name: "bad date format", date: "15-09-2026", time: "10:30:00", wantErr: true, wantMessage: "bookingDate must be formatted as YYYY-MM-DD"},
		{name: "not a date", date: "someday", time: "10:30:00", wantErr: true, wantMessage: "bookingDate must be formatted as YYYY-MM-DD"},
		{name: "bad time format", date: "2026-09-15", time: "10:30", wantErr: true, wantMessage: "bookingTime must be formatted as HH:mm:ss"},
		{name: "out of range time", date: "2026-09-15", time: "25:00:00", wantErr: true, wantMessage: "bookingTime must be formatted as HH:mm:ss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{BookingDate: tt.date, BookingTime: tt.time}

			bookingDate, bookingTime, err := req.ParseSchedule()

			if tt.wantErr {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantMessage)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.date, bookingDate.Format("2006-01-02"))
			assert.Equal(t, tt.time, bookingTime)
		})
	}
}

func TestListBookingsQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   dto.ListBookingsQuery
		wantErr bool
	}{
		{name: "empty", query: dto.ListBookingsQuery{}},
		{name: "valid status", query: dto.ListBookingsQuery{Status: "Confirmed"}},
		{name: "valid dates", query: dto.ListBookingsQuery{FromDate: "2026-09-01", ToDate: "2026-09-30"}},
		{name: "unknown status", query: dto.ListBookingsQuery{Status: "Done"}, wantErr: true},
		{name: "bad from date", query: dto.ListBookingsQuery{FromDate: "01/09/2026"}, wantErr: true},
		{name: "bad to date", query: dto.ListBookingsQuery{ToDate: "soon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSortColumn(t *testing.T) {
	assert.Equal(t, "bookings.booking_date", dto.SortColumn("Date"))
	assert.Equal(t, "bookings.created_at", dto.SortColumn("CreatedAt"))
	assert.Equal(t, "bookings.status", dto.SortColumn("Status"))
	assert.Equal(t, "bookings.created_at", dto.SortColumn("bogus"))
	assert.Equal(t, "bookings.created_at", dto.SortColumn(""))
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking, _ := model.NewBooking(
		"customer-1",
		10,
		20,
		30,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		"10:30:00",
		"oil change",
	)
	booking.ID = 7
	booking.ServiceName = "Full Service"
	booking.BasePrice = 200
	booking.DurationMinutes = 90

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, booking.BookingNumber, res.BookingNumber)
	assert.Equal(t, "2026-09-15", res.BookingDate)
	assert.Equal(t, "10:30:00", res.BookingTime)
	assert.Equal(t, "Pending", res.Status)
	assert.Equal(t, "Full Service", res.ServiceName)
	assert.InDelta(t, 200, res.EffectivePrice, 0.001)
	assert.True(t, res.CanBeModified)
	assert.True(t, res.CanBeCancelledByCustomer)
	assert.Nil(t, res.ConfirmedAt)
	assert.Nil(t, res.CompletedAt)

	override := 175.0
	booking.OverridePrice = &override

	_, _, err := booking.Confirm("staff-1", "")
	require.NoError(t, err)

	res = dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "Confirmed", res.Status)
	assert.InDelta(t, 175, res.EffectivePrice, 0.001)
	require.NotNil(t, res.ConfirmedAt)
	assert.Equal(t, "staff-1", res.ConfirmedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		limit       int
		wantPages   int
		wantHasPrev bool
		wantHasNext bool
	}{
		{name: "first of many", total: 25, page: 1, limit: 10, wantPages: 3, wantHasPrev: false, wantHasNext: true},
		{name: "middle page", total: 25, page: 2, limit: 10, wantPages: 3, wantHasPrev: true, wantHasNext: true},
		{name: "last page", total: 25, page: 3, limit: 10, wantPages: 3, wantHasPrev: true, wantHasNext: false},
		{name: "empty result", total: 0, page: 1, limit: 10, wantPages: 1, wantHasPrev: false, wantHasNext: false},
		{name: "exact fit", total: 20, page: 2, limit: 10, wantPages: 2, wantHasPrev: true, wantHasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, _ := model.NewBooking(
				"customer-1", 10, 20, 30,
				time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				"10:30:00", "",
			)

			var res dto.GetBookingsResponse
			res.FromModels([]model.Booking{booking}, tt.total, gDto.QueryParams{Page: tt.page, Limit: tt.limit})

			assert.Len(t, res.Bookings, 1)
			assert.Equal(t, tt.page, res.Pagination.PageNumber)
			assert.Equal(t, tt.limit, res.Pagination.PageSize)
			assert.Equal(t, tt.total, res.Pagination.TotalCount)
			assert.Equal(t, tt.wantPages, res.Pagination.TotalPages)
			assert.Equal(t, tt.wantHasPrev, res.Pagination.HasPreviousPage)
			assert.Equal(t, tt.wantHasNext, res.Pagination.HasNextPage)
		})
	}
}

func TestFromHistoryModels(t *testing.T) {
	oldStatus := model.StatusPending
	entries := []model.StatusHistory{
		{
			ID:        1,
			BookingID: 7,
			NewStatus: model.StatusPending,
			ActorID:   "customer-1",
			Notes:     "Booking created",
			CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			BookingID: 7,
			OldStatus: &oldStatus,
			NewStatus: model.StatusConfirmed,
			ActorID:   "staff-1",
			CreatedAt: time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	responses := dto.FromHistoryModels(entries)

	require.Len(t, responses, 2)
	assert.Nil(t, responses[0].OldStatus)
	assert.Equal(t, "Pending", responses[0].NewStatus)
	require.NotNil(t, responses[1].OldStatus)
	assert.Equal(t, "Pending", *responses[1].OldStatus)
	assert.Equal(t, "Confirmed", responses[1].NewStatus)
	assert.NotEmpty(t, responses[1].CreatedAt)
}
