package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"autocare/infras/otel"
	"autocare/internal/domains/booking/model/dto"
	"autocare/internal/domains/booking/service"
	bookingHandler "autocare/internal/handlers/booking"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/validator"
	"autocare/transport/http/response"
)

// Handler exposes the staff surface of the booking engine: the full booking
// list across customers and the forward status transitions.
type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/history", handler.GetBookingHistory)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/start", handler.StartBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Patch("/{id}/notes", handler.UpdateStaffNotes)
	})
}

// GetBookings lists bookings across all customers.
// @Summary List all bookings
// @Description List every customer's bookings with optional status and date filters.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param fromDate query string false "Filter from date (YYYY-MM-DD)"
// @Param toDate query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.GetBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	query := dto.ListBookingsQuery{
		Status:   request.URL.Query().Get(constant.RequestParamStatus),
		FromDate: request.URL.Query().Get(constant.RequestParamFromDate),
		ToDate:   request.URL.Query().Get(constant.RequestParamToDate),
	}

	bookings, err := handler.service.GetAll(ctx, params, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithPagination(writer, http.StatusOK, bookings.Bookings, bookings.Pagination)
}

// GetBookingByID retrieves any booking.
// @Summary Get a booking by ID
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope "Booking details"
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.GetBookingByID")
	defer scope.End()

	id, err := bookingHandler.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookingHistory lists a booking's status ledger.
// @Summary Get booking status history
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope "Status history entries"
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.GetBookingHistory")
	defer scope.End()

	id, err := bookingHandler.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	entries, err := handler.service.GetHistory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking history retrieved successfully")

	response.WithJSON(writer, http.StatusOK, entries)
}

// ConfirmBooking moves a Pending booking to Confirmed.
// @Summary Confirm a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} response.Envelope "Confirmed booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "ConfirmBooking", handler.service.Confirm)
}

// StartBooking moves a Confirmed booking to InProgress.
// @Summary Start work on a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} response.Envelope "Booking in progress"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "StartBooking", handler.service.Start)
}

// CompleteBooking moves an InProgress booking to Completed.
// @Summary Complete a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} response.Envelope "Completed booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "CompleteBooking", handler.service.Complete)
}

// CancelBooking cancels any non-completed booking.
// @Summary Cancel a booking as staff
// @Description Cancel any booking that is not already Completed or Cancelled. A reason of 5 to 500 characters is required.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} response.Envelope "Cancelled booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.CancelBooking")
	defer scope.End()

	id, err := bookingHandler.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.CancelBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Cancel(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled: " + booking.BookingNumber)

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateStaffNotes replaces the staff notes on a non-terminal booking.
// @Summary Update staff notes
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.UpdateStaffNotesRequest true "Staff notes"
// @Success 200 {object} response.Envelope "Updated booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/bookings/{id}/notes [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaffNotes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.UpdateStaffNotes")
	defer scope.End()

	id, err := bookingHandler.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.UpdateStaffNotesRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.UpdateStaffNotes(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff notes")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff notes updated: " + booking.BookingNumber)

	response.WithJSON(writer, http.StatusOK, booking)
}

func (handler *Handler) transition(
	writer http.ResponseWriter,
	request *http.Request,
	name string,
	apply func(ctx context.Context, id int64, req dto.TransitionRequest) (dto.BookingResponse, error),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin."+name)
	defer scope.End()

	id, err := bookingHandler.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.TransitionRequest{}
	if request.Body != nil && request.ContentLength > 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(writer, err)

			return
		}
	}

	booking, err := apply(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking transitioned: " + booking.BookingNumber)

	response.WithJSON(writer, http.StatusOK, booking)
}
