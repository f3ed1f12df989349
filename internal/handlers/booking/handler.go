package booking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"autocare/infras/otel"
	"autocare/internal/domains/booking/model/dto"
	"autocare/internal/domains/booking/service"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/validator"
	"autocare/transport/http/response"
)

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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/history", handler.GetBookingHistory)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// CreateBooking books a service slot for one of the customer's vehicles.
// @Summary Create a new booking
// @Description Book a maintenance service slot at a service center.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} response.Envelope "Created booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created: " + booking.BookingNumber)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the customer's bookings.
// @Summary List bookings
// @Description List the caller's bookings with optional status and date filters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param fromDate query string false "Filter from date (YYYY-MM-DD)"
// @Param toDate query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 400 {object} response.Envelope
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
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

// GetBookingByID retrieves one of the customer's bookings.
// @Summary Get a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope "Booking details"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := ParseID(request)
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

// GetBookingHistory lists the status ledger of one of the customer's bookings.
// @Summary Get booking status history
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope "Status history entries"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/bookings/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	id, err := ParseID(request)
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

// CancelBooking cancels one of the customer's bookings with a reason.
// @Summary Cancel a booking
// @Description Cancel a Pending or Confirmed booking. A reason of 5 to 500 characters is required.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} response.Envelope "Cancelled booking"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := ParseID(request)
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

// ParseID reads the booking id path parameter.
func ParseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be an integer") //nolint:wrapcheck
	}

	return id, nil
}
