package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"autocare/config"
	"autocare/infras/otel"
	"autocare/internal/domains/booking/model"
	"autocare/internal/domains/booking/model/dto"
	"autocare/internal/domains/booking/repository"
	catalogModel "autocare/internal/domains/catalog/model"
	catalogRepository "autocare/internal/domains/catalog/repository"
	notification "autocare/internal/domains/notification/service"
	vehicleModel "autocare/internal/domains/vehicle/model"
	vehicleRepository "autocare/internal/domains/vehicle/repository"
	"autocare/shared"
	"autocare/shared/cache"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/timezone"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBooking  = "booking:gets"
	cacheCountBooking   = "booking:count"
	cacheBookingHistory = "booking:history"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListBookingsQuery) (dto.GetBookingsResponse, error)
	Confirm(ctx context.Context, id int64, req dto.TransitionRequest) (dto.BookingResponse, error)
	Start(ctx context.Context, id int64, req dto.TransitionRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id int64, req dto.TransitionRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	GetHistory(ctx context.Context, id int64) ([]dto.StatusHistoryResponse, error)
	UpdateStaffNotes(ctx context.Context, id int64, req dto.UpdateStaffNotesRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	vehicleRepo   vehicleRepository.Vehicle
	centerRepo    catalogRepository.ServiceCenter
	serviceRepo   catalogRepository.Service
	centerSvcRepo catalogRepository.CenterService
	dispatcher    notification.Dispatcher
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	vehicleRepo vehicleRepository.Vehicle,
	centerRepo catalogRepository.ServiceCenter,
	serviceRepo catalogRepository.Service,
	centerSvcRepo catalogRepository.CenterService,
	dispatcher notification.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		vehicleRepo:   vehicleRepo,
		centerRepo:    centerRepo,
		serviceRepo:   serviceRepo,
		centerSvcRepo: centerSvcRepo,
		dispatcher:    dispatcher,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create runs the ordered creation checks and persists the booking together
// with its initial ledger entry. The checks run in a fixed order so a
// request failing several of them always reports the same failure.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingDate, bookingTime, err := req.ParseSchedule()
	if err != nil {
		return res, err
	}

	if err = s.checkVehicle(ctx, req.VehicleID, customerID); err != nil {
		return res, err
	}

	if err = s.checkCenter(ctx, req.ServiceCenterID); err != nil {
		return res, err
	}

	svc, link, err := s.checkService(ctx, req.ServiceCenterID, req.ServiceID)
	if err != nil {
		return res, err
	}

	if err = s.checkSlotFree(ctx, req.ServiceCenterID, bookingDate, bookingTime); err != nil {
		return res, err
	}

	if err = s.checkScheduleWindow(bookingDate, bookingTime); err != nil {
		return res, err
	}

	booking, entry := model.NewBooking(customerID, req.VehicleID, req.ServiceCenterID, req.ServiceID, bookingDate, bookingTime, req.CustomerNotes)
	booking.ServiceName = svc.Name
	booking.BasePrice = svc.BasePrice
	booking.DurationMinutes = svc.DurationMinutes
	booking.OverridePrice = link.OverridePrice

	if err = s.repo.Create(ctx, &booking, entry); err != nil {
		return res, err
	}

	s.dispatcher.Enqueue(model.NewCreatedEvent(&booking))
	s.invalidateListCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if err = s.authorizeView(ctx, res.CustomerID); err != nil {
			return dto.BookingResponse{}, err
		}

		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.authorizeView(ctx, booking.CustomerID); err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GetAll lists bookings with optional status and date filters. Customers
// only ever see their own records; staff see every customer's.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListBookingsQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = query.Validate(); err != nil {
		return res, err
	}

	params.SortBy = dto.SortColumn(params.SortBy)
	filter := s.listFilter(ctx, query)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// Confirm moves a Pending booking to Confirmed. Staff only.
func (s *serviceImpl) Confirm(ctx context.Context, id int64, req dto.TransitionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.applyStaffTransition(ctx, id, req.Notes, (*model.Booking).Confirm)
}

// Start moves a Confirmed booking to InProgress. Staff only.
func (s *serviceImpl) Start(ctx context.Context, id int64, req dto.TransitionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.applyStaffTransition(ctx, id, req.Notes, (*model.Booking).StartProgress)
}

// Complete moves an InProgress booking to Completed. Staff only.
func (s *serviceImpl) Complete(ctx context.Context, id int64, req dto.TransitionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.applyStaffTransition(ctx, id, req.Notes, (*model.Booking).Complete)
}

// Cancel moves a booking to Cancelled. The owning customer may cancel while
// the booking is Pending or Confirmed; staff may cancel anything that is
// not already terminal.
func (s *serviceImpl) Cancel(ctx context.Context, id int64, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !constant.IsStaff(role) {
		if booking.CustomerID != userID {
			return res, failure.ResourceRestrictedError // nolint:wrapcheck
		}

		if !booking.CanBeCancelledByCustomer() {
			return res, failure.BusinessRuleViolation("booking can no longer be cancelled by the customer") // nolint:wrapcheck
		}
	}

	from := booking.Status

	entry, event, err := booking.Cancel(userID, req.Reason)
	if err != nil {
		return res, translateTransitionError(err)
	}

	if err = s.persistTransition(ctx, &booking, from, entry, event); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// GetHistory returns the append-only status ledger of a booking.
func (s *serviceImpl) GetHistory(ctx context.Context, id int64) (res []dto.StatusHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.authorizeView(ctx, booking.CustomerID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheBookingHistory, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking history")

		return res, nil
	}

	entries, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res = dto.FromHistoryModels(entries)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking history to cache")
		}
	}()

	return res, nil
}

// UpdateStaffNotes replaces the staff narrative on a non-terminal booking.
func (s *serviceImpl) UpdateStaffNotes(ctx context.Context, id int64, req dto.UpdateStaffNotesRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStaffNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !constant.IsStaff(role) {
		return res, failure.ForbiddenError // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = booking.SetStaffNotes(userID, req.StaffNotes); err != nil {
		return res, failure.BusinessRuleViolation(err.Error()) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStaffNotes: booking.StaffNotes,
		"modified_at":         booking.ModifiedAt,
		"modified_by":         booking.ModifiedBy,
	}

	// Guarded on non-terminal status in storage: the booking may have gone
	// terminal between the read above and this write.
	if err = s.repo.UpdateIfActive(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrTransitionConflict) {
			return res, failure.BusinessRuleViolation(model.ErrBookingFrozen.Error()) // nolint:wrapcheck
		}

		return res, err
	}

	s.invalidateBookingCaches(ctx, id)

	res.FromModel(booking)

	return res, nil
}

// applyStaffTransition runs the shared staff-only transition pipeline:
// authorize, load, mutate through the state machine, persist guarded by the
// expected old status, then dispatch and invalidate.
func (s *serviceImpl) applyStaffTransition(
	ctx context.Context,
	id int64,
	notes string,
	transition func(*model.Booking, string, string) (model.StatusHistory, model.Event, error),
) (res dto.BookingResponse, err error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !constant.IsStaff(role) {
		return res, failure.ForbiddenError // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	from := booking.Status

	entry, event, err := transition(&booking, userID, notes)
	if err != nil {
		return res, translateTransitionError(err)
	}

	if err = s.persistTransition(ctx, &booking, from, entry, event); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) persistTransition(ctx context.Context, booking *model.Booking, from model.Status, entry model.StatusHistory, event model.Event) error {
	err := s.repo.ApplyTransition(ctx, booking.ID, from, transitionFields(booking), entry)
	if err != nil {
		if errors.Is(err, repository.ErrTransitionConflict) {
			return failure.BusinessRuleViolation("booking status changed concurrently, please retry") // nolint:wrapcheck
		}

		return err
	}

	s.dispatcher.Enqueue(event)
	s.invalidateBookingCaches(ctx, booking.ID)

	return nil
}

// transitionFields maps the mutated aggregate onto the columns the guarded
// update may touch for its current status.
func transitionFields(booking *model.Booking) map[string]any {
	fields := map[string]any{
		model.FieldStatus: booking.Status,
		"modified_at":     booking.ModifiedAt,
		"modified_by":     booking.ModifiedBy,
	}

	switch booking.Status {
	case model.StatusConfirmed:
		fields[model.FieldConfirmedAt] = booking.ConfirmedAt
		fields[model.FieldConfirmedBy] = booking.ConfirmedBy
	case model.StatusCompleted:
		fields[model.FieldCompletedAt] = booking.CompletedAt
	case model.StatusCancelled:
		fields[model.FieldCancelledAt] = booking.CancelledAt
		fields[model.FieldCancellationReason] = booking.CancellationReason
	}

	return fields
}

func translateTransitionError(err error) error {
	var invalidTransition *model.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		return failure.BusinessRuleViolation(invalidTransition.Error()) // nolint:wrapcheck
	}

	if errors.Is(err, model.ErrEmptyCancellationReason) {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	return err
}

func (s *serviceImpl) getBooking(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// authorizeView rejects customers reaching for someone else's booking.
func (s *serviceImpl) authorizeView(ctx context.Context, ownerID string) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if constant.IsStaff(role) || ownerID == userID {
		return nil
	}

	return failure.ResourceRestrictedError // nolint:wrapcheck
}

// listFilter builds the where clause for the list endpoints. Customers are
// always pinned to their own customer id.
func (s *serviceImpl) listFilter(ctx context.Context, query dto.ListBookingsQuery) gDto.FilterGroup {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	filters := []any{}

	if !constant.IsStaff(role) {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Table:    model.TableName,
			Value:    userID,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if query.Status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Table:    model.TableName,
			Value:    query.Status,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if query.FromDate != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "from_date",
			Field:    model.FieldBookingDate,
			Table:    model.TableName,
			Value:    query.FromDate,
			Operator: gDto.FilterOperatorGreaterEq,
		})
	}

	if query.ToDate != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "to_date",
			Field:    model.FieldBookingDate,
			Table:    model.TableName,
			Value:    query.ToDate,
			Operator: gDto.FilterOperatorLessEq,
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) checkVehicle(ctx context.Context, vehicleID int64, customerID string) error {
	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == 0 {
		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	if !vehicle.IsOwnedBy(customerID) {
		return failure.Forbidden("vehicle does not belong to the customer") // nolint:wrapcheck
	}

	if !vehicle.IsActive {
		return failure.BusinessRuleViolation("vehicle is inactive") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkCenter(ctx context.Context, centerID int64) error {
	center, err := s.centerRepo.Get(ctx, shared.FilterByID(centerID, catalogModel.CenterFieldID, catalogModel.CenterTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service center")

		return fmt.Errorf("failed to get service center: %w", err)
	}

	if center.ID == 0 {
		return failure.NotFound("service center not found") // nolint:wrapcheck
	}

	if !center.IsActive {
		return failure.BusinessRuleViolation("service center is not active") // nolint:wrapcheck
	}

	return nil
}

// checkService verifies the catalog entry and its link to the chosen center,
// returning both so the creation flow can project name, duration and price
// onto the new booking.
func (s *serviceImpl) checkService(ctx context.Context, centerID, serviceID int64) (catalogModel.Service, catalogModel.CenterService, error) {
	svc, err := s.serviceRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.ServiceFieldID, catalogModel.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return svc, catalogModel.CenterService{}, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == 0 {
		return svc, catalogModel.CenterService{}, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if !svc.IsAvailable {
		return svc, catalogModel.CenterService{}, failure.BusinessRuleViolation("service is not available") // nolint:wrapcheck
	}

	linkFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    catalogModel.CenterServiceFieldCenterID,
				Table:    catalogModel.CenterServiceTableName,
				Value:    centerID,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    catalogModel.CenterServiceFieldServiceID,
				Table:    catalogModel.CenterServiceTableName,
				Value:    serviceID,
				Operator: gDto.FilterOperatorEq,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	link, err := s.centerSvcRepo.Get(ctx, linkFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get center service link")

		return svc, link, fmt.Errorf("failed to get center service link: %w", err)
	}

	if link.ID == 0 || !link.IsActive {
		return svc, link, failure.BusinessRuleViolation("service is not offered at this service center") // nolint:wrapcheck
	}

	return svc, link, nil
}

// checkSlotFree is the optimistic half of the slot guard; the partial unique
// index in storage closes the race it cannot see.
func (s *serviceImpl) checkSlotFree(ctx context.Context, centerID int64, bookingDate time.Time, bookingTime string) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceCenterID,
				Table:    model.TableName,
				Value:    centerID,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Table:    model.TableName,
				Value:    bookingDate,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldBookingTime,
				Table:    model.TableName,
				Value:    bookingTime,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    model.ActiveStatuses(),
				Operator: gDto.FilterOperatorIn,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return failure.SlotConflict("the requested slot is already booked") // nolint:wrapcheck
	}

	return nil
}

// checkScheduleWindow enforces the booking horizon: on a slot boundary, not
// in the past, and no further ahead than the configured number of months.
func (s *serviceImpl) checkScheduleWindow(bookingDate time.Time, bookingTime string) error {
	clock, err := time.Parse(constant.TimeOnlyFormat, bookingTime)
	if err != nil {
		return failure.BadRequestFromString("bookingTime must be formatted as HH:mm:ss") // nolint:wrapcheck
	}

	if clock.Second() != 0 || clock.Minute()%s.cfg.Booking.SlotMinutes != 0 {
		return failure.BusinessRuleViolation(fmt.Sprintf("bookingTime must fall on a %d-minute boundary", s.cfg.Booking.SlotMinutes)) // nolint:wrapcheck
	}

	now := timezone.Now()
	slotAt := time.Date(
		bookingDate.Year(), bookingDate.Month(), bookingDate.Day(),
		clock.Hour(), clock.Minute(), 0, 0, timezone.GetLocation(),
	)

	if !slotAt.After(now) {
		return failure.BusinessRuleViolation("booking slot must be in the future") // nolint:wrapcheck
	}

	if slotAt.After(now.AddDate(0, s.cfg.Booking.MaxAdvanceMonths, 0)) {
		return failure.BusinessRuleViolation(fmt.Sprintf("booking slot cannot be more than %d months ahead", s.cfg.Booking.MaxAdvanceMonths)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10)))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheBookingHistory, strconv.FormatInt(id, 10)))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
