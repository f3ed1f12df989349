package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/internal/domains/booking/model"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/logger"
	gRepo "autocare/shared/repository"
)

// Name of the partial unique index guarding the slot invariant: at most one
// booking with a non-terminal status per (service center, date, time).
const constraintActiveSlot = "uq_bookings_active_slot"

// ErrTransitionConflict reports that the guarded status UPDATE matched no
// row: the booking moved to another status between read and write.
var ErrTransitionConflict = errors.New("booking status changed concurrently")

type Booking interface {
	Create(ctx context.Context, booking *model.Booking, entry model.StatusHistory) error
	ApplyTransition(ctx context.Context, bookingID int64, from model.Status, fields map[string]any, entry model.StatusHistory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateIfActive(ctx context.Context, bookingID int64, fields map[string]any) error
	GetHistory(ctx context.Context, bookingID int64) ([]model.StatusHistory, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const insertBookingQuery = `INSERT INTO bookings (
	booking_number, customer_id, vehicle_id, service_center_id, service_id,
	booking_date, booking_time, status, customer_notes, staff_notes,
	confirmed_by, cancellation_reason, created_at, created_by, modified_at, modified_by
) VALUES (
	:booking_number, :customer_id, :vehicle_id, :service_center_id, :service_id,
	:booking_date, :booking_time, :status, :customer_notes, :staff_notes,
	:confirmed_by, :cancellation_reason, :created_at, :created_by, :modified_at, :modified_by
) RETURNING id`

const insertHistoryQuery = `INSERT INTO booking_status_histories (
	booking_id, old_status, new_status, actor_id, notes, created_at
) VALUES (
	:booking_id, :old_status, :new_status, :actor_id, :notes, :created_at
)`

// Create persists the booking and its initial ledger entry in one
// transaction. A race on the slot that slips past the application-level
// check is rejected here by the partial unique index and surfaced as the
// same SlotConflict failure.
func (repo *repositoryImpl) Create(ctx context.Context, booking *model.Booking, entry model.StatusHistory) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking create transaction")
			}
		}
	}()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertBookingQuery)

	stmt, err := tx.PrepareNamedContext(ctx, insertBookingQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &booking.ID, booking); err != nil {
		if conflictErr := translateUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	entry.BookingID = booking.ID
	if err = repo.insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// ApplyTransition updates the booking row guarded by its expected current
// status and appends the ledger entry in the same transaction. A zero-row
// update means the status changed underneath the caller and nothing is
// written.
func (repo *repositoryImpl) ApplyTransition(ctx context.Context, bookingID int64, from model.Status, fields map[string]any, entry model.StatusHistory) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ApplyTransition")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transition transaction")
			}
		}
	}()

	updateField := make([]string, 0, len(fields))
	args := map[string]any{
		"transition_id":          bookingID,
		"transition_from_status": from,
	}

	for col, value := range fields {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
		args[col] = value
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = :transition_id AND status = :transition_from_status",
		model.TableName, strings.Join(updateField, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return ErrTransitionConflict
	}

	if err = repo.insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// UpdateIfActive applies narrative fields only while the booking still holds
// a non-terminal status, closing the race between the in-memory freeze check
// and the write. Zero affected rows means the booking went terminal (or was
// removed) underneath the caller.
func (repo *repositoryImpl) UpdateIfActive(ctx context.Context, bookingID int64, fields map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateIfActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	updateField := make([]string, 0, len(fields))
	args := map[string]any{"active_id": bookingID}

	for col, value := range fields {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
		args[col] = value
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = :active_id AND status IN (%s)",
		model.TableName, strings.Join(updateField, ", "), activeStatusList(),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return ErrTransitionConflict
	}

	return nil
}

// activeStatusList renders the non-terminal statuses as a SQL literal list;
// the values are closed enum constants.
func activeStatusList() string {
	statuses := model.ActiveStatuses()

	quoted := make([]string, len(statuses))
	for i, status := range statuses {
		quoted[i] = "'" + status + "'"
	}

	return strings.Join(quoted, ", ")
}

func (repo *repositoryImpl) insertHistory(ctx context.Context, tx *sqlx.Tx, entry model.StatusHistory) error {
	_, err := tx.NamedExecContext(ctx, insertHistoryQuery, entry)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.HistoryEntityName, err)
	}

	return nil
}

const getHistoryQuery = `SELECT id, booking_id, old_status, new_status, actor_id, notes, created_at
	FROM booking_status_histories WHERE booking_id = :booking_id ORDER BY created_at, id`

// GetHistory returns the transition ledger of a booking in chronological order.
func (repo *repositoryImpl) GetHistory(ctx context.Context, bookingID int64) (entries []model.StatusHistory, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, getHistoryQuery)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, getHistoryQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.HistoryEntityName, err)
	}
	defer stmt.Close()

	err = stmt.SelectContext(ctx, &entries, map[string]any{"booking_id": bookingID})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.HistoryEntityName, err)
	}

	return entries, nil
}

// translateUniqueViolation maps storage constraint rejections onto the
// domain error taxonomy. The active-slot index is the authoritative guard
// against concurrent slot allocation.
func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	if string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
		return nil
	}

	if pqErr.Constraint == constraintActiveSlot {
		return failure.SlotConflict("the requested slot is no longer available") //nolint:wrapcheck
	}

	return failure.Conflict(fmt.Sprintf("duplicate value for constraint %s", pqErr.Constraint)) //nolint:wrapcheck
}
