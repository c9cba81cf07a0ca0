package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

const (
	uniqueViolationCode = "23505"

	// Имена ограничений из миграций - по ним различаются причины конфликта вставки
	confirmedSlotConstraint = "bookings_confirmed_slot_key"
	paymentSlotConstraint   = "bookings_payment_slot_key"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Конфликты уникальных ограничений БД - авторитетный сигнал:
// - частичный индекс по (time_slot_id) WHERE status='confirmed' -> ErrSlotAlreadyBooked
// - ключ (payment_ref, time_slot_id) -> ErrDuplicatePayment
// Проверка доступности, сделанная до вставки, гонку не закрывает - закрывает БД
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"time_slot_id",
			"court_id",
			"user_id",
			"status",
			"total_price",
			"payment_ref",
			"payment_order_ref",
		).
		Values(
			booking.TimeSlotID,
			booking.CourtID,
			booking.UserID,
			booking.Status,
			booking.TotalPrice,
			booking.PaymentRef,
			booking.PaymentOrderRef,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			switch pqErr.Constraint {
			case confirmedSlotConstraint:
				return nil, ErrSlotAlreadyBooked
			case paymentSlotConstraint:
				return nil, ErrDuplicatePayment
			}
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с временем слота
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookingsWithSlot().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingWithSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByPaymentRef получает бронирования, созданные по платежу
// Используется для идемпотентной обработки повторных payment callback
func (r *Repository) GetByPaymentRef(ctx context.Context, paymentRef string) ([]*domain.BookingWithSlot, error) {
	selectBuilder := selectBookingsWithSlot().
		Where(squirrel.Eq{"b.payment_ref": paymentRef}).
		OrderBy("ts.slot_date ASC, ts.start_time ASC")

	return r.queryBookingsWithSlot(ctx, selectBuilder, "GetByPaymentRef")
}

// GetConfirmedBySlotIDs получает подтверждённые бронирования указанных слотов
// Внутри транзакции строки блокируются FOR UPDATE - используется booking writer'ом
// для повторной проверки доступности перед вставкой
func (r *Repository) GetConfirmedBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	if len(slotIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"time_slot_id": slotIDs}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		OrderBy("time_slot_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetConfirmedBySlotIDs - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlotIDs - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// HasConfirmedBySlotID проверяет наличие подтверждённого бронирования слота
// Используется как guard при редактировании и удалении слотов
func (r *Repository) HasConfirmedBySlotID(ctx context.Context, slotID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"time_slot_id": slotID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasConfirmedBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasConfirmedBySlotID - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByUserID получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	selectBuilder := selectBookingsWithSlot().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("ts.slot_date DESC, ts.start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *status})
	}

	return r.queryBookingsWithSlot(ctx, selectBuilder, "GetByUserID")
}

// GetByFacilityWithFilter получает бронирования площадки с фильтрацией
// по корту, дате слота и статусу
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.BookingWithSlot, error) {
	selectBuilder := selectBookingsWithSlot().
		Join("courts c ON c.id = b.court_id").
		Where(squirrel.Eq{"c.facility_id": filter.FacilityID})

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.court_id": *filter.CourtID})
	}

	// Для конкретной даты сортируем по времени начала, иначе - сначала новые
	if filter.Date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"ts.slot_date": *filter.Date}).
			OrderBy("ts.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("ts.slot_date DESC, ts.start_time DESC")
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	return r.queryBookingsWithSlot(ctx, selectBuilder, "GetByFacilityWithFilter")
}

// Cancel отменяет подтверждённое бронирование с указанием причины
// Условие status='confirmed' в WHERE делает отмену атомарным update-if-status-matches
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// queryBookingsWithSlot выполняет select и сканирует результат
func (r *Repository) queryBookingsWithSlot(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.BookingWithSlot, 0)
	for rows.Next() {
		booking, err := scanBookingWithSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func bookingColumns() []string {
	return []string{
		"id",
		"time_slot_id",
		"court_id",
		"user_id",
		"status",
		"total_price",
		"payment_ref",
		"payment_order_ref",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	}
}

func selectBookingsWithSlot() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.time_slot_id",
		"b.court_id",
		"b.user_id",
		"b.status",
		"b.total_price",
		"b.payment_ref",
		"b.payment_order_ref",
		"b.cancellation_reason",
		"b.cancelled_at",
		"b.created_at",
		"b.updated_at",
		"ts.slot_date",
		"ts.start_time",
		"ts.end_time",
	).
		From("bookings b").
		Join("time_slots ts ON ts.id = b.time_slot_id")
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TimeSlotID,
		&booking.CourtID,
		&booking.UserID,
		&booking.Status,
		&booking.TotalPrice,
		&booking.PaymentRef,
		&booking.PaymentOrderRef,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookingWithSlot(row rowScanner) (*domain.BookingWithSlot, error) {
	var booking domain.BookingWithSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TimeSlotID,
		&booking.CourtID,
		&booking.UserID,
		&booking.Status,
		&booking.TotalPrice,
		&booking.PaymentRef,
		&booking.PaymentOrderRef,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
		&booking.SlotDate,
		&booking.StartTime,
		&booking.EndTime,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
