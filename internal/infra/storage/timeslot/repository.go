package timeslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального ограничения
const uniqueViolationCode = "23505"

// Repository репозиторий для работы с временными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот
// При нарушении уникальности (court_id, slot_date, start_time) возвращает ErrDuplicateSlot
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns(
			"court_id",
			"slot_date",
			"start_time",
			"end_time",
			"price_override",
			"maintenance_blocked",
			"maintenance_reason",
		).
		Values(
			slot.CourtID,
			slot.SlotDate,
			slot.StartTime,
			slot.EndTime,
			slot.PriceOverride,
			slot.MaintenanceBlocked,
			slot.MaintenanceReason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// CreateBatchSkipDuplicates создает слоты пакетом, пропуская дубликаты
// по ключу (court_id, slot_date, start_time) через ON CONFLICT DO NOTHING.
// Возвращает количество реально созданных строк
func (r *Repository) CreateBatchSkipDuplicates(ctx context.Context, slots []*domain.TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"court_id",
			"slot_date",
			"start_time",
			"end_time",
			"price_override",
			"maintenance_blocked",
			"maintenance_reason",
		)

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.CourtID,
			slot.SlotDate,
			slot.StartTime,
			slot.EndTime,
			slot.PriceOverride,
			slot.MaintenanceBlocked,
			slot.MaintenanceReason,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (court_id, slot_date, start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatchSkipDuplicates - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatchSkipDuplicates - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatchSkipDuplicates - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlots().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByCourtAndDate получает все слоты корта на дату, отсортированные по времени начала
// Внутри транзакции выборка блокируется FOR UPDATE - используется при создании бронирования
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.TimeSlot, error) {
	selectBuilder := selectSlots().
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.querySlots(ctx, selectBuilder, "GetByCourtAndDate")
}

// GetByCourtAndRange получает слоты корта за период [StartDate, EndDate] включительно
// Используется пакетной генерацией для фильтрации пересекающихся кандидатов
func (r *Repository) GetByCourtAndRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error) {
	selectBuilder := selectSlots().
		Where(squirrel.Eq{"court_id": filter.CourtID}).
		Where(squirrel.GtOrEq{"slot_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"slot_date": filter.EndDate}).
		OrderBy("slot_date ASC, start_time ASC")

	return r.querySlots(ctx, selectBuilder, "GetByCourtAndRange")
}

// GetByCourtAndStart получает слот по точному времени начала
// Возвращает ErrSlotNotFound, если слот ещё не материализован генерацией
func (r *Repository) GetByCourtAndStart(ctx context.Context, courtID int64, date time.Time, start types.TimeString) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlots().
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Eq{"start_time": start}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndStart - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndStart - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetOverlapping получает слоты корта на дату, пересекающиеся с интервалом [start, end)
// excludeID исключает редактируемый слот из проверки (0 - не исключать)
func (r *Repository) GetOverlapping(
	ctx context.Context,
	courtID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID int64,
) ([]*domain.TimeSlot, error) {
	// Полуоткрытые интервалы: пересечение есть, когда start < existing.end AND existing.start < end
	selectBuilder := selectSlots().
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if excludeID != 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	return r.querySlots(ctx, selectBuilder, "GetOverlapping")
}

// Update обновляет изменяемые поля слота
func (r *Repository) Update(ctx context.Context, slot *domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("start_time", slot.StartTime).
		Set("end_time", slot.EndTime).
		Set("price_override", slot.PriceOverride).
		Set("maintenance_blocked", slot.MaintenanceBlocked).
		Set("maintenance_reason", slot.MaintenanceReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slot.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// UpdateMaintenance обновляет только maintenance-поля слота
// Единственная мутация, разрешённая после появления подтверждённого бронирования
func (r *Repository) UpdateMaintenance(ctx context.Context, id int64, blocked bool, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("maintenance_blocked", blocked).
		Set("maintenance_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateMaintenance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateMaintenance - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateMaintenance - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete удаляет слот
// Проверка отсутствия подтверждённых бронирований выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// querySlots выполняет select и сканирует результат в слайс слотов
func (r *Repository) querySlots(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.TimeSlot, error) {
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

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func selectSlots() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"court_id",
		"slot_date",
		"start_time",
		"end_time",
		"price_override",
		"maintenance_blocked",
		"maintenance_reason",
		"created_at",
		"updated_at",
	).From("time_slots")
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.CourtID,
		&slot.SlotDate,
		&slot.StartTime,
		&slot.EndTime,
		&slot.PriceOverride,
		&slot.MaintenanceBlocked,
		&slot.MaintenanceReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
