package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// reservationColumns колонки выборки бронирования с денормализованным именем
// комнаты. Имя комнаты никогда не хранится в reservations - оно вычисляется
// join-ом при каждом чтении.
var reservationColumns = []string{
	"r.id",
	"r.room_id",
	"r.reserved_at",
	"r.requested_by",
	"r.created_at",
	"rm.name AS room_name",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Нарушение уникального constraint reservations_room_slot_key транслируется
// в ErrDateAlreadyBooked: даже если проверка доступности слота прошла до
// вставки, гонка между проверкой и записью закрывается на уровне БД.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"reserved_at",
			"requested_by",
		).
		Values(
			res.RoomID,
			res.ReservedAt,
			res.RequestedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDateAlreadyBooked
	}
	if isForeignKeyViolation(err) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("rooms rm ON rm.id = r.room_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает все бронирования, отсортированные по дате брони (по возрастанию),
// при равных датах - по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Reservation, error) {
	return r.selectReservations(ctx, r.baseSelect())
}

// GetByFilter получает бронирования за период [DateFrom, DateTo] включительно,
// опционально суженные до одной комнаты
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	selectBuilder := r.baseSelect().
		Where(squirrel.GtOrEq{"r.reserved_at": filter.DateFrom}).
		Where(squirrel.LtOrEq{"r.reserved_at": filter.DateTo})

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.room_id": *filter.RoomID})
	}

	return r.selectReservations(ctx, selectBuilder)
}

// GetByRoomID получает все бронирования комнаты.
// Используется delete-guard-ом справочника комнат.
func (r *Repository) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	return r.selectReservations(ctx, r.baseSelect().Where(squirrel.Eq{"r.room_id": roomID}))
}

// ExistsAtSlot проверяет, занят ли слот (roomID, at).
// excludeID исключает из проверки собственную запись бронирования - правка
// бронирования на его же слот не должна считаться конфликтом.
// Внутри транзакции конфликтующая строка блокируется (FOR UPDATE).
func (r *Repository) ExistsAtSlot(ctx context.Context, roomID int64, at time.Time, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"reserved_at": at}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// Update обновляет комнату, дату и инициатора бронирования.
// Нарушения constraint-ов транслируются так же, как в Create.
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("room_id", res.RoomID).
		Set("reserved_at", res.ReservedAt).
		Set("requested_by", res.RequestedBy).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrDateAlreadyBooked
	}
	if isForeignKeyViolation(err) {
		return ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// baseSelect базовая выборка бронирований с join-ом имени комнаты
// и детерминированной сортировкой для отображения
func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("rooms rm ON rm.id = r.room_id").
		OrderBy("r.reserved_at ASC", "r.id ASC")
}

// selectReservations выполняет выборку и сканирует результат в слайс бронирований
func (r *Repository) selectReservations(ctx context.Context, selectBuilder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: selectReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.ReservedAt,
		&res.RequestedBy,
		&createdAt,
		&res.RoomName,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// isForeignKeyViolation проверяет, что ошибка - нарушение foreign key constraint
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation
}
