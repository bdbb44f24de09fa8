package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/logger"
	gRepo "innkeeper/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error)
	GetOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]model.Booking, error)
	ExistOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) (bool, error)
	GetFutureActive(ctx context.Context, roomID string, from time.Time) ([]model.Booking, error)
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

const overlapCondition = `room_id = :room_id
	  AND status IN (:status_pending, :status_confirmed)
	  AND start_date <= :end_date
	  AND end_date >= :start_date`

func overlapArgs(roomID string, start, end time.Time) map[string]any {
	return map[string]any{
		"room_id":          roomID,
		"start_date":       start,
		"end_date":         end,
		"status_pending":   model.StatusPending,
		"status_confirmed": model.StatusConfirmed,
	}
}

// GetOverlapping returns active bookings for the room whose range intersects
// [start, end). PENDING and CONFIRMED both hold the room.
func (repo *repositoryImpl) GetOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetOverlapping")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", model.TableName, overlapCondition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBookings(ctx, repo.db.Read, query, overlapArgs(roomID, start, end))
}

// ExistOverlappingTx runs the overlap check inside the caller's transaction
// so the result stays valid until the insert commits.
func (repo *repositoryImpl) ExistOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistOverlappingTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s)", model.TableName, overlapCondition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, tx, query, overlapArgs(roomID, start, end))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping bookings (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	exist := false
	if rows.Next() {
		if err := rows.Scan(&exist); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return false, fmt.Errorf("failed to scan overlap result (%s): %w", model.EntityName, err)
		}
	}

	return exist, nil
}

// GetFutureActive returns the room's active bookings ending after the given
// date, ordered by start date. The next-available probe walks this list.
func (repo *repositoryImpl) GetFutureActive(ctx context.Context, roomID string, from time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetFutureActive")
	defer scope.End()

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE room_id = :room_id
		  AND status IN (:status_pending, :status_confirmed)
		  AND end_date > :from
		ORDER BY start_date ASC`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":          roomID,
		"from":             from,
		"status_pending":   model.StatusPending,
		"status_confirmed": model.StatusConfirmed,
	}

	return repo.selectBookings(ctx, repo.db.Read, query, args)
}

func (repo *repositoryImpl) selectBookings(ctx context.Context, ext sqlx.ExtContext, query string, args map[string]any) ([]model.Booking, error) {
	rows, err := sqlx.NamedQueryContext(ctx, ext, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to query bookings (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	bookings := []model.Booking{}

	for rows.Next() {
		var booking model.Booking
		if err := rows.StructScan(&booking); err != nil {
			logger.ErrorWithStack(err)

			return nil, fmt.Errorf("failed to scan booking (%s): %w", model.EntityName, err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to iterate bookings (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}
