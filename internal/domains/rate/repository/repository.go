package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	bookingModel "innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/rate/model"
	roomModel "innkeeper/internal/domains/room/model"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/logger"
	gRepo "innkeeper/shared/repository"
)

type Rate interface {
	Insert(ctx context.Context, model model.Rate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Rate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountAvailableRooms(ctx context.Context, roomType string, date time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountAvailableRooms counts active rooms of the given type with no booking
// holding the night starting on date. PENDING and CONFIRMED bookings both
// hold inventory; the end date is exclusive.
func (repo *repositoryImpl) CountAvailableRooms(ctx context.Context, roomType string, date time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rate.CountAvailableRooms")
	defer scope.End()

	query := fmt.Sprintf(`SELECT COUNT(r.id) FROM %s r
		WHERE r.type = :room_type
		  AND r.active = TRUE
		  AND r.id NOT IN (
			SELECT b.room_id FROM %s b
			WHERE b.status IN (:status_pending, :status_confirmed)
			  AND b.start_date <= :date
			  AND b.end_date > :date
		  )`, roomModel.TableName, bookingModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_type":        roomType,
		"date":             date,
		"status_pending":   bookingModel.StatusPending,
		"status_confirmed": bookingModel.StatusConfirmed,
	}

	rows, err := repo.db.Read.NamedQueryContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count available rooms (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	count := 0
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return 0, fmt.Errorf("failed to scan available room count (%s): %w", model.EntityName, err)
		}
	}

	return count, nil
}
