package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/deal/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"
)

type Deal interface {
	Insert(ctx context.Context, model model.Deal) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Deal, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Deal, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Deal]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Deal {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Deal](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
