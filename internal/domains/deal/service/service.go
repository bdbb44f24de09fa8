package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/deal/model"
	"innkeeper/internal/domains/deal/model/dto"
	"innkeeper/internal/domains/deal/repository"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
)

type Deal interface {
	Create(ctx context.Context, req dto.CreateDealRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDealsResponse, error)
	Get(ctx context.Context, id string) (dto.DealResponse, error)
	Update(ctx context.Context, req dto.UpdateDealRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Deal
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Deal, cfg *config.Config, otel otel.Otel) Deal {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDealRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create deal")

		return fmt.Errorf("failed to create deal: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count deals")

		return res, fmt.Errorf("failed to count deals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get deals")

		return res, fmt.Errorf("failed to get deals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	deal, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get deal")

		return res, fmt.Errorf("failed to get deal: %w", err)
	}

	if deal.ID == constant.Empty {
		return res, failure.NotFound("deal not found") // nolint:wrapcheck
	}

	res.FromModel(deal)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDealRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDealRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if deal exists")

		return fmt.Errorf("failed to check if deal exists: %w", err)
	}

	if !exist {
		log.Error().Msg("deal not found")

		return failure.NotFound("deal not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update deal")

		return fmt.Errorf("failed to update deal: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if deal exists")

		return fmt.Errorf("failed to check if deal exists: %w", err)
	}

	if !exist {
		log.Error().Msg("deal not found")

		return failure.NotFound("deal not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete deal")

		return fmt.Errorf("failed to delete deal: %w", err)
	}

	return nil
}
