package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/booking/policy"
	dealModel "innkeeper/internal/domains/deal/model"
	dealRepo "innkeeper/internal/domains/deal/repository"
	"innkeeper/internal/domains/rate/model"
	"innkeeper/internal/domains/rate/model/dto"
	"innkeeper/internal/domains/rate/repository"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	"innkeeper/shared/timezone"
)

type Rate interface {
	Create(ctx context.Context, req dto.CreateRateRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRatesResponse, error)
	Update(ctx context.Context, req dto.UpdateRateRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Rate
	dealRepo dealRepo.Deal
	cfg      *config.Config
	otel     otel.Otel
}

// New builds the rate service. Rate listings are always computed live since
// room availability changes with every booking.
func New(repo repository.Rate, dealRepo dealRepo.Deal, cfg *config.Config, otel otel.Otel) Rate {
	return &serviceImpl{
		repo:     repo,
		dealRepo: dealRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomType,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomType,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate exists")

		return fmt.Errorf("failed to check if rate exists: %w", err)
	}

	if exist {
		return failure.Conflict("a rate for this room type already exists") // nolint:wrapcheck
	}

	if req.DealID != constant.Empty {
		dealExist, err := s.dealRepo.Exist(ctx, shared.FilterByID(req.DealID, dealModel.FieldID, dealModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if deal exists")

			return fmt.Errorf("failed to check if deal exists: %w", err)
		}

		if !dealExist {
			return failure.BadRequestFromString("deal does not exist") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create rate")

		return fmt.Errorf("failed to create rate: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rates")

		return res, fmt.Errorf("failed to count rates: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	today := timezone.Today()

	for i, rate := range models {
		available, err := s.repo.CountAvailableRooms(ctx, rate.RoomType, today)
		if err != nil {
			log.Error().Err(err).Str("roomType", rate.RoomType).Msg("failed to count available rooms")

			return res, fmt.Errorf("failed to count available rooms: %w", err)
		}

		res.Rates[i].AvailableRooms = available

		if !rate.DealID.Valid {
			continue
		}

		deal, err := s.dealRepo.Get(ctx, shared.FilterByID(rate.DealID.String, dealModel.FieldID, dealModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("dealID", rate.DealID.String).Msg("failed to get deal for rate")

			return res, fmt.Errorf("failed to get deal for rate: %w", err)
		}

		if deal.AppliesTo(rate.RoomType, today) {
			res.Rates[i].DealName = deal.Name
			res.Rates[i].DealPrice = policy.DiscountedRate(rate.Price, deal.DiscountPercent)
		}
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRateRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate exists")

		return fmt.Errorf("failed to check if rate exists: %w", err)
	}

	if !exist {
		log.Error().Msg("rate not found")

		return failure.NotFound("rate not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rate")

		return fmt.Errorf("failed to update rate: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate exists")

		return fmt.Errorf("failed to check if rate exists: %w", err)
	}

	if !exist {
		log.Error().Msg("rate not found")

		return failure.NotFound("rate not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete rate")

		return fmt.Errorf("failed to delete rate: %w", err)
	}

	return nil
}
