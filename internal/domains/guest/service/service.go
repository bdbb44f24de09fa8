package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeeper/config"
	"innkeeper/infras/otel"
	bookingDto "innkeeper/internal/domains/booking/model/dto"
	bookingService "innkeeper/internal/domains/booking/service"
	"innkeeper/internal/domains/guest/model"
	"innkeeper/internal/domains/guest/model/dto"
	"innkeeper/internal/domains/guest/repository"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
)

type Guest interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateGuestStatusRequest, id string) (dto.UpdateGuestStatusResponse, error)
}

type serviceImpl struct {
	repo       repository.Guest
	bookingSvc bookingService.Booking
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Guest, bookingSvc bookingService.Booking, cfg *config.Config, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:       repo,
		bookingSvc: bookingSvc,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

// UpdateStatus drives the guest's booking through the state machine and
// reflects the outcome on the guest row. The booking service owns the
// transition rules and the refund computation; the guest mirror is updated
// in the same transaction there.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateGuestStatusRequest, id string) (res dto.UpdateGuestStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	transition := bookingDto.TransitionRequest{
		Status:            req.Status,
		PaymentStatus:     req.PaymentStatus,
		EarlyCheckoutDate: req.EarlyCheckoutDate,
	}

	outcome, err := s.bookingSvc.Transition(ctx, guest.BookingID, transition)
	if err != nil {
		log.Error().Err(err).Str("bookingID", guest.BookingID).Msg("failed to transition booking")

		return res, err // nolint:wrapcheck
	}

	updated, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload guest")

		return res, fmt.Errorf("failed to reload guest: %w", err)
	}

	res.Message = fmt.Sprintf("guest status updated to %s", outcome.Booking.Status)
	res.Guest.FromModel(updated)
	res.Refund = outcome.Refund

	return res, nil
}
