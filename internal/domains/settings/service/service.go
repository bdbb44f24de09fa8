package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/settings/model"
	"innkeeper/internal/domains/settings/model/dto"
	"innkeeper/internal/domains/settings/repository"
	"innkeeper/shared"
	"innkeeper/shared/cache"
	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
)

const cacheGetSettings = "settings:get"

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.repo.Get(ctx, shared.FilterByID(model.DefaultID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return res, failure.NotFound("settings not found") // nolint:wrapcheck
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSettingsRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(model.DefaultID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return fmt.Errorf("failed to update settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings from cache")
		}
	}()

	return nil
}
