package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/settings/model/dto"
	"innkeeper/internal/domains/settings/service"
	"innkeeper/shared/constant"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Patch("/", handler.UpdateSettings)
	})
}

// GetSettings retrieves the hotel settings.
// @Summary Get hotel settings
// @Description Retrieve the hotel's profile and check-in/check-out configuration.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Hotel settings"
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings updates the hotel settings.
// @Summary Update hotel settings
// @Description Update the hotel's profile and check-in/check-out configuration.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}
