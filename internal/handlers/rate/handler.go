package rate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/rate/model"
	"innkeeper/internal/domains/rate/model/dto"
	"innkeeper/internal/domains/rate/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"
)

type Handler struct {
	service service.Rate
	otel    otel.Otel
}

func New(service service.Rate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRate)
		routerGroup.Get("/", handler.GetRates)
		routerGroup.Patch("/{id}", handler.UpdateRate)
		routerGroup.Delete("/{id}", handler.DeleteRate)
	})
}

// CreateRate handles the creation of a new room-type rate.
// @Summary Create a new rate
// @Description Create a rate for a room type with its cancellation policy and optional deal.
// @Tags Rate
// @Accept json
// @Produce json
// @Param request body dto.CreateRateRequest true "Create Rate Request"
// @Success 201 {object} response.Message "Rate created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates [post]
// @Security BearerAuth
func (handler *Handler) CreateRate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRate")
	defer scope.End()

	req := dto.CreateRateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Rate created successfully")
}

// GetRates retrieves all rates with live availability and deal pricing.
// @Summary Get all rates
// @Description Retrieve all rates with current room availability and deal-adjusted prices.
// @Tags Rate
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type query string false "Filter by room type"
// @Param policy query string false "Filter by cancellation policy (NON_REFUNDABLE, FLEXIBLE, STRICT)"
// @Success 200 {object} response.Data[dto.GetRatesResponse] "List of rates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates [get]
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomType := r.URL.Query().Get(model.FieldRoomType)
	policy := r.URL.Query().Get(model.FieldPolicy)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if policy != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPolicy,
			Operator: gDto.FilterOperatorEq,
			Value:    policy,
			Table:    model.TableName,
		})
	}

	rates, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rates retrieved successfully")

	response.WithJSON(w, http.StatusOK, rates)
}

// UpdateRate updates an existing rate by its ID.
// @Summary Update a rate by ID
// @Description Update the details of an existing rate.
// @Tags Rate
// @Accept json
// @Produce json
// @Param id path string true "Rate ID"
// @Param request body dto.UpdateRateRequest true "Update Rate Request"
// @Success 200 {object} response.Message "Rate updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate updated successfully")
}

// DeleteRate deletes a rate by its ID.
// @Summary Delete a rate by ID
// @Description Delete a rate using its unique identifier.
// @Tags Rate
// @Accept json
// @Produce json
// @Param id path string true "Rate ID"
// @Success 200 {object} response.Message "Rate deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate deleted successfully")
}
