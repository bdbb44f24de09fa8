package deal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/deal/model"
	"innkeeper/internal/domains/deal/model/dto"
	"innkeeper/internal/domains/deal/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"
)

type Handler struct {
	service service.Deal
	otel    otel.Otel
}

func New(service service.Deal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/deals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDeal)
		routerGroup.Get("/", handler.GetDeals)
		routerGroup.Get("/{id}", handler.GetDealByID)
		routerGroup.Patch("/{id}", handler.UpdateDeal)
		routerGroup.Delete("/{id}", handler.DeleteDeal)
	})
}

// CreateDeal handles the creation of a new promotional deal.
// @Summary Create a new deal
// @Description Create a promotional discount for a room type or all rooms.
// @Tags Deal
// @Accept json
// @Produce json
// @Param request body dto.CreateDealRequest true "Create Deal Request"
// @Success 201 {object} response.Message "Deal created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals [post]
// @Security BearerAuth
func (handler *Handler) CreateDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDeal")
	defer scope.End()

	req := dto.CreateDealRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create deal")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Deal created successfully")
}

// GetDeals retrieves all deals based on query parameters.
// @Summary Get all deals
// @Description Retrieve all deals with optional filtering and pagination.
// @Tags Deal
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (ONGOING, INACTIVE, ENDED)"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetDealsResponse] "List of deals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals [get]
// @Security BearerAuth
func (handler *Handler) GetDeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	roomType := r.URL.Query().Get(model.FieldRoomType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	deals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Deals retrieved successfully")

	response.WithJSON(w, http.StatusOK, deals)
}

// GetDealByID retrieves a deal by its ID.
// @Summary Get a deal by ID
// @Description Retrieve a deal by its unique identifier.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Data[dto.DealResponse] "Deal details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDealByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDealByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	deal, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deal by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Deal retrieved successfully")

	response.WithJSON(w, http.StatusOK, deal)
}

// UpdateDeal updates an existing deal by its ID.
// @Summary Update a deal by ID
// @Description Update the details of an existing deal.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body dto.UpdateDealRequest true "Update Deal Request"
// @Success 200 {object} response.Message "Deal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDealRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update deal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Deal updated successfully")
}

// DeleteDeal deletes a deal by its ID.
// @Summary Delete a deal by ID
// @Description Delete a deal using its unique identifier.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Message "Deal deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete deal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Deal deleted successfully")
}
