package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"innkeeper/config"
	"innkeeper/infras/kafka"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/policy"
	"innkeeper/internal/domains/booking/repository"
	dealModel "innkeeper/internal/domains/deal/model"
	dealRepo "innkeeper/internal/domains/deal/repository"
	guestModel "innkeeper/internal/domains/guest/model"
	guestRepo "innkeeper/internal/domains/guest/repository"
	rateModel "innkeeper/internal/domains/rate/model"
	rateRepo "innkeeper/internal/domains/rate/repository"
	roomModel "innkeeper/internal/domains/room/model"
	roomRepo "innkeeper/internal/domains/room/repository"
	"innkeeper/shared"
	"innkeeper/shared/cache"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// UnavailableError reports a date-range conflict. NextAvailable carries the
// first start date the room frees up for an equal-length stay, empty when
// the probe found nothing within its window.
type UnavailableError struct {
	NextAvailable string
}

func (e *UnavailableError) Error() string {
	return "room is not available for the requested dates"
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.TransitionResponse, error)
	Transition(ctx context.Context, id string, req dto.TransitionRequest) (dto.TransitionResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	rateRepo  rateRepo.Rate
	dealRepo  dealRepo.Deal
	guestRepo guestRepo.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	rateRepo rateRepo.Rate,
	dealRepo dealRepo.Deal,
	guestRepo guestRepo.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		rateRepo:  rateRepo,
		dealRepo:  dealRepo,
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if !end.After(start) {
		return res, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	baseRate, discount, err := s.resolvePricing(ctx, room, req.DealID)
	if err != nil {
		return res, err
	}

	nights := policy.Nights(start, end)
	finalPrice := policy.TotalPrice(baseRate, nights, discount)
	booking := req.ToModel(user, start, end, baseRate, finalPrice)

	// The overlap check and insert share one serializable transaction so two
	// concurrent requests cannot both see the room as free.
	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return res, fmt.Errorf("failed to begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil && tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	taken, err := s.repo.ExistOverlappingTx(ctx, tx, req.RoomID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if taken {
		next, probeErr := s.nextAvailable(ctx, req.RoomID, start, nights)
		if probeErr != nil {
			log.Error().Err(probeErr).Msg("failed to probe next available date")
		}

		return res, &UnavailableError{NextAvailable: next}
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.guestRepo.InsertTx(ctx, tx, guestFromBooking(booking, req.Phone, user)); err != nil {
		log.Error().Err(err).Msg("failed to create guest record")

		return res, fmt.Errorf("failed to create guest record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transaction")

		return res, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	res.FromModel(booking)

	s.publishEvent(ctx, model.EventBookingCreated, booking)
	s.invalidate(ctx, booking.ID)

	return res, nil
}

// resolvePricing returns the nightly rate and the discount percent for the
// stay. The published rate for the room type wins over the room's own price;
// an explicit deal must exist and apply to the room type.
func (s *serviceImpl) resolvePricing(ctx context.Context, room roomModel.Room, dealID string) (baseRate, discount float64, err error) {
	baseRate = room.Price

	rate, err := s.rateRepo.Get(ctx, rateFilterByRoomType(room.Type))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate")

		return 0, 0, fmt.Errorf("failed to get rate: %w", err)
	}

	if rate.ID != constant.Empty {
		baseRate = rate.Price
	}

	appliedDealID := dealID
	if appliedDealID == constant.Empty && rate.DealID.Valid {
		appliedDealID = rate.DealID.String
	}

	if appliedDealID == constant.Empty {
		return baseRate, 0, nil
	}

	deal, err := s.dealRepo.Get(ctx, shared.FilterByID(appliedDealID, dealModel.FieldID, dealModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get deal")

		return 0, 0, fmt.Errorf("failed to get deal: %w", err)
	}

	if deal.ID == constant.Empty {
		if dealID != constant.Empty {
			return 0, 0, failure.BadRequestFromString("deal does not exist") // nolint:wrapcheck
		}

		return baseRate, 0, nil
	}

	if !deal.AppliesTo(room.Type, timezone.Today()) {
		if dealID != constant.Empty {
			return 0, 0, failure.BadRequestFromString("deal does not apply to this room") // nolint:wrapcheck
		}

		return baseRate, 0, nil
	}

	return baseRate, deal.DiscountPercent, nil
}

// nextAvailable walks forward from the requested start date looking for the
// first gap that fits an equal-length stay. Best-effort: returns empty when
// nothing frees up within the probe window.
func (s *serviceImpl) nextAvailable(ctx context.Context, roomID string, start time.Time, nights int) (string, error) {
	bookings, err := s.repo.GetFutureActive(ctx, roomID, start)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get future bookings: %w", err)
	}

	probeDays := s.cfg.Hotel.NextAvailableProbeDays

	for offset := 1; offset <= probeDays; offset++ {
		candidate := start.AddDate(0, 0, offset)
		candidateEnd := candidate.AddDate(0, 0, nights)

		conflict := false

		for _, booking := range bookings {
			if !booking.StartDate.After(candidateEnd) && !booking.EndDate.Before(candidate) {
				conflict = true

				break
			}
		}

		if !conflict {
			return candidate.Format(constant.DateOnlyFormat), nil
		}
	}

	return constant.Empty, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel moves the booking to CANCELLED and computes the refund from the
// room type's cancellation policy.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.TransitionResponse, error) {
	return s.Transition(ctx, id, dto.TransitionRequest{Status: model.StatusCancelled})
}

// Transition drives the booking state machine. Cancellation computes a
// refund from the room type's policy; completing a stay before its end date
// prorates the unused nights. Repeating a transition the booking already
// made returns the stored outcome instead of failing, so retries are safe.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionRequest) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	target := req.Status

	if !model.ValidStatus(target) || target == model.StatusPending {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid target status %q", target)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == target {
		res.Booking.FromModel(booking)
		res.Refund = s.replayedRefund(ctx, booking)

		return res, nil
	}

	if !booking.CanTransitionTo(target) {
		return res, failure.Conflict(fmt.Sprintf("booking in status %s cannot move to %s", booking.Status, target)) // nolint:wrapcheck
	}

	var refund *policy.RefundResult

	today := timezone.Today()

	switch target {
	case model.StatusCancelled:
		pol := s.policyForRoom(ctx, booking.RoomID)
		result := policy.CancellationRefund(pol, booking.StartDate, today, booking.FinalPrice)
		refund = &result
		booking.RefundAmount = sql.NullFloat64{Float64: result.RefundAmount, Valid: true}

		if result.Refundable && booking.PaymentStatus == model.PaymentStatusPaid {
			booking.PaymentStatus = model.PaymentStatusRefunded
		}
	case model.StatusCompleted:
		if booking.PaymentStatus == model.PaymentStatusPending {
			booking.PaymentStatus = model.PaymentStatusPaid
		}

		checkout := today
		if req.EarlyCheckoutDate != constant.Empty {
			checkout, err = time.Parse(constant.DateOnlyFormat, req.EarlyCheckoutDate)
			if err != nil {
				return res, failure.BadRequestFromString("invalid early checkout date, expected YYYY-MM-DD") // nolint:wrapcheck
			}
		}

		if checkout.Before(booking.EndDate) {
			pol := s.policyForRoom(ctx, booking.RoomID)
			result := policy.EarlyCheckoutRefund(pol, booking.StartDate, booking.EndDate, checkout, today, booking.FinalPrice)
			refund = &result
			booking.RefundAmount = sql.NullFloat64{Float64: result.RefundAmount, Valid: true}

			if result.Refundable {
				booking.PaymentStatus = model.PaymentStatusRefunded
			}
		}
	}

	if req.PaymentStatus != constant.Empty {
		booking.PaymentStatus = req.PaymentStatus
	}

	booking.Status = target

	if err = s.applyStatusChange(ctx, booking, user); err != nil {
		return res, err
	}

	res.Booking.FromModel(booking)
	res.Refund = refund

	s.publishEvent(ctx, eventForStatus(target), booking)
	s.invalidate(ctx, booking.ID)

	return res, nil
}

// Delete removes the booking and its guest projection in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin delete transaction")

		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() {
		if err != nil && tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Error().Err(rbErr).Msg("failed to roll back delete transaction")
			}
		}
	}()

	if err = s.guestRepo.DeleteTx(ctx, tx, shared.FilterByID(booking.ID, guestModel.FieldBookingID, guestModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest record")

		return fmt.Errorf("failed to delete guest record: %w", err)
	}

	if err = s.repo.DeleteTx(ctx, tx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit delete transaction")

		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	s.publishEvent(ctx, model.EventBookingDeleted, booking)
	s.invalidate(ctx, booking.ID)

	return nil
}

func eventForStatus(status string) string {
	switch status {
	case model.StatusConfirmed:
		return model.EventBookingConfirmed
	case model.StatusCompleted:
		return model.EventBookingCompleted
	default:
		return model.EventBookingCancelled
	}
}

// policyForRoom resolves the cancellation policy through the room's rate.
// Missing room or rate records fall back to non-refundable.
func (s *serviceImpl) policyForRoom(ctx context.Context, roomID string) policy.Policy {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil || room.ID == constant.Empty {
		log.Warn().Err(err).Str("roomID", roomID).Msg("room lookup failed, defaulting to non-refundable")

		return policy.DefaultPolicy
	}

	rate, err := s.rateRepo.Get(ctx, rateFilterByRoomType(room.Type))
	if err != nil || rate.ID == constant.Empty {
		log.Warn().Err(err).Str("roomType", room.Type).Msg("rate lookup failed, defaulting to non-refundable")

		return policy.DefaultPolicy
	}

	return policy.Parse(rate.Policy)
}

// applyStatusChange persists the booking's new status and mirrors it onto
// the guest row inside one transaction.
func (s *serviceImpl) applyStatusChange(ctx context.Context, booking model.Booking, user string) (err error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin status transaction")

		return fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer func() {
		if err != nil && tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Error().Err(rbErr).Msg("failed to roll back status transaction")
			}
		}
	}()

	bookingFields := map[string]any{
		model.FieldStatus:        booking.Status,
		model.FieldPaymentStatus: booking.PaymentStatus,
	}

	if booking.RefundAmount.Valid {
		bookingFields[model.FieldRefundAmount] = booking.RefundAmount.Float64
	}

	err = s.repo.UpdateTx(ctx, tx, shared.WithModifiedMetadata(bookingFields, user), shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	guestFields := map[string]any{
		guestModel.FieldStatus:        booking.Status,
		guestModel.FieldPaymentStatus: booking.PaymentStatus,
	}

	if booking.RefundAmount.Valid {
		guestFields[guestModel.FieldRefundAmount] = booking.RefundAmount.Float64
	}

	err = s.guestRepo.UpdateTx(ctx, tx, shared.WithModifiedMetadata(guestFields, user), shared.FilterByID(booking.ID, guestModel.FieldBookingID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update guest status")

		return fmt.Errorf("failed to update guest status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit status transaction")

		return fmt.Errorf("failed to commit status transaction: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   booking.ID,
			Value: model.NewBookingEvent(event, booking, timezone.Now()),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// replayedRefund rebuilds the breakdown for a transition the booking already
// made. The amount is the persisted one; the policy label is resolved from
// the room's rate so the replay matches the original decision.
func (s *serviceImpl) replayedRefund(ctx context.Context, booking model.Booking) *policy.RefundResult {
	if !booking.RefundAmount.Valid {
		return nil
	}

	return &policy.RefundResult{
		Refundable:   booking.RefundAmount.Float64 > 0,
		RefundAmount: booking.RefundAmount.Float64,
		Policy:       string(s.policyForRoom(ctx, booking.RoomID)),
		Reason:       "Transition already applied; returning the recorded refund.",
	}
}

func rateFilterByRoomType(roomType string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    rateModel.FieldRoomType,
				Operator: gDto.FilterOperatorEq,
				Value:    roomType,
				Table:    rateModel.TableName,
			},
		},
	}
}

func guestFromBooking(booking model.Booking, phone, user string) guestModel.Guest {
	return guestModel.Guest{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		RoomID:        booking.RoomID,
		FullName:      booking.FirstName + " " + booking.LastName,
		Email:         booking.Email,
		Phone:         phone,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		FinalPrice:    booking.FinalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
