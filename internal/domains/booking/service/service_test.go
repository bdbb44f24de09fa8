package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	kafkaMocks "innkeeper/infras/kafka/mocks"
	"innkeeper/infras/otel/mocks"
	bookingMocks "innkeeper/internal/domains/booking/mocks"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/service"
	dealMocks "innkeeper/internal/domains/deal/mocks"
	dealModel "innkeeper/internal/domains/deal/model"
	guestMocks "innkeeper/internal/domains/guest/mocks"
	rateMocks "innkeeper/internal/domains/rate/mocks"
	rateModel "innkeeper/internal/domains/rate/model"
	roomMocks "innkeeper/internal/domains/room/mocks"
	roomModel "innkeeper/internal/domains/room/model"
	cacheMocks "innkeeper/shared/cache/mocks"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

type bookingMockSet struct {
	repo  *bookingMocks.MockBooking
	room  *roomMocks.MockRoom
	rate  *rateMocks.MockRate
	deal  *dealMocks.MockDeal
	guest *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:  bookingMocks.NewMockBooking(ctrl),
		room:  roomMocks.NewMockRoom(ctrl),
		rate:  rateMocks.NewMockRate(ctrl),
		deal:  dealMocks.NewMockDeal(ctrl),
		guest: guestMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.NextAvailableProbeDays = 90
	cfg.Kafka.BookingTopic = "hotel.bookings"

	svc := service.New(m.repo, m.room, m.rate, m.deal, m.guest, cfg, m.cache, mocks.NewOtel(), m.kafka)

	return svc, m
}

func activeRoom(id string) roomModel.Room {
	return roomModel.Room{
		ID:     id,
		Type:   "Double",
		Price:  100,
		Active: true,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	roomID := "0d3c9df0-33dd-4b7a-a925-2cf0a4f1fc5b"

	validReq := dto.CreateBookingRequest{
		RoomID:      roomID,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		StartDate:   "2030-01-10",
		EndDate:     "2030-01-12",
		PaymentType: model.PaymentTypeCash,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "invalid date format",
			req: func() dto.CreateBookingRequest {
				r := validReq
				r.StartDate = "2030-13-99"

				return r
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "end date not after start date",
			req: func() dto.CreateBookingRequest {
				r := validReq
				r.EndDate = r.StartDate

				return r
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "room lookup error",
			req:  validReq,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room not open for booking",
			req:  validReq,
			setupMock: func() {
				room := activeRoom(roomID)
				room.Active = false

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "explicit deal does not exist",
			req: func() dto.CreateBookingRequest {
				r := validReq
				r.DealID = "4f7d8a7e-6f1f-4d35-9a51-0cc8f3a7b9e1"

				return r
			}(),
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(roomID), nil)

				m.rate.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rateModel.Rate{}, nil)

				m.deal.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(dealModel.Deal{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Create_DatesTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	roomID := "0d3c9df0-33dd-4b7a-a925-2cf0a4f1fc5b"

	req := dto.CreateBookingRequest{
		RoomID:      roomID,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		StartDate:   "2030-01-10",
		EndDate:     "2030-01-12",
		PaymentType: model.PaymentTypeCash,
	}

	existing := model.Booking{
		ID:        "existing-booking",
		RoomID:    roomID,
		StartDate: time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:    model.StatusConfirmed,
	}

	m.room.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeRoom(roomID), nil)

	m.rate.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(rateModel.Rate{}, nil)

	m.repo.EXPECT().
		BeginSerializableTx(gomock.Any()).
		Return(nil, nil)

	m.repo.EXPECT().
		ExistOverlappingTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	m.repo.EXPECT().
		GetFutureActive(gomock.Any(), roomID, gomock.Any()).
		Return([]model.Booking{existing}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Create(ctx, req)

	assert.Error(t, err)

	var unavailable *service.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	// A two-night stay first fits once the existing booking has checked out
	// and the room has turned over.
	assert.Equal(t, "2030-01-13", unavailable.NextAvailable)
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	booking := model.Booking{
		ID:            "test-id",
		RoomID:        "room-id",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		StartDate:     time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusPending,
		PaymentType:   model.PaymentTypeCash,
		PaymentStatus: model.PaymentStatusPending,
		BaseRate:      100,
		FinalPrice:    200,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "test-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "test-id", Status: model.StatusPending}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestBookingService_Transition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	cancelled := model.Booking{
		ID:            "test-id",
		RoomID:        "room-id",
		StartDate:     time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusCancelled,
		PaymentStatus: model.PaymentStatusRefunded,
		FinalPrice:    200,
		RefundAmount:  sql.NullFloat64{Float64: 160, Valid: true},
	}

	completed := cancelled
	completed.Status = model.StatusCompleted
	completed.PaymentStatus = model.PaymentStatusPaid
	completed.RefundAmount = sql.NullFloat64{}

	tests := []struct {
		name       string
		id         string
		target     string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantRefund float64
	}{
		{
			name:      "unknown target status",
			id:        "test-id",
			target:    "CHECKED_IN",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "pending is not a valid target",
			id:        "test-id",
			target:    model.StatusPending,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:   "booking not found",
			id:     "nonexistent-id",
			target: model.StatusCancelled,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "repeated cancellation returns the stored refund",
			id:     "test-id",
			target: model.StatusCancelled,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("room-id"), nil)

				m.rate.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rateModel.Rate{ID: "rate-id", RoomType: "Double", Policy: "FLEXIBLE"}, nil)
			},
			wantErr:    false,
			wantRefund: 160,
		},
		{
			name:   "completed booking cannot be confirmed",
			id:     "test-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Transition(ctx, tt.id, dto.TransitionRequest{Status: tt.target})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, result.Refund) {
					assert.Equal(t, tt.wantRefund, result.Refund.RefundAmount)
					assert.True(t, result.Refund.Refundable)
					assert.Equal(t, "FLEXIBLE", result.Refund.Policy)
				}
			}
		})
	}
}
