package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	bookingDto "innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/policy"
	bookingSvcMocks "innkeeper/internal/domains/booking/service/mocks"
	guestMocks "innkeeper/internal/domains/guest/mocks"
	"innkeeper/internal/domains/guest/model"
	"innkeeper/internal/domains/guest/model/dto"
	"innkeeper/internal/domains/guest/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
)

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingSvc := bookingSvcMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookingSvc, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Guest{
						{ID: "guest-1", BookingID: "booking-1", FullName: "Ada Lovelace"},
						{ID: "guest-2", BookingID: "booking-2", FullName: "Alan Turing"},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
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
				assert.Len(t, result.Guests, tt.wantTotal)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingSvc := bookingSvcMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookingSvc, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{ID: "guest-1", FullName: "Ada Lovelace"}, nil)
			},
			wantErr: false,
		},
		{
			name: "guest not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("database error"))
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
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
			}
		})
	}
}

func TestGuestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingSvc := bookingSvcMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookingSvc, &config.Config{}, mocks.NewOtel())

	guest := model.Guest{
		ID:        "guest-1",
		BookingID: "booking-1",
		FullName:  "Ada Lovelace",
		Status:    "CONFIRMED",
	}

	cancelledOutcome := bookingDto.TransitionResponse{
		Refund: &policy.RefundResult{
			Refundable:   true,
			RefundAmount: 160,
			Policy:       "FLEXIBLE",
		},
	}
	cancelledOutcome.Booking.ID = "booking-1"
	cancelledOutcome.Booking.Status = "CANCELLED"

	tests := []struct {
		name        string
		id          string
		req         dto.UpdateGuestStatusRequest
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful cancellation",
			id:   "guest-1",
			req:  dto.UpdateGuestStatusRequest{Status: "CANCELLED"},
			setupMock: func() {
				cancelled := guest
				cancelled.Status = "CANCELLED"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guest, nil)

				mockBookingSvc.EXPECT().
					Transition(gomock.Any(), "booking-1", bookingDto.TransitionRequest{Status: "CANCELLED"}).
					Return(cancelledOutcome, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:     false,
			wantMessage: "guest status updated to CANCELLED",
		},
		{
			name: "guest not found",
			id:   "nonexistent-id",
			req:  dto.UpdateGuestStatusRequest{Status: "CANCELLED"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "transition rejected",
			id:   "guest-1",
			req:  dto.UpdateGuestStatusRequest{Status: "CONFIRMED"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guest, nil)

				mockBookingSvc.EXPECT().
					Transition(gomock.Any(), "booking-1", bookingDto.TransitionRequest{Status: "CONFIRMED"}).
					Return(bookingDto.TransitionResponse{}, failure.Conflict("booking in status CONFIRMED cannot move to CONFIRMED"))
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.UpdateStatus(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMessage, result.Message)
				assert.Equal(t, "CANCELLED", result.Guest.Status)
				if assert.NotNil(t, result.Refund) {
					assert.Equal(t, float64(160), result.Refund.RefundAmount)
				}
			}
		})
	}
}
