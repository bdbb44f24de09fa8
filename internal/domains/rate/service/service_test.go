package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	dealMocks "innkeeper/internal/domains/deal/mocks"
	dealModel "innkeeper/internal/domains/deal/model"
	rateMocks "innkeeper/internal/domains/rate/mocks"
	"innkeeper/internal/domains/rate/model"
	"innkeeper/internal/domains/rate/model/dto"
	"innkeeper/internal/domains/rate/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
)

func TestRateService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)

	svc := service.New(mockRepo, mockDealRepo, &config.Config{}, mocks.NewOtel())

	validReq := dto.CreateRateRequest{
		RoomType: "Double",
		Price:    150,
		Policy:   "FLEXIBLE",
	}

	tests := []struct {
		name      string
		req       dto.CreateRateRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rate for room type already exists",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "deal does not exist",
			req: func() dto.CreateRateRequest {
				r := validReq
				r.DealID = "4f7d8a7e-6f1f-4d35-9a51-0cc8f3a7b9e1"

				return r
			}(),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockDealRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

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

func TestRateService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)

	svc := service.New(mockRepo, mockDealRepo, &config.Config{}, mocks.NewOtel())

	dealID := "4f7d8a7e-6f1f-4d35-9a51-0cc8f3a7b9e1"

	rates := []model.Rate{
		{
			ID:       "rate-1",
			RoomType: "Double",
			Price:    200,
			Policy:   "FLEXIBLE",
			DealID:   sql.NullString{String: dealID, Valid: true},
		},
	}

	ongoingDeal := dealModel.Deal{
		ID:              dealID,
		Name:            "Summer Special",
		DiscountPercent: 25,
		RoomType:        dealModel.RoomTypeAll,
		Status:          dealModel.StatusOngoing,
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantDealName  string
		wantDealPrice float64
		wantAvailable int
	}{
		{
			name: "ongoing deal discounts the rate",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rates, nil)

				mockRepo.EXPECT().
					CountAvailableRooms(gomock.Any(), "Double", gomock.Any()).
					Return(3, nil)

				mockDealRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ongoingDeal, nil)
			},
			wantErr:       false,
			wantDealName:  "Summer Special",
			wantDealPrice: 150,
			wantAvailable: 3,
		},
		{
			name: "inactive deal leaves the rate untouched",
			setupMock: func() {
				inactive := ongoingDeal
				inactive.Status = dealModel.StatusInactive

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rates, nil)

				mockRepo.EXPECT().
					CountAvailableRooms(gomock.Any(), "Double", gomock.Any()).
					Return(3, nil)

				mockDealRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:       false,
			wantDealName:  "",
			wantDealPrice: 200,
			wantAvailable: 3,
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
			name: "available rooms error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rates, nil)

				mockRepo.EXPECT().
					CountAvailableRooms(gomock.Any(), "Double", gomock.Any()).
					Return(0, errors.New("database error"))
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

				return
			}

			assert.NoError(t, err)
			assert.Len(t, result.Rates, 1)
			assert.Equal(t, tt.wantDealName, result.Rates[0].DealName)
			assert.Equal(t, tt.wantDealPrice, result.Rates[0].DealPrice)
			assert.Equal(t, tt.wantAvailable, result.Rates[0].AvailableRooms)
		})
	}
}

func TestRateService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)

	svc := service.New(mockRepo, mockDealRepo, &config.Config{}, mocks.NewOtel())

	price := 175.0

	tests := []struct {
		name      string
		req       dto.UpdateRateRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateRateRequest{Price: &price},
			id:   "rate-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateRateRequest{},
			id:        "rate-1",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "rate not found",
			req:  dto.UpdateRateRequest{Price: &price},
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)

	svc := service.New(mockRepo, mockDealRepo, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "rate-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rate not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			id:   "rate-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
