package dto

import (
	"database/sql"

	"github.com/google/uuid"

	"innkeeper/internal/domains/rate/model"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

type CreateRateRequest struct {
	RoomType string  `json:"room_type" validate:"required,max=50"`
	Price    float64 `json:"price"     validate:"required,gt=0"`
	Policy   string  `json:"policy"    validate:"required,oneof=NON_REFUNDABLE FLEXIBLE STRICT"`
	DealID   string  `json:"deal_id"   validate:"omitempty,uuid"`
}

func (c *CreateRateRequest) ToModel(user string) model.Rate {
	dealID := sql.NullString{}
	if c.DealID != constant.Empty {
		dealID = sql.NullString{String: c.DealID, Valid: true}
	}

	return model.Rate{
		ID:       uuid.NewString(),
		RoomType: c.RoomType,
		Price:    c.Price,
		Policy:   c.Policy,
		DealID:   dealID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRateRequest struct {
	RoomType string   `db:"room_type" json:"room_type" validate:"omitempty,max=50"`
	Price    *float64 `db:"price"     json:"price"     validate:"omitempty,gt=0"`
	Policy   string   `db:"policy"    json:"policy"    validate:"omitempty,oneof=NON_REFUNDABLE FLEXIBLE STRICT"`
	DealID   string   `db:"deal_id"   json:"deal_id"   validate:"omitempty,uuid"`
}

// RateResponse carries the stored rate plus two derived fields: the deal
// price after the active discount, and how many rooms of the type are free
// today.
type RateResponse struct {
	ID             string  `json:"id"`
	RoomType       string  `json:"room_type"`
	Price          float64 `json:"price"`
	Policy         string  `json:"policy"`
	DealID         string  `json:"deal_id,omitempty"`
	DealName       string  `json:"deal_name,omitempty"`
	DealPrice      float64 `json:"deal_price"`
	AvailableRooms int     `json:"available_rooms"`
	gDto.Metadata
}

func (r *RateResponse) FromModel(model model.Rate) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Policy = model.Policy
	r.DealPrice = model.Price

	if model.DealID.Valid {
		r.DealID = model.DealID.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRatesResponse struct {
	Rates     []RateResponse `json:"rates"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRatesResponse) FromModels(models []model.Rate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rates = make([]RateResponse, len(models))
	for i, mod := range models {
		r.Rates[i].FromModel(mod)
	}
}
