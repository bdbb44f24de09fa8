package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"innkeeper/internal/domains/deal/model"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

type CreateDealRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Description     string  `json:"description"      validate:"omitempty"`
	DiscountPercent float64 `json:"discount_percent" validate:"required,gt=0,lte=100"`
	RoomType        string  `json:"room_type"        validate:"omitempty,max=50"`
	Status          string  `json:"status"           validate:"omitempty,oneof=ONGOING INACTIVE ENDED"`
	StartDate       string  `json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
}

func (c *CreateDealRequest) ToModel(user string) model.Deal {
	status := model.StatusOngoing
	if c.Status != constant.Empty {
		status = c.Status
	}

	roomType := model.RoomTypeAll
	if c.RoomType != constant.Empty {
		roomType = c.RoomType
	}

	return model.Deal{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DiscountPercent: c.DiscountPercent,
		RoomType:        roomType,
		Status:          status,
		StartDate:       parseNullDate(c.StartDate),
		EndDate:         parseNullDate(c.EndDate),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func parseNullDate(value string) sql.NullTime {
	if value == constant.Empty {
		return sql.NullTime{}
	}

	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: parsed, Valid: true}
}

type UpdateDealRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty"`
	DiscountPercent *float64 `db:"discount_percent" json:"discount_percent" validate:"omitempty,gt=0,lte=100"`
	RoomType        string   `db:"room_type"        json:"room_type"        validate:"omitempty,max=50"`
	Status          string   `db:"status"           json:"status"           validate:"omitempty,oneof=ONGOING INACTIVE ENDED"`
	EndDate         string   `json:"end_date"       validate:"omitempty,datetime=2006-01-02"`
}

type DealResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discount_percent"`
	RoomType        string  `json:"room_type"`
	Status          string  `json:"status"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	gDto.Metadata
}

func (r *DealResponse) FromModel(model model.Deal) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DiscountPercent = model.DiscountPercent
	r.RoomType = model.RoomType
	r.Status = model.Status

	if model.StartDate.Valid {
		r.StartDate = model.StartDate.Time.Format(constant.DateOnlyFormat)
	}

	if model.EndDate.Valid {
		r.EndDate = model.EndDate.Time.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetDealsResponse struct {
	Deals     []DealResponse `json:"deals"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetDealsResponse) FromModels(models []model.Deal, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Deals = make([]DealResponse, len(models))
	for i, mod := range models {
		r.Deals[i].FromModel(mod)
	}
}
