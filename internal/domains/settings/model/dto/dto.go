package dto

import (
	"innkeeper/internal/domains/settings/model"
	gDto "innkeeper/shared/dto"
)

type UpdateSettingsRequest struct {
	HotelName    string `db:"hotel_name"     json:"hotel_name"     validate:"omitempty,max=100"`
	Address      string `db:"address"        json:"address"        validate:"omitempty,max=255"`
	Phone        string `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Email        string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Currency     string `db:"currency"       json:"currency"       validate:"omitempty,len=3"`
	CheckInTime  string `db:"check_in_time"  json:"check_in_time"  validate:"omitempty,datetime=15:04"`
	CheckOutTime string `db:"check_out_time" json:"check_out_time" validate:"omitempty,datetime=15:04"`
}

type SettingsResponse struct {
	HotelName    string `json:"hotel_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Currency     string `json:"currency"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.HotelName = model.HotelName
	r.Address = model.Address
	r.Phone = model.Phone
	r.Email = model.Email
	r.Currency = model.Currency
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.Metadata.FromModel(model.Metadata)
}
