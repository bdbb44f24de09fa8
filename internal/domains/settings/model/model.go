package model

import "innkeeper/shared/model"

const (
	TableName  = "hotel_settings"
	EntityName = "settings"

	FieldID           = "id"
	FieldHotelName    = "hotel_name"
	FieldAddress      = "address"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldCurrency     = "currency"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"

	// DefaultID is the primary key of the single settings row.
	DefaultID = "default"
)

type Settings struct {
	ID           string `db:"id"`
	HotelName    string `db:"hotel_name"`
	Address      string `db:"address"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	Currency     string `db:"currency"`
	CheckInTime  string `db:"check_in_time"`
	CheckOutTime string `db:"check_out_time"`
	model.Metadata
}
