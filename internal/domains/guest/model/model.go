package model

import (
	"database/sql"

	"innkeeper/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldRoomID        = "room_id"
	FieldFullName      = "full_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldFinalPrice    = "final_price"
	FieldRefundAmount  = "refund_amount"
)

// Guest is the registry row mirroring a booking. Status always tracks the
// booking's status; both are written in the same transaction.
type Guest struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	RoomID        string          `db:"room_id"`
	FullName      string          `db:"full_name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	FinalPrice    float64         `db:"final_price"`
	RefundAmount  sql.NullFloat64 `db:"refund_amount"`
	model.Metadata
}
