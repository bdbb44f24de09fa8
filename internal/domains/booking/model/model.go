package model

import (
	"database/sql"
	"time"

	"innkeeper/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldStatus        = "status"
	FieldPaymentType   = "payment_type"
	FieldPaymentStatus = "payment_status"
	FieldBaseRate      = "base_rate"
	FieldFinalPrice    = "final_price"
	FieldDealID        = "deal_id"
	FieldRefundAmount  = "refund_amount"
)

// Booking lifecycle. Transitions are validated with CanTransitionTo; the
// stored status is never written to a value outside this set.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusRefunded = "REFUNDED"
)

const (
	PaymentTypeCash       = "CASH"
	PaymentTypeCreditCard = "CREDIT_CARD"
	PaymentTypeOnline     = "ONLINE"
)

type Booking struct {
	ID            string          `db:"id"`
	RoomID        string          `db:"room_id"`
	FirstName     string          `db:"first_name"`
	LastName      string          `db:"last_name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	Status        string          `db:"status"`
	PaymentType   string          `db:"payment_type"`
	PaymentStatus string          `db:"payment_status"`
	BaseRate      float64         `db:"base_rate"`
	FinalPrice    float64         `db:"final_price"`
	DealID        sql.NullString  `db:"deal_id"`
	RefundAmount  sql.NullFloat64 `db:"refund_amount"`
	model.Metadata
}

// ValidStatus reports whether the value is a known booking status.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the booking may move to the target status.
// CANCELLED and COMPLETED are terminal.
func (b *Booking) CanTransitionTo(target string) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// Active reports whether the booking still holds room inventory.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
