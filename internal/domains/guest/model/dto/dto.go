package dto

import (
	"innkeeper/internal/domains/booking/policy"
	"innkeeper/internal/domains/guest/model"
	"innkeeper/shared"
	gDto "innkeeper/shared/dto"
)

type UpdateGuestStatusRequest struct {
	Status            string `json:"status"              validate:"required,oneof=CONFIRMED CANCELLED COMPLETED"`
	PaymentStatus     string `json:"payment_status"      validate:"omitempty,oneof=PENDING PAID REFUNDED"`
	EarlyCheckoutDate string `json:"early_checkout_date" validate:"omitempty,datetime=2006-01-02"`
}

type GuestResponse struct {
	ID            string   `json:"id"`
	BookingID     string   `json:"booking_id"`
	RoomID        string   `json:"room_id"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	FinalPrice    float64  `json:"final_price"`
	RefundAmount  *float64 `json:"refund_amount,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.FinalPrice = model.FinalPrice

	if model.RefundAmount.Valid {
		amount := model.RefundAmount.Float64
		r.RefundAmount = &amount
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

// UpdateGuestStatusResponse reports the outcome of a status change, carrying
// the refund decision when cancelling or checking out early.
type UpdateGuestStatusResponse struct {
	Message string               `json:"message"`
	Guest   GuestResponse        `json:"guest"`
	Refund  *policy.RefundResult `json:"refund,omitempty"`
}
