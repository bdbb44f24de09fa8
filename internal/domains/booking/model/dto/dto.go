package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/policy"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id"      validate:"required,uuid"`
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	Phone       string `json:"phone"        validate:"omitempty,max=20"`
	StartDate   string `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date"     validate:"required,datetime=2006-01-02"`
	PaymentType string `json:"payment_type" validate:"required,oneof=CASH CREDIT_CARD ONLINE"`
	DealID      string `json:"deal_id"      validate:"omitempty,uuid"`
}

// ParseDates returns the stay range. The format is validated upstream, so a
// parse failure here means a programming error rather than bad input.
func (c *CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err // nolint:wrapcheck
	}

	end, err = time.Parse(constant.DateOnlyFormat, c.EndDate)

	return start, end, err // nolint:wrapcheck
}

// ToModel builds the booking record. Pricing is computed by the caller since
// it depends on the room's rate and any applicable deal.
func (c *CreateBookingRequest) ToModel(user string, start, end time.Time, baseRate, finalPrice float64) model.Booking {
	dealID := sql.NullString{}
	if c.DealID != constant.Empty {
		dealID = sql.NullString{String: c.DealID, Valid: true}
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		StartDate:     start,
		EndDate:       end,
		Status:        model.StatusPending,
		PaymentType:   c.PaymentType,
		PaymentStatus: model.PaymentStatusPending,
		BaseRate:      baseRate,
		FinalPrice:    finalPrice,
		DealID:        dealID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID            string   `json:"id"`
	RoomID        string   `json:"room_id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Nights        int      `json:"nights"`
	Status        string   `json:"status"`
	PaymentType   string   `json:"payment_type"`
	PaymentStatus string   `json:"payment_status"`
	BaseRate      float64  `json:"base_rate"`
	FinalPrice    float64  `json:"final_price"`
	DealID        string   `json:"deal_id,omitempty"`
	RefundAmount  *float64 `json:"refund_amount,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = policy.Nights(model.StartDate, model.EndDate)
	r.Status = model.Status
	r.PaymentType = model.PaymentType
	r.PaymentStatus = model.PaymentStatus
	r.BaseRate = model.BaseRate
	r.FinalPrice = model.FinalPrice

	if model.DealID.Valid {
		r.DealID = model.DealID.String
	}

	if model.RefundAmount.Valid {
		amount := model.RefundAmount.Float64
		r.RefundAmount = &amount
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// TransitionRequest moves a booking through the state machine. PaymentStatus
// overrides the derived payment state when staff record a payment manually;
// EarlyCheckoutDate marks a stay completed before its end date so the refund
// prorates the unused nights.
type TransitionRequest struct {
	Status            string `json:"status"              validate:"required,oneof=CONFIRMED CANCELLED COMPLETED"`
	PaymentStatus     string `json:"payment_status"      validate:"omitempty,oneof=PENDING PAID REFUNDED"`
	EarlyCheckoutDate string `json:"early_checkout_date" validate:"omitempty,datetime=2006-01-02"`
}

// TransitionResponse returns the booking after a status change. Refund is
// present only when the transition produced one.
type TransitionResponse struct {
	Booking BookingResponse      `json:"booking"`
	Refund  *policy.RefundResult `json:"refund,omitempty"`
}
