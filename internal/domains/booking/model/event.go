package model

import "time"

// Booking lifecycle events published to the booking topic.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventBookingDeleted   = "booking.deleted"
)

type BookingEvent struct {
	Event        string    `json:"event"`
	BookingID    string    `json:"booking_id"`
	RoomID       string    `json:"room_id"`
	Status       string    `json:"status"`
	Email        string    `json:"email"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	FinalPrice   float64   `json:"final_price"`
	RefundAmount *float64  `json:"refund_amount,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewBookingEvent snapshots the booking for publication.
func NewBookingEvent(event string, booking Booking, occurredAt time.Time) BookingEvent {
	payload := BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Status:     booking.Status,
		Email:      booking.Email,
		StartDate:  booking.StartDate.Format("2006-01-02"),
		EndDate:    booking.EndDate.Format("2006-01-02"),
		FinalPrice: booking.FinalPrice,
		OccurredAt: occurredAt,
	}

	if booking.RefundAmount.Valid {
		amount := booking.RefundAmount.Float64
		payload.RefundAmount = &amount
	}

	return payload
}
