package model

import (
	"database/sql"
	"time"

	"innkeeper/shared/model"
)

const (
	TableName  = "deals"
	EntityName = "deal"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDiscountPercent = "discount_percent"
	FieldRoomType        = "room_type"
	FieldStatus          = "status"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
)

const (
	StatusOngoing  = "ONGOING"
	StatusInactive = "INACTIVE"
	StatusEnded    = "ENDED"

	// RoomTypeAll marks a deal that applies to every room type.
	RoomTypeAll = "ALL"
)

type Deal struct {
	ID              string       `db:"id"`
	Name            string       `db:"name"`
	Description     string       `db:"description"`
	DiscountPercent float64      `db:"discount_percent"`
	RoomType        string       `db:"room_type"`
	Status          string       `db:"status"`
	StartDate       sql.NullTime `db:"start_date"`
	EndDate         sql.NullTime `db:"end_date"`
	model.Metadata
}

// AppliesTo reports whether the deal discounts the given room type today.
// Only ongoing deals within their date window apply.
func (d *Deal) AppliesTo(roomType string, today time.Time) bool {
	if d.Status != StatusOngoing {
		return false
	}

	if d.RoomType != RoomTypeAll && d.RoomType != roomType {
		return false
	}

	if d.StartDate.Valid && today.Before(d.StartDate.Time) {
		return false
	}

	if d.EndDate.Valid && today.After(d.EndDate.Time) {
		return false
	}

	return true
}
