package model

import (
	"database/sql"

	"innkeeper/shared/model"
)

const (
	TableName  = "rates"
	EntityName = "rate"

	FieldID       = "id"
	FieldRoomType = "room_type"
	FieldPrice    = "price"
	FieldPolicy   = "policy"
	FieldDealID   = "deal_id"
)

// Rate is the published nightly price for a room type, carrying the
// cancellation policy and an optional deal reference.
type Rate struct {
	ID       string         `db:"id"`
	RoomType string         `db:"room_type"`
	Price    float64        `db:"price"`
	Policy   string         `db:"policy"`
	DealID   sql.NullString `db:"deal_id"`
	model.Metadata
}
