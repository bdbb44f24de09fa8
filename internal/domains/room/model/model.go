package model

import (
	"github.com/lib/pq"

	"innkeeper/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldFloor       = "floor"
	FieldType        = "type"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldCleanliness = "cleanliness"
	FieldFeatures    = "features"
	FieldActive      = "active"
)

// Cleanliness values reported by housekeeping.
const (
	CleanlinessClean   = "CLEAN"
	CleanlinessDirty   = "DIRTY"
	CleanlinessService = "OUT_OF_SERVICE"
)

type Room struct {
	ID          string         `db:"id"`
	RoomNumber  string         `db:"room_number"`
	Floor       string         `db:"floor"`
	Type        string         `db:"type"`
	Price       float64        `db:"price"`
	Capacity    int            `db:"capacity"`
	Description string         `db:"description"`
	Image       string         `db:"image"`
	Cleanliness string         `db:"cleanliness"`
	Features    pq.StringArray `db:"features"`
	Active      bool           `db:"active"`
	model.Metadata
}
