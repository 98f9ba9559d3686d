package model

import "guesthouse/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldRoomNo = "room_no"
	FieldType   = "type"
)

// Room is a physical, numbered room belonging to one category type.
type Room struct {
	ID     string `db:"id"`
	RoomNo int    `db:"room_no"`
	Type   string `db:"type"`
	model.Metadata
}
