package model

import (
	"time"

	"guesthouse/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID       = "id"
	FieldRoomNo   = "room_no"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
)

// Reservation holds one room for the half-open night range
// [CheckIn, CheckOut). The hold is what the payment step later confirms.
type Reservation struct {
	ID       string    `db:"id"`
	RoomNo   int       `db:"room_no"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	model.Metadata
}
