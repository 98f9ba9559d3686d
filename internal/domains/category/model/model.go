package model

import "guesthouse/shared/model"

const (
	TableName  = "room_categories"
	EntityName = "room_category"

	FieldID           = "id"
	FieldType         = "type"
	FieldBookingPrice = "booking_price"
)

// RoomCategory is the billable room tier. Type is the business key the booking
// flow resolves ("Deluxe", "Standard"), BookingPrice is the nightly rate.
type RoomCategory struct {
	ID           string  `db:"id"`
	Type         string  `db:"type"`
	BookingPrice float64 `db:"booking_price"`
	model.Metadata
}
