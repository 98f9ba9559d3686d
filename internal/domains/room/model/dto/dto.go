package dto

import (
	"time"

	"guesthouse/internal/domains/room/model"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
)

type AvailableRoomsRequest struct {
	Type         string `json:"type"           validate:"required,max=100"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

// ParseDates decodes both stay boundaries as calendar dates at midnight UTC so
// the nightly ranges stay half-open regardless of the caller's clock.
func (r *AvailableRoomsRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, r.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid dates entered") // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, r.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid dates entered") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type RoomResponse struct {
	ID     string `json:"id"`
	RoomNo int    `json:"room_no"`
	Type   string `json:"type"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Type = model.Type
}

type AvailableRoomsResponse struct {
	Type         string         `json:"type"`
	BookingPrice float64        `json:"bookingPrice"`
	Rooms        []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(categoryType string, bookingPrice float64, models []model.Room) {
	r.Type = categoryType
	r.BookingPrice = bookingPrice

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
