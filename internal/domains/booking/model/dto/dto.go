package dto

import (
	"time"

	"github.com/google/uuid"

	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/pricing"
	roomModel "guesthouse/internal/domains/room/model"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
	gModel "guesthouse/shared/model"
	"guesthouse/shared/timezone"
)

type BookingSelectionRequest struct {
	Type          string `json:"type"            validate:"required,max=100"`
	NumberOfRooms int    `json:"number_of_rooms" validate:"required,min=1"`
	CheckInDate   string `json:"check_in_date"   validate:"required"`
	CheckOutDate  string `json:"check_out_date"  validate:"required"`
}

// ParseDates decodes both stay boundaries as calendar dates at midnight UTC.
func (r *BookingSelectionRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, r.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString(pricing.InvalidDatesLabel) // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, r.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString(pricing.InvalidDatesLabel) // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

// ToReservations builds one hold row per selected room.
func (r *BookingSelectionRequest) ToReservations(rooms []roomModel.Room, checkIn, checkOut time.Time) []model.Reservation {
	reservations := make([]model.Reservation, len(rooms))
	for i, room := range rooms {
		reservations[i] = model.Reservation{
			ID:       uuid.NewString(),
			RoomNo:   room.RoomNo,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.ContextSystem,
				ModifiedBy: constant.ContextSystem,
			},
		}
	}

	return reservations
}

type BookingSelectionResponse struct {
	SelectionID   string  `json:"selection_id"`
	Type          string  `json:"type"`
	RoomNumbers   []int   `json:"room_numbers"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	NightsLabel   string  `json:"nights_label"`
	Amount        float64 `json:"amount"`
	PaymentQueued bool    `json:"payment_queued"`
}
