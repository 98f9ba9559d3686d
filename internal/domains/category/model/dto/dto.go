package dto

import (
	"guesthouse/internal/domains/category/model"
	gDto "guesthouse/shared/dto"
)

type RoomCategoryResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	BookingPrice float64 `json:"bookingPrice"`
	gDto.Metadata
}

func (r *RoomCategoryResponse) FromModel(model model.RoomCategory) {
	r.ID = model.ID
	r.Type = model.Type
	r.BookingPrice = model.BookingPrice
	r.Metadata.FromModel(model.Metadata)
}
