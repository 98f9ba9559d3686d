package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"guesthouse/config"
	"guesthouse/infras/kafka"
	"guesthouse/infras/otel"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/pricing"
	bookingRepository "guesthouse/internal/domains/booking/repository"
	categoryService "guesthouse/internal/domains/category/service"
	roomRepository "guesthouse/internal/domains/room/repository"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
)

// Booking turns a guest's stay request into a held selection of concrete
// rooms, priced and handed off to payment.
type Booking interface {
	BuildSelection(ctx context.Context, req dto.BookingSelectionRequest) (dto.BookingSelectionResponse, error)
}

type serviceImpl struct {
	repo     bookingRepository.Booking
	roomRepo roomRepository.Room
	category categoryService.RoomCategory
	producer kafka.Producer
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo bookingRepository.Booking,
	roomRepo roomRepository.Room,
	category categoryService.RoomCategory,
	producer kafka.Producer,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		category: category,
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) BuildSelection(ctx context.Context, req dto.BookingSelectionRequest) (res dto.BookingSelectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BuildSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	nights := pricing.Nights(checkIn, checkOut)
	if nights <= 0 {
		return res, failure.BadRequestFromString(pricing.InvalidDatesLabel) // nolint:wrapcheck
	}

	category, err := s.category.GetByType(ctx, req.Type)
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("failed to resolve room category")

		return res, err
	}

	available, err := s.roomRepo.FindAvailable(ctx, category.Type, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to find available rooms")

		return res, failure.Unavailable("room availability is temporarily unavailable") // nolint:wrapcheck
	}

	if req.NumberOfRooms <= 0 || req.NumberOfRooms > len(available) {
		return res, failure.BadRequestFromString(fmt.Sprintf("requested %d rooms but only %d are available", req.NumberOfRooms, len(available))) // nolint:wrapcheck
	}

	selected := available[:req.NumberOfRooms]

	reservations := req.ToReservations(selected, checkIn, checkOut)
	if err = s.repo.HoldRooms(ctx, reservations); err != nil {
		log.Error().Err(err).Msg("failed to hold rooms")

		return res, err
	}

	res = dto.BookingSelectionResponse{
		SelectionID:  uuid.NewString(),
		Type:         category.Type,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Nights:       nights,
		NightsLabel:  pricing.NightsLabel(checkIn, checkOut),
		Amount:       pricing.ComputeAmount(category.BookingPrice, checkIn, checkOut, req.NumberOfRooms),
	}

	res.RoomNumbers = make([]int, len(selected))
	for i, room := range selected {
		res.RoomNumbers[i] = room.RoomNo
	}

	// The hold already happened; a failed hand-off must not silently drop
	// the payment, so the caller sees payment_queued=false and can retry.
	message := kafka.Message{
		Key:   res.SelectionID,
		Value: res,
	}

	if err := s.producer.SendMessages(ctx, s.cfg.Kafka.PaymentTopic, message); err != nil {
		log.Error().Err(err).Str("selectionID", res.SelectionID).Msg("failed to hand selection off to payment")

		res.PaymentQueued = false

		return res, nil
	}

	res.PaymentQueued = true

	return res, nil
}
