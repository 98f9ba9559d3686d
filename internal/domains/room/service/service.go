package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"guesthouse/config"
	"guesthouse/infras/otel"
	categoryService "guesthouse/internal/domains/category/service"
	"guesthouse/internal/domains/room/model/dto"
	"guesthouse/internal/domains/room/repository"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
)

// Room resolves which rooms of a category can host a stay.
type Room interface {
	FindAvailable(ctx context.Context, req dto.AvailableRoomsRequest) (dto.AvailableRoomsResponse, error)
}

type serviceImpl struct {
	repo     repository.Room
	category categoryService.RoomCategory
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Room, category categoryService.RoomCategory, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo:     repo,
		category: category,
		cfg:      cfg,
		otel:     otel,
	}
}

// FindAvailable is read-only. Availability is never cached: a stale answer
// here turns into a double booking at hold time.
func (s *serviceImpl) FindAvailable(ctx context.Context, req dto.AvailableRoomsRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("invalid dates entered") // nolint:wrapcheck
	}

	category, err := s.category.GetByType(ctx, req.Type)
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("failed to resolve room category")

		return res, err
	}

	rooms, err := s.repo.FindAvailable(ctx, category.Type, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to find available rooms")

		return res, failure.Unavailable("room availability is temporarily unavailable") // nolint:wrapcheck
	}

	res.FromModels(category.Type, category.BookingPrice, rooms)

	return res, nil
}
