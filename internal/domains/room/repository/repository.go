package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/room/model"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/logger"
	gRepo "guesthouse/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindAvailable(ctx context.Context, categoryType string, checkIn, checkOut time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable returns the rooms of a category with no reservation whose
// night range overlaps [checkIn, checkOut). Two half-open ranges overlap when
// each one starts before the other ends.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, categoryType string, checkIn, checkOut time.Time) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()

	query := `SELECT rooms.id, rooms.room_no, rooms.type,
		rooms.created_at, rooms.created_by, rooms.modified_at, rooms.modified_by
		FROM rooms
		WHERE rooms.type = :type
		AND NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE reservations.room_no = rooms.room_no
			AND reservations.check_in < :check_out
			AND :check_in < reservations.check_out
		)
		ORDER BY rooms.room_no ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"type":      categoryType,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}
