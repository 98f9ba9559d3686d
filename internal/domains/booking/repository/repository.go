package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
	"guesthouse/shared/logger"
	gRepo "guesthouse/shared/repository"
)

// Booking exposes only the hold operation for now; reads go through the
// availability query on the room repository, and confirmed reservations are
// settled downstream of the payment topic.
type Booking interface {
	HoldRooms(ctx context.Context, reservations []model.Reservation) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// HoldRooms inserts all reservation rows in one transaction, re-checking each
// room for an overlapping reservation first. The re-check runs on the write
// connection so a selection built from a stale read cannot double-book.
func (repo *repositoryImpl) HoldRooms(ctx context.Context, reservations []model.Reservation) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HoldRooms")
	defer scope.End()

	if len(reservations) == 0 {
		return nil
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	query := `SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE room_no = :room_no
		AND check_in < :check_out
		AND :check_in < check_out
	)`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	for _, reservation := range reservations {
		var taken bool

		args := map[string]any{
			"room_no":   reservation.RoomNo,
			"check_in":  reservation.CheckIn,
			"check_out": reservation.CheckOut,
		}

		if err = prepare.GetContext(ctx, &taken, args); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to re-check room availability: %w", err)
		}

		if taken {
			err = failure.Conflict(fmt.Sprintf("room %d is no longer available", reservation.RoomNo))
			scope.TraceError(err)

			return err
		}
	}

	if err = repo.InsertBulkTx(ctx, tx, reservations); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
