package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/category/model"
	gDto "guesthouse/shared/dto"
	gRepo "guesthouse/shared/repository"
)

type RoomCategory interface {
	Insert(ctx context.Context, model model.RoomCategory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomCategory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomCategory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomCategory](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
