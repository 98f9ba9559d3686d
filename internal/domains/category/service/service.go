package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"guesthouse/config"
	"guesthouse/infras/otel"
	"guesthouse/internal/domains/category/model"
	"guesthouse/internal/domains/category/model/dto"
	"guesthouse/internal/domains/category/repository"
	"guesthouse/shared"
	"guesthouse/shared/cache"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
)

const (
	cacheGetCategory = "room_category:get"
)

// RoomCategory serves the category detail the booking page renders before a
// selection is built.
type RoomCategory interface {
	Get(ctx context.Context, id string) (dto.RoomCategoryResponse, error)
	GetByType(ctx context.Context, categoryType string) (model.RoomCategory, error)
}

type serviceImpl struct {
	repo  repository.RoomCategory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomCategory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomCategory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room category")

		return res, nil
	}

	category, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return res, fmt.Errorf("failed to get room category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	res.FromModel(category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room category to cache")
		}
	}()

	return res, nil
}

// GetByType resolves the business key used by the public booking flow.
func (s *serviceImpl) GetByType(ctx context.Context, categoryType string) (res model.RoomCategory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomCategoryByType")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    categoryType,
				Table:    model.TableName,
			},
		},
	}

	category, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category by type")

		return res, fmt.Errorf("failed to get room category by type: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	return category, nil
}
