package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	categoryService "guesthouse/internal/domains/category/service"
	"guesthouse/internal/domains/room/model/dto"
	"guesthouse/internal/domains/room/service"
	"guesthouse/shared/constant"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/response"
)

type Handler struct {
	service  service.Room
	category categoryService.RoomCategory
	otel     otel.Otel
}

func New(service service.Room, category categoryService.RoomCategory, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		category: category,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetRoomCategoryByID)
		routerGroup.Patch("/available", handler.GetAvailableRooms)
	})
}

// GetRoomCategoryByID retrieves a room category by its ID.
// @Summary Get a room category by ID
// @Description Retrieve the category detail (type and nightly rate) shown on the booking page.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room category ID"
// @Success 200 {object} response.Data[dto.RoomCategoryResponse] "Category details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomCategoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	category, err := handler.category.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room category by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room category retrieved successfully")

	response.WithJSON(w, http.StatusOK, category)
}

// GetAvailableRooms lists rooms of a category that are free for a stay.
// @Summary Find available rooms
// @Description List the rooms of a category with no reservation overlapping the requested stay.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.AvailableRoomsRequest true "Category type and stay boundaries"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/available [patch]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	var req dto.AvailableRoomsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.FindAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
