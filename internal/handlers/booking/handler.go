package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/service"
	"guesthouse/shared/constant"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/selection", handler.BuildSelection)
	})
}

// BuildSelection picks and holds concrete rooms for a stay.
// @Summary Build a booking selection
// @Description Pick the first free rooms of a category, hold them, price the stay and hand the selection off to payment.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingSelectionRequest true "Stay request"
// @Success 201 {object} response.Data[dto.BookingSelectionResponse] "Held selection"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/selection [post]
func (handler *Handler) BuildSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BuildSelection")
	defer scope.End()

	var req dto.BookingSelectionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	selection, err := handler.service.BuildSelection(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build booking selection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking selection held successfully")

	response.WithJSON(w, http.StatusCreated, selection)
}
