package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guesthouse/config"
	kafkaMocks "guesthouse/infras/kafka/mocks"
	"guesthouse/infras/otel/mocks"
	bookingMocks "guesthouse/internal/domains/booking/mocks"
	bookingModel "guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/service"
	categoryMocks "guesthouse/internal/domains/category/mocks"
	categoryModel "guesthouse/internal/domains/category/model"
	roomMocks "guesthouse/internal/domains/room/mocks"
	roomModel "guesthouse/internal/domains/room/model"
	"guesthouse/shared/failure"
)

type bookingFixture struct {
	svc      service.Booking
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	category *categoryMocks.MockRoomCategoryService
	producer *kafkaMocks.MockProducer
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)
	category := categoryMocks.NewMockRoomCategoryService(ctrl)
	producer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.PaymentTopic = "booking.payment"

	return bookingFixture{
		svc:      service.New(repo, roomRepo, category, producer, cfg, mocks.NewOtel()),
		repo:     repo,
		roomRepo: roomRepo,
		category: category,
		producer: producer,
	}
}

var (
	deluxe = categoryModel.RoomCategory{ID: "cat-1", Type: "Deluxe", BookingPrice: 1000}

	checkIn  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	freeRooms = []roomModel.Room{
		{ID: "room-101", RoomNo: 101, Type: "Deluxe"},
		{ID: "room-102", RoomNo: 102, Type: "Deluxe"},
		{ID: "room-103", RoomNo: 103, Type: "Deluxe"},
	}
)

func selectionRequest(rooms int) dto.BookingSelectionRequest {
	return dto.BookingSelectionRequest{
		Type:          "Deluxe",
		NumberOfRooms: rooms,
		CheckInDate:   "2024-01-01",
		CheckOutDate:  "2024-01-04",
	}
}

func TestBookingService_BuildSelection(t *testing.T) {
	f := newBookingFixture(t)

	f.category.EXPECT().GetByType(gomock.Any(), "Deluxe").Return(deluxe, nil)
	f.roomRepo.EXPECT().FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).Return(freeRooms, nil)

	var held []bookingModel.Reservation
	f.repo.EXPECT().
		HoldRooms(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservations []bookingModel.Reservation) error {
			held = reservations

			return nil
		})
	f.producer.EXPECT().
		SendMessages(gomock.Any(), "booking.payment", gomock.Any()).
		Return(nil)

	res, err := f.svc.BuildSelection(context.Background(), selectionRequest(2))
	require.NoError(t, err)

	// First two rooms by room number, three nights at 1000 each.
	assert.Equal(t, []int{101, 102}, res.RoomNumbers)
	assert.Equal(t, float64(6000), res.Amount)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "3 nights stay", res.NightsLabel)
	assert.True(t, res.PaymentQueued)
	assert.NotEmpty(t, res.SelectionID)

	require.Len(t, held, 2)
	assert.Equal(t, 101, held[0].RoomNo)
	assert.Equal(t, 102, held[1].RoomNo)
	assert.Equal(t, checkIn, held[0].CheckIn)
	assert.Equal(t, checkOut, held[0].CheckOut)
}

func TestBookingService_BuildSelectionRejectsOverAsk(t *testing.T) {
	f := newBookingFixture(t)

	f.category.EXPECT().GetByType(gomock.Any(), "Deluxe").Return(deluxe, nil)
	f.roomRepo.EXPECT().FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).Return(freeRooms[:1], nil)

	_, err := f.svc.BuildSelection(context.Background(), selectionRequest(2))

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_BuildSelectionRejectsNonPositiveRoomCount(t *testing.T) {
	f := newBookingFixture(t)

	f.category.EXPECT().GetByType(gomock.Any(), "Deluxe").Return(deluxe, nil)
	f.roomRepo.EXPECT().FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).Return(freeRooms, nil)

	// No HoldRooms expectation: zero rooms must be refused before any hold.
	_, err := f.svc.BuildSelection(context.Background(), selectionRequest(0))

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "requested 0 rooms")
}

func TestBookingService_BuildSelectionRejectsInvalidDates(t *testing.T) {
	f := newBookingFixture(t)

	req := selectionRequest(1)
	req.CheckInDate = "2024-01-04"
	req.CheckOutDate = "2024-01-01"

	_, err := f.svc.BuildSelection(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "invalid dates entered")
}

func TestBookingService_BuildSelectionSurfacesHoldConflict(t *testing.T) {
	f := newBookingFixture(t)

	f.category.EXPECT().GetByType(gomock.Any(), "Deluxe").Return(deluxe, nil)
	f.roomRepo.EXPECT().FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).Return(freeRooms, nil)
	f.repo.EXPECT().
		HoldRooms(gomock.Any(), gomock.Any()).
		Return(failure.Conflict("room 101 is no longer available"))

	_, err := f.svc.BuildSelection(context.Background(), selectionRequest(1))

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_BuildSelectionKeepsHoldOnPublishFailure(t *testing.T) {
	f := newBookingFixture(t)

	f.category.EXPECT().GetByType(gomock.Any(), "Deluxe").Return(deluxe, nil)
	f.roomRepo.EXPECT().FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).Return(freeRooms, nil)
	f.repo.EXPECT().HoldRooms(gomock.Any(), gomock.Any()).Return(nil)
	f.producer.EXPECT().
		SendMessages(gomock.Any(), "booking.payment", gomock.Any()).
		Return(errors.New("broker unreachable"))

	res, err := f.svc.BuildSelection(context.Background(), selectionRequest(1))

	require.NoError(t, err)
	assert.False(t, res.PaymentQueued)
	assert.Equal(t, []int{101}, res.RoomNumbers)
}
