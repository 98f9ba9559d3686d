package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"guesthouse/config"
	"guesthouse/infras/otel/mocks"
	categoryMocks "guesthouse/internal/domains/category/mocks"
	categoryModel "guesthouse/internal/domains/category/model"
	roomMocks "guesthouse/internal/domains/room/mocks"
	"guesthouse/internal/domains/room/model"
	"guesthouse/internal/domains/room/model/dto"
	"guesthouse/internal/domains/room/service"
	"guesthouse/shared/failure"
)

func TestRoomService_FindAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCategory := categoryMocks.NewMockRoomCategoryService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCategory, cfg, mockOtel)

	deluxe := categoryModel.RoomCategory{
		ID:           "cat-1",
		Type:         "Deluxe",
		BookingPrice: 1000,
	}

	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.AvailableRoomsRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantRooms []int
	}{
		{
			name: "returns free rooms of the category",
			req: dto.AvailableRoomsRequest{
				Type:         "Deluxe",
				CheckInDate:  "2024-01-01",
				CheckOutDate: "2024-01-04",
			},
			setupMock: func() {
				mockCategory.EXPECT().
					GetByType(gomock.Any(), "Deluxe").
					Return(deluxe, nil)
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).
					Return([]model.Room{
						{ID: "room-101", RoomNo: 101, Type: "Deluxe"},
						{ID: "room-103", RoomNo: 103, Type: "Deluxe"},
					}, nil)
			},
			wantRooms: []int{101, 103},
		},
		{
			name: "unknown category type",
			req: dto.AvailableRoomsRequest{
				Type:         "Penthouse",
				CheckInDate:  "2024-01-01",
				CheckOutDate: "2024-01-04",
			},
			setupMock: func() {
				mockCategory.EXPECT().
					GetByType(gomock.Any(), "Penthouse").
					Return(categoryModel.RoomCategory{}, failure.NotFound("room category not found"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "check-out before check-in",
			req: dto.AvailableRoomsRequest{
				Type:         "Deluxe",
				CheckInDate:  "2024-01-04",
				CheckOutDate: "2024-01-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unparseable dates",
			req: dto.AvailableRoomsRequest{
				Type:         "Deluxe",
				CheckInDate:  "01/01/2024",
				CheckOutDate: "2024-01-04",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository failure surfaces as unavailable",
			req: dto.AvailableRoomsRequest{
				Type:         "Deluxe",
				CheckInDate:  "2024-01-01",
				CheckOutDate: "2024-01-04",
			},
			setupMock: func() {
				mockCategory.EXPECT().
					GetByType(gomock.Any(), "Deluxe").
					Return(deluxe, nil)
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.FindAvailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Deluxe", res.Type)
			assert.Equal(t, deluxe.BookingPrice, res.BookingPrice)

			roomNos := make([]int, len(res.Rooms))
			for i, room := range res.Rooms {
				roomNos[i] = room.RoomNo
			}
			assert.Equal(t, tt.wantRooms, roomNos)
		})
	}
}

func TestRoomService_FindAvailableSameDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCategory := categoryMocks.NewMockRoomCategoryService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCategory, &config.Config{}, mockOtel)

	// A zero-night stay is not a stay.
	_, err := svc.FindAvailable(context.Background(), dto.AvailableRoomsRequest{
		Type:         "Deluxe",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-01",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
