package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guesthouse/internal/domains/booking/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAmount(t *testing.T) {
	tests := []struct {
		name          string
		pricePerNight float64
		checkIn       time.Time
		checkOut      time.Time
		rooms         int
		want          float64
	}{
		{
			name:          "three nights two rooms",
			pricePerNight: 1000,
			checkIn:       date(2024, 1, 1),
			checkOut:      date(2024, 1, 4),
			rooms:         2,
			want:          6000,
		},
		{
			name:          "single night single room",
			pricePerNight: 750,
			checkIn:       date(2024, 6, 10),
			checkOut:      date(2024, 6, 11),
			rooms:         1,
			want:          750,
		},
		{
			name:          "zero rooms",
			pricePerNight: 1000,
			checkIn:       date(2024, 1, 1),
			checkOut:      date(2024, 1, 4),
			rooms:         0,
			want:          0,
		},
		{
			name:          "check-out equals check-in",
			pricePerNight: 1000,
			checkIn:       date(2024, 1, 1),
			checkOut:      date(2024, 1, 1),
			rooms:         2,
			want:          0,
		},
		{
			name:          "check-out before check-in",
			pricePerNight: 1000,
			checkIn:       date(2024, 1, 4),
			checkOut:      date(2024, 1, 1),
			rooms:         2,
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeAmount(tt.pricePerNight, tt.checkIn, tt.checkOut, tt.rooms)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeAmountIgnoresClockComponents(t *testing.T) {
	// A late check-in and an early check-out still span the same three
	// calendar nights.
	checkIn := time.Date(2024, 1, 1, 23, 45, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 1, 10, 0, 0, time.UTC)

	assert.Equal(t, float64(6000), pricing.ComputeAmount(1000, checkIn, checkOut, 2))
	assert.Equal(t, 3, pricing.Nights(checkIn, checkOut))
}

func TestComputeAmountNormalizesTimezones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	// Both boundaries shift back a day in UTC, so the night count is
	// unchanged.
	checkIn := time.Date(2024, 1, 2, 5, 0, 0, 0, jakarta)
	checkOut := time.Date(2024, 1, 5, 5, 0, 0, 0, jakarta)

	assert.Equal(t, 3, pricing.Nights(checkIn, checkOut))
}

func TestNightsLabel(t *testing.T) {
	assert.Equal(t, "3 nights stay", pricing.NightsLabel(date(2024, 1, 1), date(2024, 1, 4)))
	assert.Equal(t, "1 nights stay", pricing.NightsLabel(date(2024, 1, 1), date(2024, 1, 2)))
	assert.Equal(t, pricing.InvalidDatesLabel, pricing.NightsLabel(date(2024, 1, 4), date(2024, 1, 1)))
	assert.Equal(t, pricing.InvalidDatesLabel, pricing.NightsLabel(date(2024, 1, 1), date(2024, 1, 1)))
}
