package pricing

import (
	"fmt"
	"time"
)

// InvalidDatesLabel is rendered by the booking page whenever the stay has no
// billable nights.
const InvalidDatesLabel = "invalid dates entered"

// Nights counts the whole calendar days between check-in and check-out after
// normalizing both to midnight UTC, so clock components and timezones can
// never produce a fractional night.
func Nights(checkIn, checkOut time.Time) int {
	return int(midnightUTC(checkOut).Sub(midnightUTC(checkIn)).Hours() / 24)
}

// ComputeAmount prices a stay: nightly rate times rooms times nights. Callers
// reject stays with no billable nights before charging.
func ComputeAmount(pricePerNight float64, checkIn, checkOut time.Time, numberOfRooms int) float64 {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0
	}

	return pricePerNight * float64(numberOfRooms) * float64(nights)
}

// NightsLabel reproduces the stay summary shown next to the computed amount.
func NightsLabel(checkIn, checkOut time.Time) string {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return InvalidDatesLabel
	}

	return fmt.Sprintf("%d nights stay", nights)
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
