// File: services/engine/month.go
package engine

import (
	"fmt"
	"time"

	"roombook/models"
)

// MonthCounts buckets a month's reservations into per-day booking counts.
// Every calendar day of the month appears in the result, zero-filled; the
// pass is O(reservations), never O(days x reservations).
func MonthCounts(year int, month time.Month, reservations []models.Reservation) []models.DayCount {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	counts := make(map[string]int, len(reservations))
	for _, r := range reservations {
		if r.Status != models.ReservationBooked {
			continue
		}
		counts[r.Date]++
	}

	out := make([]models.DayCount, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		out = append(out, models.DayCount{Date: date, Count: counts[date]})
	}
	return out
}
