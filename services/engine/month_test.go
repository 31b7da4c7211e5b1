package engine

import (
	"testing"
	"time"

	"roombook/models"
)

func TestMonthCountsZeroFillsEveryDay(t *testing.T) {
	days := MonthCounts(2026, time.February, nil)
	if len(days) != 28 {
		t.Fatalf("February 2026 has 28 days, got %d", len(days))
	}
	if days[0].Date != "2026-02-01" || days[27].Date != "2026-02-28" {
		t.Fatalf("day range = %s..%s", days[0].Date, days[27].Date)
	}
	for _, d := range days {
		if d.Count != 0 {
			t.Fatalf("empty month should be all zeroes, got %+v", d)
		}
	}
}

func TestMonthCountsBuckets(t *testing.T) {
	res := []models.Reservation{
		{Status: models.ReservationBooked, Date: "2026-08-03", Start: 540, End: 600},
		{Status: models.ReservationBooked, Date: "2026-08-03", Start: 660, End: 720},
		{Status: models.ReservationBooked, Date: "2026-08-20", Start: 540, End: 600},
		{Status: models.ReservationCancelled, Date: "2026-08-20", Start: 660, End: 720},
	}

	days := MonthCounts(2026, time.August, res)
	if len(days) != 31 {
		t.Fatalf("August has 31 days, got %d", len(days))
	}

	byDate := make(map[string]int, len(days))
	total := 0
	for _, d := range days {
		byDate[d.Date] = d.Count
		total += d.Count
	}

	if byDate["2026-08-03"] != 2 {
		t.Errorf("2026-08-03 count = %d, want 2", byDate["2026-08-03"])
	}
	if byDate["2026-08-20"] != 1 {
		t.Errorf("cancelled reservation counted: %d", byDate["2026-08-20"])
	}
	// counts sum to the number of distinct booked reservations
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}
