// File: services/engine/hours.go
package engine

import (
	"fmt"
	"sort"
	"time"

	"roombook/models"
)

// DayHours is the resolved operating window for one room on one date,
// expressed in minutes from midnight.
type DayHours struct {
	Closed bool
	Open   int
	Close  int
	Reason string // only set for closed exception days
}

// ValidateOperatingHours rejects weekly schedules that could never be served:
// a dow outside 1..7, or an open entry without open < close.
func ValidateOperatingHours(hours []models.OperatingHour) error {
	for _, h := range hours {
		if h.Dow < 1 || h.Dow > 7 {
			return NewPolicyError(CodeInvalidOperatingHours, fmt.Sprintf("day of week must be 1..7, got %d", h.Dow))
		}
		if h.Closed {
			continue
		}
		open, err := ToMinutes(h.Open)
		if err != nil {
			return NewPolicyError(CodeInvalidOperatingHours, fmt.Sprintf("dow %d: bad open time %q", h.Dow, h.Open))
		}
		closeMin, err := ToMinutes(h.Close)
		if err != nil {
			return NewPolicyError(CodeInvalidOperatingHours, fmt.Sprintf("dow %d: bad close time %q", h.Dow, h.Close))
		}
		if open >= closeMin {
			return NewPolicyError(CodeInvalidOperatingHours, fmt.Sprintf("dow %d: open must be before close", h.Dow))
		}
	}
	return nil
}

// FillMissingHours pads a partial weekly schedule to all seven days:
// Mon-Fri 09:00-18:00, Sat/Sun closed. Returned slice is sorted by dow.
func FillMissingHours(hours []models.OperatingHour) []models.OperatingHour {
	present := make(map[int]bool, len(hours))
	out := make([]models.OperatingHour, 0, 7)
	for _, h := range hours {
		if h.Dow >= 1 && h.Dow <= 7 && !present[h.Dow] {
			present[h.Dow] = true
			out = append(out, h)
		}
	}
	for dow := 1; dow <= 7; dow++ {
		if present[dow] {
			continue
		}
		if dow == 6 || dow == 7 {
			out = append(out, models.OperatingHour{Dow: dow, Closed: true})
		} else {
			out = append(out, models.OperatingHour{Dow: dow, Open: "09:00", Close: "18:00"})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dow < out[j].Dow })
	return out
}

// HoursFor looks up the weekly entry for a day of week. A missing entry is
// treated as closed.
func HoursFor(hours []models.OperatingHour, dow int) DayHours {
	for _, h := range hours {
		if h.Dow != dow {
			continue
		}
		if h.Closed {
			return DayHours{Closed: true}
		}
		open, err := ToMinutes(h.Open)
		if err != nil {
			return DayHours{Closed: true}
		}
		closeMin, err := ToMinutes(h.Close)
		if err != nil {
			return DayHours{Closed: true}
		}
		return DayHours{Open: open, Close: closeMin}
	}
	return DayHours{Closed: true}
}

// ResolveDayHours returns the operating window for a concrete date. A per-date
// exception takes precedence over the weekly schedule.
func ResolveDayHours(room models.Room, exc *models.OperatingException, date time.Time) DayHours {
	if exc != nil {
		if exc.Closed {
			return DayHours{Closed: true, Reason: exc.Reason}
		}
		open, errO := ToMinutes(exc.Open)
		closeMin, errC := ToMinutes(exc.Close)
		if errO == nil && errC == nil && open < closeMin {
			return DayHours{Open: open, Close: closeMin}
		}
		// malformed exception row: fall through to the weekly schedule
	}
	return HoursFor(room.OperatingHours, DayOfWeek(date))
}
