// File: services/engine/timegrid.go
package engine

import (
	"fmt"
	"time"
)

// MinutesPerDay bounds every minute-of-day value handled by the engine.
const MinutesPerDay = 24 * 60

// ToMinutes converts wall-clock "HH:MM" to minutes from midnight.
// Exactly two digits on each side of the colon, 00:00 through 23:59;
// anything else, including signs, spaces or trailing garbage, is rejected.
func ToMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' ||
		!isDigit(clock[0]) || !isDigit(clock[1]) || !isDigit(clock[3]) || !isDigit(clock[4]) {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	hh := int(clock[0]-'0')*10 + int(clock[1]-'0')
	mm := int(clock[3]-'0')*10 + int(clock[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	return hh*60 + mm, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// FromMinutes renders minutes from midnight as zero-padded "HH:MM".
// The caller must pass a value in [0, 1440).
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// DayOfWeek maps a calendar date to the ISO day-of-week index used by every
// operating-hours consumer: 1=Monday .. 7=Sunday. This is the single
// canonical conversion; call sites must not invent their own.
func DayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
