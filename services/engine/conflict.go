// File: services/engine/conflict.go
package engine

import (
	"fmt"

	"roombook/models"
)

// conflictWith returns the id of the first booked reservation whose buffered
// interval overlaps the buffered candidate [start-buffer, end+buffer), or ""
// when the candidate is clear. Buffers expand on both sides, so two bookings
// end up separated by at least twice the configured buffer. The buffer may
// extend past the operating window; it reserves quiet time, it does not have
// to fit inside it.
func conflictWith(reservations []models.Reservation, start, end, bufferMinutes int, excludeID string) string {
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}
	candStart := start - bufferMinutes
	candEnd := end + bufferMinutes

	for _, r := range reservations {
		if r.Status != models.ReservationBooked {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if Overlaps(candStart, candEnd, r.Start-bufferMinutes, r.End+bufferMinutes) {
			return r.ID
		}
	}
	return ""
}

// validateWindow runs the interval policy gates shared by both validators:
// duration inside the room's min/max, day open, whole interval inside the
// operating window.
func validateWindow(room models.Room, hours DayHours, startMinute, durationMinutes int) error {
	if durationMinutes < room.MinMinutes || durationMinutes > room.MaxMinutes {
		return NewPolicyError(CodeDurationOutOfRange,
			fmt.Sprintf("duration must be between %d and %d minutes", room.MinMinutes, room.MaxMinutes))
	}

	if hours.Closed {
		msg := "room is closed on this date"
		if hours.Reason != "" {
			msg = fmt.Sprintf("room is closed on this date (%s)", hours.Reason)
		}
		return NewPolicyError(CodeRoomClosed, msg)
	}
	if startMinute < hours.Open || startMinute+durationMinutes > hours.Close {
		return NewPolicyError(CodeOutsideOperatingHours,
			fmt.Sprintf("reservation must fit inside operating hours %s-%s",
				FromMinutes(hours.Open), FromMinutes(hours.Close)))
	}
	return nil
}

// ValidateReservation decides whether a proposed booking interval is
// acceptable. Checks run in order and the first failure wins:
//  1. duration inside the room's min/max policy,
//  2. day open and the whole interval inside the operating window,
//  3. no buffered overlap with an existing booked reservation
//     (excludeID skips the reservation being updated).
//
// A nil return means accept. This check is advisory for option building but
// repeats inside the write path's lock scope as the authoritative gate.
func ValidateReservation(room models.Room, hours DayHours, reservations []models.Reservation, startMinute, durationMinutes int, excludeID string) error {
	if err := validateWindow(room, hours, startMinute, durationMinutes); err != nil {
		return err
	}
	if id := conflictWith(reservations, startMinute, startMinute+durationMinutes, room.BufferMinutes, excludeID); id != "" {
		return NewConflictError(id)
	}
	return nil
}

// ValidateAlignedReservation is ValidateReservation plus the slot grid
// preconditions enforced on the write path: the start must sit on the slot
// grid from open and the duration must be a whole number of slots. Alignment
// runs before the conflict scan, so a request that is both off grid and
// colliding reports its shape problem.
func ValidateAlignedReservation(room models.Room, hours DayHours, reservations []models.Reservation, startMinute, durationMinutes int, excludeID string) error {
	if err := validateWindow(room, hours, startMinute, durationMinutes); err != nil {
		return err
	}
	if room.SlotMinutes > 0 {
		if (startMinute-hours.Open)%room.SlotMinutes != 0 {
			return NewPolicyError(CodeSlotMisaligned,
				fmt.Sprintf("start time must sit on the %d-minute grid from %s", room.SlotMinutes, FromMinutes(hours.Open)))
		}
		if durationMinutes%room.SlotMinutes != 0 {
			return NewPolicyError(CodeSlotMisaligned,
				fmt.Sprintf("duration must be a multiple of %d minutes", room.SlotMinutes))
		}
	}
	if id := conflictWith(reservations, startMinute, startMinute+durationMinutes, room.BufferMinutes, excludeID); id != "" {
		return NewConflictError(id)
	}
	return nil
}
