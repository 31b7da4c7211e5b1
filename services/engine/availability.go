// File: services/engine/availability.go
package engine

import "roombook/models"

// BuildDaySlots walks the operating window in slotMinutes steps and tags each
// slot free or busy against the supplied reservations. The trailing slot is
// clipped to close when the window is not an exact multiple of slotMinutes,
// so the produced slots always tile [open, close) without gaps.
func BuildDaySlots(open, closeMin, slotMinutes int, reservations []models.Reservation) []models.Slot {
	if slotMinutes <= 0 || open >= closeMin {
		return nil
	}

	slots := make([]models.Slot, 0, (closeMin-open+slotMinutes-1)/slotMinutes)
	for t := open; t < closeMin; t += slotMinutes {
		end := t + slotMinutes
		if end > closeMin {
			end = closeMin
		}

		slot := models.Slot{Start: t, End: end, Free: true}
		for _, r := range reservations {
			if r.Status != models.ReservationBooked {
				continue
			}
			if Overlaps(t, end, r.Start, r.End) {
				// first overlapping reservation wins; overlapping pairs are a
				// data anomaly prevented at write time, not reconciled here
				slot.Free = false
				slot.Title = r.Title
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// DayStatusFor assembles the availability view for one room and date from an
// already-resolved operating window and the day's reservations.
func DayStatusFor(room models.Room, date string, hours DayHours, reservations []models.Reservation) models.DayStatus {
	if hours.Closed {
		return models.DayStatus{
			RoomID: room.ID,
			Date:   date,
			Closed: true,
			Reason: hours.Reason,
		}
	}

	booked := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Status == models.ReservationBooked {
			booked = append(booked, r)
		}
	}

	return models.DayStatus{
		RoomID:        room.ID,
		Date:          date,
		Open:          FromMinutes(hours.Open),
		Close:         FromMinutes(hours.Close),
		SlotMinutes:   room.SlotMinutes,
		BufferMinutes: room.BufferMinutes,
		Slots:         BuildDaySlots(hours.Open, hours.Close, room.SlotMinutes, booked),
		Reservations:  booked,
	}
}

// StartTimeOptions lists every slot-aligned start time at which a booking of
// the given duration both fits inside the operating window and passes the
// buffered conflict check. Every returned option is bookable against the
// supplied reservation set at the moment it is computed.
func StartTimeOptions(room models.Room, hours DayHours, reservations []models.Reservation, durationMinutes int) []string {
	if hours.Closed || room.SlotMinutes <= 0 || durationMinutes <= 0 {
		return nil
	}

	options := make([]string, 0)
	for t := hours.Open; t+durationMinutes <= hours.Close; t += room.SlotMinutes {
		if conflictWith(reservations, t, t+durationMinutes, room.BufferMinutes, "") == "" {
			options = append(options, FromMinutes(t))
		}
	}
	return options
}
