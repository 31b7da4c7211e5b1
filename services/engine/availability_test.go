package engine

import (
	"testing"

	"roombook/models"
)

func testRoom() models.Room {
	return models.Room{
		ID:          "room-1",
		SlotMinutes: 60,
		MinMinutes:  30,
		MaxMinutes:  240,
	}
}

func openHours(open, closeMin int) DayHours {
	return DayHours{Open: open, Close: closeMin}
}

func booked(id string, start, end int) models.Reservation {
	return models.Reservation{
		ID:     id,
		RoomID: "room-1",
		Status: models.ReservationBooked,
		Date:   "2026-08-24",
		Start:  start,
		End:    end,
		Title:  "standup",
	}
}

func TestBuildDaySlotsTilesTheWindow(t *testing.T) {
	cases := []struct {
		name            string
		open, close     int
		slot            int
		wantCount       int
		wantLastClipped bool
	}{
		{name: "nine hour day hourly", open: 540, close: 1080, slot: 60, wantCount: 9},
		{name: "half hour grid", open: 540, close: 1080, slot: 30, wantCount: 18},
		{name: "partial trailing slot", open: 540, close: 1070, slot: 60, wantCount: 9, wantLastClipped: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := BuildDaySlots(tc.open, tc.close, tc.slot, nil)
			if len(slots) != tc.wantCount {
				t.Fatalf("slot count = %d, want %d", len(slots), tc.wantCount)
			}
			// slots tile [open, close) without gaps or overlaps
			prev := tc.open
			for _, s := range slots {
				if s.Start != prev {
					t.Fatalf("gap or overlap at minute %d (slot starts %d)", prev, s.Start)
				}
				if s.End <= s.Start {
					t.Fatalf("empty slot %+v", s)
				}
				prev = s.End
			}
			if prev != tc.close {
				t.Fatalf("slots end at %d, want %d", prev, tc.close)
			}
			last := slots[len(slots)-1]
			if tc.wantLastClipped && last.End-last.Start >= tc.slot {
				t.Errorf("trailing slot not clipped: %+v", last)
			}
		})
	}
}

func TestBuildDaySlotsMarksBusy(t *testing.T) {
	slots := BuildDaySlots(540, 1080, 60, []models.Reservation{booked("r1", 600, 660)})

	for _, s := range slots {
		busy := s.Start == 600
		if busy == s.Free {
			t.Errorf("slot %s-%s free=%v, want %v", FromMinutes(s.Start), FromMinutes(s.End), s.Free, !busy)
		}
		if busy && s.Title != "standup" {
			t.Errorf("busy slot should carry the reservation title, got %q", s.Title)
		}
	}
}

func TestBuildDaySlotsIgnoresCancelled(t *testing.T) {
	cancelled := booked("r1", 600, 660)
	cancelled.Status = models.ReservationCancelled

	for _, s := range BuildDaySlots(540, 1080, 60, []models.Reservation{cancelled}) {
		if !s.Free {
			t.Fatalf("cancelled reservation still blocks slot %+v", s)
		}
	}
}

func TestDayStatusForClosedDay(t *testing.T) {
	st := DayStatusFor(testRoom(), "2026-08-29", DayHours{Closed: true, Reason: "holiday"}, nil)
	if !st.Closed || st.Reason != "holiday" {
		t.Fatalf("closed status = %+v", st)
	}
	if len(st.Slots) != 0 {
		t.Errorf("closed day must not produce slots")
	}
}

func TestDayStatusForOpenDay(t *testing.T) {
	st := DayStatusFor(testRoom(), "2026-08-24", openHours(540, 1080), []models.Reservation{booked("r1", 600, 660)})
	if st.Closed {
		t.Fatalf("open day reported closed")
	}
	if st.Open != "09:00" || st.Close != "18:00" {
		t.Errorf("window = %s-%s, want 09:00-18:00", st.Open, st.Close)
	}
	if len(st.Slots) != 9 {
		t.Errorf("slot count = %d, want 9", len(st.Slots))
	}
	if len(st.Reservations) != 1 {
		t.Errorf("reservations = %d, want 1", len(st.Reservations))
	}
}

func TestStartTimeOptionsEmptyDay(t *testing.T) {
	// room open 09:00-18:00, hourly slots, no reservations: nine options
	opts := StartTimeOptions(testRoom(), openHours(540, 1080), nil, 60)
	if len(opts) != 9 {
		t.Fatalf("options = %v, want 9 entries", opts)
	}
	if opts[0] != "09:00" || opts[len(opts)-1] != "17:00" {
		t.Errorf("range = %s..%s, want 09:00..17:00", opts[0], opts[len(opts)-1])
	}
}

func TestStartTimeOptionsRespectsClose(t *testing.T) {
	// close 18:00, duration 90: 17:00 must not appear, last fitting start is 16:30
	room := testRoom()
	room.SlotMinutes = 30
	opts := StartTimeOptions(room, openHours(540, 1080), nil, 90)
	for _, o := range opts {
		if o == "17:00" {
			t.Fatalf("17:00 offered for a 90 minute booking closing at 18:00")
		}
	}
	if last := opts[len(opts)-1]; last != "16:30" {
		t.Errorf("last option = %s, want 16:30", last)
	}
}

func TestStartTimeOptionsLongerThanWindow(t *testing.T) {
	if opts := StartTimeOptions(testRoom(), openHours(540, 600), nil, 120); len(opts) != 0 {
		t.Fatalf("duration longer than window should yield no options, got %v", opts)
	}
}

func TestStartTimeOptionsMatchValidate(t *testing.T) {
	// every offered option must be bookable against the current reservation set
	room := testRoom()
	room.BufferMinutes = 10
	hours := openHours(540, 1080)
	existing := []models.Reservation{booked("r1", 600, 660), booked("r2", 900, 990)}

	opts := make(map[string]bool)
	for _, o := range StartTimeOptions(room, hours, existing, 60) {
		opts[o] = true
	}

	for tMin := hours.Open; tMin+60 <= hours.Close; tMin += room.SlotMinutes {
		err := ValidateReservation(room, hours, existing, tMin, 60, "")
		if opts[FromMinutes(tMin)] != (err == nil) {
			t.Errorf("option %s offered=%v but validate err=%v", FromMinutes(tMin), opts[FromMinutes(tMin)], err)
		}
	}
}
