// File: models/slots.go
package models

// Slot is one grid cell of a room's day, minutes from midnight, half-open.
type Slot struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Free  bool   `json:"free"`
	Title string `json:"title,omitempty"`
}

// DayStatus is the availability view for one room on one date. On closed
// days only RoomID, Date, Closed and Reason are populated.
type DayStatus struct {
	RoomID        string        `json:"roomId"`
	Date          string        `json:"date"`
	Closed        bool          `json:"closed"`
	Reason        string        `json:"reason,omitempty"`
	Open          string        `json:"open,omitempty"`
	Close         string        `json:"close,omitempty"`
	SlotMinutes   int           `json:"slotMinutes,omitempty"`
	BufferMinutes int           `json:"bufferMinutes"`
	Slots         []Slot        `json:"slots"`
	Reservations  []Reservation `json:"reservations"`
}

// DayCount is one calendar day's booked reservation count.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// MonthStatus is the month overview for one room: one entry per calendar
// day, zero-filled for days without bookings.
type MonthStatus struct {
	RoomID string     `json:"roomId"`
	Month  string     `json:"month"` // YYYY-MM
	Days   []DayCount `json:"days"`
}
