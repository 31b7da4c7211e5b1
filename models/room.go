// File: models/room.go
package models

import "time"

// AllowedBufferMinutes is the set of buffer values a room may be configured
// with. The buffer is quiet time enforced on both sides of every booking.
var AllowedBufferMinutes = map[int]bool{0: true, 10: true, 30: true, 60: true}

// OperatingHour is one weekly schedule entry. Dow follows ISO-8601:
// 1 = Monday .. 7 = Sunday. Open and Close are "HH:MM" clock strings.
type OperatingHour struct {
	Dow    int    `bson:"dow" json:"dow"`
	Closed bool   `bson:"closed" json:"closed"`
	Open   string `bson:"open,omitempty" json:"open,omitempty"`
	Close  string `bson:"close,omitempty" json:"close,omitempty"`
}

// OperatingException overrides the weekly schedule for a single date, either
// closing the room outright or replacing that day's hours.
type OperatingException struct {
	RoomID string `bson:"roomId" json:"roomId"`
	Date   string `bson:"date" json:"date"` // YYYY-MM-DD
	Closed bool   `bson:"closed" json:"closed"`
	Open   string `bson:"open,omitempty" json:"open,omitempty"`
	Close  string `bson:"close,omitempty" json:"close,omitempty"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Room is a bookable meeting room together with its booking policy.
type Room struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Capacity int    `bson:"capacity" json:"capacity"`
	Active   bool   `bson:"active" json:"active"`

	SlotMinutes   int `bson:"slotMinutes" json:"slotMinutes"`
	BufferMinutes int `bson:"bufferMinutes" json:"bufferMinutes"`
	MinMinutes    int `bson:"minMinutes" json:"minMinutes"`
	MaxMinutes    int `bson:"maxMinutes" json:"maxMinutes"`

	// Optional bookable date window, YYYY-MM-DD inclusive on both ends.
	AvailableStartDate string `bson:"availableStartDate,omitempty" json:"availableStartDate,omitempty"`
	AvailableEndDate   string `bson:"availableEndDate,omitempty" json:"availableEndDate,omitempty"`

	// How far into the future non-admin users may book, counted in days
	// from today. Today itself is always bookable.
	BookingOpenDaysAhead int `bson:"bookingOpenDaysAhead" json:"bookingOpenDaysAhead"`

	OperatingHours []OperatingHour `bson:"operatingHours" json:"operatingHours"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
