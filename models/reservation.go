// File: models/reservation.go
package models

import "time"

// Reservation lifecycle states. BOOKED is the only live state and
// CANCELLED is terminal; rows never move back.
const (
	ReservationBooked    = "BOOKED"
	ReservationCancelled = "CANCELLED"
)

// Reservation is one booking of a room. Start and End are minutes from
// midnight on Date, half-open [Start, End).
type Reservation struct {
	ID       string `bson:"id" json:"id"`
	RoomID   string `bson:"roomId" json:"roomId"`
	UserID   string `bson:"userId" json:"userId"`
	UserName string `bson:"userName,omitempty" json:"userName,omitempty"`
	Title    string `bson:"title" json:"title"`
	Status   string `bson:"status" json:"status"`

	Date  string `bson:"date" json:"date"` // YYYY-MM-DD
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (r Reservation) DurationMinutes() int {
	return r.End - r.Start
}

// ReservationAudit is one append-only lifecycle transition record.
type ReservationAudit struct {
	ID            string    `bson:"id" json:"id"`
	ReservationID string    `bson:"reservationId" json:"reservationId"`
	FromStatus    string    `bson:"fromStatus" json:"fromStatus"` // "" on create
	ToStatus      string    `bson:"toStatus" json:"toStatus"`
	ActorID       string    `bson:"actorId" json:"actorId"`
	At            time.Time `bson:"at" json:"at"`
}

// ReservationInput is the request body for creating or updating a booking.
type ReservationInput struct {
	RoomID          string `json:"roomId" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Date            string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime       string `json:"startTime" binding:"required"` // HH:MM
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
}
